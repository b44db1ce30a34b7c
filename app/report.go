package app

import (
	"strings"
	"timepicker/picker"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
)

// Report formats the confirmed time for the terminal the picker ran in,
// underlined by a rule as wide as the printable text.
func Report(output *termenv.Output, t picker.Time) string {
	styled := output.String(" " + t.String() + " ").
		Foreground(output.Color("#001040")).
		Background(output.Color("#7fff7f")).
		Bold().
		String()
	width := ansi.PrintableRuneWidth(styled)
	return styled + "\n" + strings.Repeat("‾", width) + "\n"
}
