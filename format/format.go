package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter turns a column value into the label shown for it.
type Formatter interface {
	Format(value int) string
}

type twoDigits struct {
	printer *message.Printer
}

// New returns a formatter that zero-pads values to two digits using the
// number conventions of tag.
func New(tag language.Tag) Formatter {
	return twoDigits{printer: message.NewPrinter(tag)}
}

var Default = New(language.English)

func (f twoDigits) Format(value int) string {
	return f.printer.Sprintf("%02d", value)
}

// Func adapts a plain function to Formatter.
type Func func(value int) string

func (f Func) Format(value int) string {
	return f(value)
}
