package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
	"timepicker/device/tcell"
	"timepicker/picker"

	"golang.org/x/text/language"
)

type Config struct {
	HoursFormat picker.HoursFormat
	Date        time.Time
	ItemStyle   tcell.ItemStyle
	Locale      language.Tag
	LogFile     string
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Parse reads the command line arguments, without the program name.
func Parse(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("timepicker", flag.ContinueOnError)
	fs.SetOutput(output)

	hoursFormat := fs.Int("format", int(picker.Format24), "Hours format: 24 or 12.")
	at := fs.String("time", "", "Initial time as HH:MM. Defaults to 00:00.")
	padding := fs.Int("padding", tcell.DefaultItemStyle.PaddingBottom, "Blank rows under every item.")
	paddingTop := fs.Int("padding-top", 0, "Blank rows between the top margin and the label.")
	margin := fs.Int("margin", 0, "Blank rows above every item.")
	marginBottom := fs.Int("margin-bottom", 0, "Blank rows under the bottom padding.")
	locale := fs.String("locale", "en", "BCP 47 tag used to format numbers.")
	logFile := fs.String("log", "", "Write the log to this file.")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	style := tcell.ItemStyle{
		MarginTop:     *margin,
		PaddingTop:    *paddingTop,
		PaddingBottom: *padding,
		MarginBottom:  *marginBottom,
	}
	cfg := Config{
		HoursFormat: picker.HoursFormat(*hoursFormat),
		ItemStyle:   style,
		LogFile:     *logFile,
	}
	if cfg.HoursFormat != picker.Format24 && cfg.HoursFormat != picker.Format12 {
		return Config{}, fmt.Errorf("%w: -format %d", ErrInvalidConfig, *hoursFormat)
	}
	if *padding < 0 || *paddingTop < 0 || *margin < 0 || *marginBottom < 0 {
		return Config{}, fmt.Errorf("%w: paddings and margins must not be negative", ErrInvalidConfig)
	}
	if *at != "" {
		date, err := time.Parse("15:04", *at)
		if err != nil {
			return Config{}, fmt.Errorf("%w: -time %q: %v", ErrInvalidConfig, *at, err)
		}
		cfg.Date = date
	}
	tag, err := language.Parse(*locale)
	if err != nil {
		return Config{}, fmt.Errorf("%w: -locale %q: %v", ErrInvalidConfig, *locale, err)
	}
	cfg.Locale = tag
	return cfg, nil
}
