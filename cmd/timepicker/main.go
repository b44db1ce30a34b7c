package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"timepicker/app"
	"timepicker/config"
	"timepicker/device/tcell"
	"timepicker/format"
	"timepicker/lifecycle"
	"timepicker/picker"

	"github.com/muesli/termenv"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		logFile, err := os.Create(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetFlags(log.Lmicroseconds)
		log.SetOutput(logFile)
	}

	t, confirmed, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if confirmed {
		fmt.Print(app.Report(termenv.NewOutput(os.Stdout), t))
	}
}

func run(cfg config.Config) (picker.Time, bool, error) {
	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	defer func() {
		output.SetForegroundColor(fg)
		output.SetBackgroundColor(bg)
	}()
	p := output.ColorProfile()
	output.SetBackgroundColor(p.FromColor(color.RGBA{0, 16, 64, 255}))
	output.SetForegroundColor(p.FromColor(color.RGBA{255, 255, 205, 255}))

	lc := lifecycle.New()
	defer lc.Stop()

	device, err := tcell.NewDevice(lc, cfg.ItemStyle)
	if err != nil {
		return picker.Time{}, false, fmt.Errorf("open terminal: %w", err)
	}

	tp, err := picker.New(
		picker.WithHoursFormat(cfg.HoursFormat),
		picker.WithDate(cfg.Date),
		picker.WithFormatter(format.New(cfg.Locale)),
		picker.WithTimeChange(func(t picker.Time) {
			log.Printf("time changed: %v", t)
		}),
	)
	if err != nil {
		return picker.Time{}, false, err
	}
	return app.Run(device, tp)
}
