package picker

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"
	"timepicker/device"
	"timepicker/events"
	"timepicker/format"
	"timepicker/selector"
)

type HoursFormat int

const (
	Format24 HoursFormat = 24
	Format12 HoursFormat = 12
)

const (
	HoursColumn   = "hours"
	MinutesColumn = "minutes"
	minutesCount  = 60
)

var ErrInvalidHoursFormat = errors.New("hours format must be 12 or 24")

type Time struct {
	Hours, Minutes int
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

type Option func(*TimePicker)

// WithHoursFormat sets the size of the hours column. AM/PM rendering is not
// implemented: 12 simply shows hours 0..11.
func WithHoursFormat(f HoursFormat) Option {
	return func(p *TimePicker) { p.hoursFormat = f }
}

// WithDate seeds the initial time from the clock time of date.
func WithDate(date time.Time) Option {
	return func(p *TimePicker) { p.date = date }
}

func WithTimeChange(onChange func(Time)) Option {
	return func(p *TimePicker) { p.onTimeChange = onChange }
}

func WithFormatter(f format.Formatter) Option {
	return func(p *TimePicker) { p.formatter = f }
}

type TimePicker struct {
	hoursFormat  HoursFormat
	date         time.Time
	formatter    format.Formatter
	onTimeChange func(Time)

	chosen  Time
	hours   *selector.Selector
	minutes *selector.Selector
}

func New(opts ...Option) (*TimePicker, error) {
	p := &TimePicker{hoursFormat: Format24, formatter: format.Default}
	for _, opt := range opts {
		opt(p)
	}
	if p.hoursFormat != Format24 && p.hoursFormat != Format12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHoursFormat, p.hoursFormat)
	}
	return p, nil
}

// Mount builds both columns inside their roots. It is called once the roots
// exist on the device.
func (p *TimePicker) Mount(d device.Device, bus *events.Dispatcher, hoursRoot, minutesRoot device.Element) error {
	p.setCurrentTime()

	hours, err := selector.New(HoursColumn, d, bus, hoursRoot, int(p.hoursFormat), p.onTimeSelect,
		selector.WithStartIndex(p.chosen.Hours), selector.WithFormatter(p.formatter))
	if err != nil {
		return err
	}
	minutes, err := selector.New(MinutesColumn, d, bus, minutesRoot, minutesCount, p.onTimeSelect,
		selector.WithStartIndex(p.chosen.Minutes), selector.WithFormatter(p.formatter))
	if err != nil {
		hours.Destroy()
		return err
	}
	p.hours, p.minutes = hours, minutes
	return nil
}

func (p *TimePicker) Destroy() {
	if p.hours != nil {
		p.hours.Destroy()
	}
	if p.minutes != nil {
		p.minutes.Destroy()
	}
}

func (p *TimePicker) Time() Time {
	return p.chosen
}

func (p *TimePicker) HoursFormat() HoursFormat {
	return p.hoursFormat
}

func (p *TimePicker) Hours() *selector.Selector   { return p.hours }
func (p *TimePicker) Minutes() *selector.Selector { return p.minutes }

func (p *TimePicker) onTimeSelect(sel selector.Selection) {
	value, err := strconv.Atoi(sel.Value)
	if err != nil {
		log.Panicf("### picker: non numeric value %q from %s", sel.Value, sel.SelectorName)
	}
	switch sel.SelectorName {
	case HoursColumn:
		p.chosen.Hours = value
	case MinutesColumn:
		p.chosen.Minutes = value
	default:
		log.Panicf("### picker: unknown column %q", sel.SelectorName)
	}
	log.Printf("picker: time=%s", p.chosen)

	if p.onTimeChange != nil {
		p.onTimeChange(p.chosen)
	}
}

func (p *TimePicker) setCurrentTime() {
	p.chosen = Time{}
	if p.date.IsZero() {
		return
	}
	p.chosen.Hours = p.date.Hour() % int(p.hoursFormat)
	p.chosen.Minutes = p.date.Minute()
}
