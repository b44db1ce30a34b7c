package app

import (
	"fmt"
	"log"
	"timepicker/device"
	"timepicker/events"
	"timepicker/layout"
	"timepicker/picker"
)

// Device is a terminal device able to host picker columns.
type Device interface {
	device.Device
	NewColumn(name string) device.Element
	Place(el device.Element, pos device.Position, width int)
	Render(title, status string)
	PollEvent() (events.Event, bool)
}

const (
	columnWidth = 6
	columnGap   = 2
	helpLine    = " wheel or drag to change   Enter: confirm   Esc: quit"
)

type app struct {
	device     Device
	bus        *events.Dispatcher
	picker     *picker.TimePicker
	hours      device.Element
	minutes    device.Element
	screenSize events.ScreenSize
	quit       bool
	confirmed  bool
}

// Run mounts p on d and handles input until the user confirms or quits.
// It reports the chosen time and whether it was confirmed.
func Run(d Device, p *picker.TimePicker) (picker.Time, bool, error) {
	a := &app{
		device:  d,
		bus:     events.NewDispatcher(),
		picker:  p,
		hours:   d.NewColumn(picker.HoursColumn),
		minutes: d.NewColumn(picker.MinutesColumn),
	}
	if err := p.Mount(d, a.bus, a.hours, a.minutes); err != nil {
		return picker.Time{}, false, fmt.Errorf("mount picker: %w", err)
	}
	defer p.Destroy()

	for !a.quit {
		a.render()
		event, ok := d.PollEvent()
		if !ok {
			break
		}
		a.handleEvent(event)
	}
	return p.Time(), a.confirmed, nil
}

func (a *app) handleEvent(event events.Event) {
	switch event := event.(type) {
	case events.ScreenSize:
		a.screenSize = event
		a.layout()

	case events.Key:
		switch event.Name {
		case "Ctrl+C", "Esc", "Rune[q]":
			a.quit = true
		case "Enter":
			a.confirmed = true
			a.quit = true
		}

	case events.Quit:
		a.quit = true

	default:
		if a.bus.Dispatch(event) == 0 {
			log.Printf("app: no listener for %s", event.Kind())
		}
	}
}

func (a *app) layout() {
	widths := layout.Distribute(a.screenSize.Width,
		layout.Flex(1),
		layout.Fixed(columnWidth),
		layout.Fixed(columnGap),
		layout.Fixed(columnWidth),
		layout.Flex(1),
	)
	xs := layout.Offsets(0, widths)
	height := int(a.picker.Hours().ItemHeight()) * 3
	top := (a.screenSize.Height - height) / 2
	if top < 1 {
		top = 1
	}
	a.device.Place(a.hours, device.Position{X: xs[1], Y: top}, widths[1])
	a.device.Place(a.minutes, device.Position{X: xs[3], Y: top}, widths[3])
}

func (a *app) render() {
	a.device.Render(" Time "+a.picker.Time().String(), helpLine)
}
