package tcell

import (
	"context"
	"log"
	"timepicker/events"
	"timepicker/lifecycle"
	"timepicker/stream"

	"github.com/gdamore/tcell/v2"
)

// ItemStyle is the box of one list item, in rows. The label takes one row.
type ItemStyle struct {
	MarginTop     int
	PaddingTop    int
	PaddingBottom int
	MarginBottom  int
}

func (s ItemStyle) Height() int {
	return s.MarginTop + s.PaddingTop + 1 + s.PaddingBottom + s.MarginBottom
}

func (s ItemStyle) labelLine() int {
	return s.MarginTop + s.PaddingTop
}

var DefaultItemStyle = ItemStyle{PaddingBottom: 1}

// NewDevice takes over the terminal.
func NewDevice(lc *lifecycle.Lifecycle, style ItemStyle) (*tcellDevice, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newDevice(lc, screen, style)
}

func newDevice(lc *lifecycle.Lifecycle, screen tcell.Screen, style ItemStyle) (*tcellDevice, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcellStyle(styleDefault))
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)

	d := &tcellDevice{
		screen:   screen,
		style:    style,
		inEvents: stream.NewStream[tcell.Event]("tcell"),
	}
	lc.OnStop(screen.Fini)
	lc.Go(d.pollEvents)
	return d, nil
}

func (d *tcellDevice) pollEvents(ctx context.Context) {
	defer d.inEvents.Close()
	for {
		event := d.screen.PollEvent()
		if event == nil || ctx.Err() != nil {
			return
		}
		d.inEvents.Push(event)
	}
}

// PollEvent blocks until the next input event. It reports false once the
// device is stopped. It must be called from the goroutine that dispatches
// events, since it tracks the mouse button state.
func (d *tcellDevice) PollEvent() (events.Event, bool) {
	for {
		event, ok := d.inEvents.Pull()
		if !ok {
			return nil, false
		}
		if ev := d.uiEvent(event); ev != nil {
			return ev, true
		}
	}
}

func (d *tcellDevice) uiEvent(event tcell.Event) events.Event {
	switch event := event.(type) {
	case *tcell.EventResize:
		d.sync = true
		w, h := event.Size()
		return events.ScreenSize{Width: w, Height: h}

	case *tcell.EventKey:
		return events.Key{Name: event.Name()}

	case *tcell.EventMouse:
		return d.mouseEvent(event)

	default:
		return nil
	}
}

// mouseEvent turns tcell's button masks into press, drag, release and wheel
// events. Wheel up reports a positive delta.
func (d *tcellDevice) mouseEvent(event *tcell.EventMouse) events.Event {
	x, y := event.Position()
	buttons := event.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return &events.Wheel{Input: events.Input{Target: d.columnAt(x, y)}, DeltaY: 1}

	case buttons&tcell.WheelDown != 0:
		return &events.Wheel{Input: events.Input{Target: d.columnAt(x, y)}, DeltaY: -1}

	case buttons&tcell.Button1 != 0:
		if d.pressed {
			return &events.MouseMove{Y: float64(y)}
		}
		d.pressed = true
		return &events.MouseDown{Input: events.Input{Target: d.columnAt(x, y)}, Y: float64(y)}

	case buttons == tcell.ButtonNone && d.pressed:
		d.pressed = false
		return &events.MouseUp{Y: float64(y)}
	}
	log.Printf("tcell: ignored mouse event: buttons=%v x=%d y=%d", buttons, x, y)
	return nil
}
