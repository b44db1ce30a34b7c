package selector

import (
	"log"
	"timepicker/events"
)

type family struct {
	move, end events.Kind
}

var (
	mouseFamily = family{move: events.KindMouseMove, end: events.KindMouseUp}
	touchFamily = family{move: events.KindTouchMove, end: events.KindTouchEnd}
)

func (s *Selector) listen() {
	s.subscriptions = append(s.subscriptions,
		s.bus.Subscribe(s.root, events.KindMouseDown, s.handleEvent),
		s.bus.Subscribe(s.root, events.KindTouchStart, s.handleEvent),
		s.bus.Subscribe(s.root, events.KindWheel, s.handleEvent),
	)
}

func (s *Selector) handleEvent(event events.Event) {
	if s.destroyed {
		return
	}
	switch event := event.(type) {
	case *events.MouseDown:
		event.PreventDefault()
		s.dragStart(mouseFamily, event.Y)

	case *events.TouchStart:
		event.PreventDefault()
		if y, ok := pageY(event.ChangedTouches); ok {
			s.dragStart(touchFamily, y)
		}

	case *events.MouseMove:
		event.PreventDefault()
		s.dragMove(event.Y)

	case *events.TouchMove:
		event.PreventDefault()
		if y, ok := pageY(event.ChangedTouches); ok {
			s.dragMove(y)
		}

	case *events.MouseUp, *events.TouchEnd:
		s.dragEnd()

	case *events.Wheel:
		event.PreventDefault()
		s.wheel(event.DeltaY)

	default:
		log.Panicf("### selector %q: unhandled event: %#v", s.name, event)
	}
}

// dragStart replaces any drag already in progress.
func (s *Selector) dragStart(f family, y float64) {
	s.endDragSession()
	s.state = Dragging
	s.dragAnchor = y
	s.dragSession = []*events.Subscription{
		s.bus.Subscribe(events.Window, f.move, s.handleEvent),
		s.bus.Subscribe(events.Window, f.end, s.handleEvent),
	}
}

func (s *Selector) dragMove(y float64) {
	if s.state != Dragging {
		return
	}
	delta := y - s.dragAnchor
	s.dragAnchor = y
	s.applyOffsetDelta(delta)
}

func (s *Selector) dragEnd() {
	if s.state != Dragging {
		return
	}
	s.endDragSession()
	s.settle()
}

// wheel moves exactly one item per event: up (positive delta) shows the
// previous value, down the next one.
func (s *Selector) wheel(deltaY float64) {
	s.endDragSession()
	s.applyOffsetDelta(s.offsetToNearestItem() + s.itemHeight*sign(deltaY))
	s.selectCurrentElement()
}

func (s *Selector) settle() {
	s.applyOffsetDelta(s.offsetToNearestItem())
	s.selectCurrentElement()
}

// endDragSession drops the window listeners of the current drag, if any,
// and returns to Idle without settling.
func (s *Selector) endDragSession() {
	for _, sub := range s.dragSession {
		sub.Unsubscribe()
	}
	s.dragSession = nil
	s.state = Idle
}

func pageY(touches []events.Touch) (float64, bool) {
	if len(touches) == 0 {
		return 0, false
	}
	return touches[0].PageY, true
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
