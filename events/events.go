package events

import (
	"fmt"
)

type Kind int

const (
	KindMouseDown Kind = iota
	KindMouseMove
	KindMouseUp
	KindTouchStart
	KindTouchMove
	KindTouchEnd
	KindWheel
	KindKey
	KindScreenSize
	KindQuit
)

type Event interface {
	Kind() Kind
}

// Input is embedded by every device input event.
type Input struct {
	Target           any
	defaultPrevented bool
}

func (i *Input) PreventDefault() {
	i.defaultPrevented = true
}

func (i *Input) DefaultPrevented() bool {
	return i.defaultPrevented
}

func (i *Input) target() any {
	return i.Target
}

type MouseDown struct {
	Input
	Y float64
}

func (*MouseDown) Kind() Kind { return KindMouseDown }

type MouseMove struct {
	Input
	Y float64
}

func (*MouseMove) Kind() Kind { return KindMouseMove }

type MouseUp struct {
	Input
	Y float64
}

func (*MouseUp) Kind() Kind { return KindMouseUp }

type Touch struct {
	PageY float64
}

type TouchStart struct {
	Input
	ChangedTouches []Touch
}

func (*TouchStart) Kind() Kind { return KindTouchStart }

type TouchMove struct {
	Input
	ChangedTouches []Touch
}

func (*TouchMove) Kind() Kind { return KindTouchMove }

type TouchEnd struct {
	Input
	ChangedTouches []Touch
}

func (*TouchEnd) Kind() Kind { return KindTouchEnd }

// Wheel carries the vertical wheel delta: positive when the wheel turns up.
type Wheel struct {
	Input
	DeltaY float64
}

func (*Wheel) Kind() Kind { return KindWheel }

type Key struct {
	Name string
}

func (Key) Kind() Kind { return KindKey }

type ScreenSize struct {
	Width, Height int
}

func (ScreenSize) Kind() Kind { return KindScreenSize }

type Quit struct{}

func (Quit) Kind() Kind { return KindQuit }

func (k Kind) String() string {
	switch k {
	case KindMouseDown:
		return "MouseDown"
	case KindMouseMove:
		return "MouseMove"
	case KindMouseUp:
		return "MouseUp"
	case KindTouchStart:
		return "TouchStart"
	case KindTouchMove:
		return "TouchMove"
	case KindTouchEnd:
		return "TouchEnd"
	case KindWheel:
		return "Wheel"
	case KindKey:
		return "Key"
	case KindScreenSize:
		return "ScreenSize"
	case KindQuit:
		return "Quit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (w *Wheel) String() string {
	return fmt.Sprintf("Wheel(%v)", w.DeltaY)
}

func (k Key) String() string {
	return fmt.Sprintf("Key(%s)", k.Name)
}
