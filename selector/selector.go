// Package selector implements one wheel column of the time picker: a circular
// list of values rendered through a small fixed window of elements that the
// user drags, swipes or scrolls, and that snaps to the nearest item on
// release.
package selector

import (
	"errors"
	"fmt"
	"log"
	"math"
	"timepicker/device"
	"timepicker/events"
	"timepicker/format"
)

// PaddingCount is the number of duplicated items rendered around the real
// range, half before value 0 and half after the last value.
const PaddingCount = 4

// VisibleItems is the viewport height in items.
const VisibleItems = 3

var (
	ErrInvalidElementCount = errors.New("element count must be positive")
	ErrInvalidItemHeight   = errors.New("item height must be a positive finite number")
	ErrStartOutOfRange     = errors.New("start position is out of range")
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Selection is reported every time the column settles on a value.
type Selection struct {
	SelectorName string
	Value        string
}

type Option func(*Selector)

func WithStartIndex(index int) Option {
	return func(s *Selector) {
		s.startIndex = index
		s.hasStart = true
	}
}

func WithFormatter(f format.Formatter) Option {
	return func(s *Selector) { s.formatter = f }
}

// WithDiagnostics receives non-fatal configuration problems. Without it they
// are logged.
func WithDiagnostics(report func(error)) Option {
	return func(s *Selector) { s.diagnostics = report }
}

type Selector struct {
	name         string
	device       device.Device
	bus          *events.Dispatcher
	root         device.Element
	list         device.Element
	items        []item
	elementCount int
	startIndex   int
	hasStart     bool
	formatter    format.Formatter
	diagnostics  func(error)
	onSelect     func(Selection)

	itemHeight    float64
	listHeight    float64
	currentOffset float64
	state         State
	dragAnchor    float64

	subscriptions []*events.Subscription
	dragSession   []*events.Subscription
	destroyed     bool
}

// New builds the column inside root and starts listening for input on bus.
// onSelect is called with every settled value.
func New(name string, d device.Device, bus *events.Dispatcher, root device.Element,
	elementCount int, onSelect func(Selection), opts ...Option) (*Selector, error) {

	if elementCount <= 0 {
		return nil, fmt.Errorf("selector %q: %w: %d", name, ErrInvalidElementCount, elementCount)
	}
	s := &Selector{
		name:         name,
		device:       d,
		bus:          bus,
		root:         root,
		elementCount: elementCount,
		formatter:    format.Default,
		onSelect:     onSelect,
		diagnostics: func(err error) {
			log.Printf("selector: %v", err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.fill(); err != nil {
		return nil, err
	}
	s.listen()
	return s, nil
}

// Destroy stops all input handling and detaches the list from its root.
// A drag in progress is abandoned without reporting a value.
func (s *Selector) Destroy() {
	if s.destroyed {
		return
	}
	s.endDragSession()
	for _, sub := range s.subscriptions {
		sub.Unsubscribe()
	}
	s.subscriptions = nil
	s.device.RemoveChild(s.root, s.list)
	s.destroyed = true
}

func (s *Selector) Name() string                { return s.name }
func (s *Selector) Offset() float64             { return s.currentOffset }
func (s *Selector) ItemHeight() float64         { return s.itemHeight }
func (s *Selector) State() State                { return s.state }
func (s *Selector) StartIndex() int             { return s.startIndex }
func (s *Selector) ElementCount() int           { return s.elementCount }
func (s *Selector) Destroyed() bool             { return s.destroyed }
func (s *Selector) ListElement() device.Element { return s.list }

// Value resolves the logical value at the current offset without reporting it.
func (s *Selector) Value() int {
	return s.items[s.currentIndex()].value
}

func (s *Selector) String() string {
	return fmt.Sprintf("Selector(%s, count=%d, offset=%v, state=%s)", s.name, s.elementCount, s.currentOffset, s.state)
}

func validHeight(h float64) bool {
	return h > 0 && !math.IsInf(h, 0) && !math.IsNaN(h)
}
