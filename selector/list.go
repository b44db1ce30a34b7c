package selector

import (
	"fmt"
	"math"
	"strconv"
	"timepicker/device"
)

type item struct {
	displayIndex int
	value        int
	id           string
	element      device.Element
}

// Item describes one rendered element of the virtual window.
type Item struct {
	DisplayIndex int
	Value        int
}

// LogicalValue maps a position of the virtual window, counted from the real
// value 0 (so padding positions are negative or >= elementCount), to the
// value it displays.
func LogicalValue(position, elementCount int) int {
	value := position % elementCount
	if value < 0 {
		value += elementCount
	}
	return value
}

func (s *Selector) Items() []Item {
	result := make([]Item, len(s.items))
	for i, it := range s.items {
		result[i] = Item{DisplayIndex: it.displayIndex, Value: it.value}
	}
	return result
}

func (s *Selector) fill() error {
	half := PaddingCount / 2

	s.list = s.device.CreateListContainer()
	for i := -half; i < s.elementCount+half; i++ {
		value := LogicalValue(i, s.elementCount)
		id := strconv.Itoa(value)
		el := s.device.CreateItemElement(id, s.formatter.Format(value))
		s.device.AppendChild(s.list, el)
		s.items = append(s.items, item{displayIndex: i + half, value: value, id: id, element: el})
	}
	s.device.AppendChild(s.root, s.list)

	s.itemHeight = s.device.MeasureItemHeight(s.items[0].element)
	if !validHeight(s.itemHeight) {
		s.device.RemoveChild(s.root, s.list)
		return fmt.Errorf("selector %q: %w: %v", s.name, ErrInvalidItemHeight, s.itemHeight)
	}
	s.listHeight = s.itemHeight * float64(len(s.items))
	s.device.SetHeight(s.root, s.itemHeight*VisibleItems)

	s.currentOffset = -s.itemHeight
	if s.hasStart {
		s.currentOffset = s.startOffset()
	}
	s.device.SetTransform(s.list, s.currentOffset)
	return nil
}

// startOffset centers the configured start index. An index outside the range
// falls back to 0.
func (s *Selector) startOffset() float64 {
	if s.startIndex < 0 || s.startIndex >= s.elementCount {
		s.diagnostics(fmt.Errorf("selector %q: %w: %d not in [0, %d)", s.name, ErrStartOutOfRange, s.startIndex, s.elementCount))
		s.startIndex = 0
	}
	return -float64(s.startIndex+1) * s.itemHeight
}

// currentIndex is the display index of the centered item. The leading
// padding row visible above the center accounts for the +1.
func (s *Selector) currentIndex() int {
	idx := int(math.Round(math.Abs(s.currentOffset/s.itemHeight))) + 1
	if idx >= len(s.items) {
		idx = len(s.items) - 1
	}
	return idx
}
