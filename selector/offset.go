package selector

import "math"

// boundsStart is how far past the first item the list may travel before it
// wraps around. It is tighter while the user is dragging.
func (s *Selector) boundsStart() float64 {
	if s.state == Dragging {
		return s.itemHeight / 2
	}
	return s.itemHeight
}

// applyOffsetDelta moves the list by delta. Crossing the top bound re-anchors
// the list near its bottom end and crossing the bottom bound re-anchors it
// near its top, so the padding items make the jump invisible.
func (s *Selector) applyOffsetDelta(delta float64) {
	boundsStart := s.boundsStart()
	offset := s.currentOffset + delta

	if offset > -boundsStart {
		offset = delta - s.listHeight + s.itemHeight*PaddingCount - boundsStart
	} else if offset < -float64(s.elementCount)*s.itemHeight-boundsStart {
		offset = delta - boundsStart
	}

	s.currentOffset = offset
	s.device.SetTransform(s.list, offset)
}

// offsetToNearestItem returns the delta that aligns the list on the closest
// item boundary.
func (s *Selector) offsetToNearestItem() float64 {
	scrollOffset := math.Abs(math.Mod(s.currentOffset, s.itemHeight))
	if s.itemHeight-scrollOffset > s.itemHeight/2 {
		return scrollOffset
	}
	return -(s.itemHeight - scrollOffset)
}

func (s *Selector) selectCurrentElement() {
	it := s.items[s.currentIndex()]
	if s.onSelect != nil {
		s.onSelect(Selection{SelectorName: s.name, Value: it.id})
	}
}
