package device

// Element is an opaque handle to something a Device created: a column root,
// a list container or a list item. Only the Device that created an element
// knows what is behind it. Elements are matched by ==, so a Device should
// hand out pointers or other comparable values; the event dispatcher never
// matches a non-comparable element.
type Element any

// Device creates list elements, lays them out and reports their geometry.
// All offsets and heights are in the device's own vertical unit.
type Device interface {
	CreateListContainer() Element
	CreateItemElement(id, text string) Element
	AppendChild(parent, child Element)
	RemoveChild(parent, child Element)
	SetTransform(el Element, offsetY float64)
	SetHeight(el Element, height float64)
	MeasureItemHeight(item Element) float64
}

type Position struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

type Style struct {
	FG, BG byte
	Flags  Flags
}

type Flags byte

const (
	Bold    Flags = 1
	Italic  Flags = 2
	Reverse Flags = 4
)
