package mock_device

import (
	"fmt"
	"log"
	"timepicker/device"
)

// Element is what the mock device hands out for every created element.
type Element struct {
	Kind     string
	Id       string
	Text     string
	OffsetY  float64
	Height   float64
	Parent   *Element
	Children []*Element
}

type mockDevice struct {
	itemHeight float64
	Calls      []string
}

// NewDevice returns a device whose items all measure itemHeight.
func NewDevice(itemHeight float64) *mockDevice {
	return &mockDevice{itemHeight: itemHeight}
}

// NewRoot creates a column root the way a host would before handing it to a selector.
func (d *mockDevice) NewRoot(name string) *Element {
	return &Element{Kind: "root", Id: name}
}

func (d *mockDevice) CreateListContainer() device.Element {
	d.record("CreateListContainer()")
	return &Element{Kind: "list"}
}

func (d *mockDevice) CreateItemElement(id, text string) device.Element {
	d.record("CreateItemElement(%q, %q)", id, text)
	return &Element{Kind: "item", Id: id, Text: text}
}

func (d *mockDevice) AppendChild(parent, child device.Element) {
	p, c := element(parent), element(child)
	d.record("AppendChild(%s, %s)", p.Kind, c.Kind)
	c.Parent = p
	p.Children = append(p.Children, c)
}

func (d *mockDevice) RemoveChild(parent, child device.Element) {
	p, c := element(parent), element(child)
	d.record("RemoveChild(%s, %s)", p.Kind, c.Kind)
	for i, existing := range p.Children {
		if existing == c {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			c.Parent = nil
			return
		}
	}
}

func (d *mockDevice) SetTransform(el device.Element, offsetY float64) {
	d.record("SetTransform(%v)", offsetY)
	element(el).OffsetY = offsetY
}

func (d *mockDevice) SetHeight(el device.Element, height float64) {
	d.record("SetHeight(%v)", height)
	element(el).Height = height
}

func (d *mockDevice) MeasureItemHeight(item device.Element) float64 {
	d.record("MeasureItemHeight(%s)", element(item).Id)
	return d.itemHeight
}

// List returns the list container mounted in root, or nil.
func List(root *Element) *Element {
	for _, child := range root.Children {
		if child.Kind == "list" {
			return child
		}
	}
	return nil
}

func (d *mockDevice) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func element(el device.Element) *Element {
	e, ok := el.(*Element)
	if !ok {
		log.Panicf("### mock device: foreign element %#v", el)
	}
	return e
}
