package tcell

import (
	"log"
	"math"
	"timepicker/device"
	"timepicker/stream"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type tcellDevice struct {
	screen   tcell.Screen
	style    ItemStyle
	inEvents *stream.Stream[tcell.Event]
	columns  []*column
	pressed  bool
	sync     bool
}

type column struct {
	name   string
	pos    device.Position
	width  int
	height float64
	list   *list
}

type list struct {
	items   []*item
	offsetY float64
}

type item struct {
	id   string
	text string
}

var (
	styleDefault  = device.Style{FG: 231, BG: 17}
	styleTitle    = device.Style{FG: 226, BG: 0, Flags: device.Bold | device.Italic}
	styleColumn   = device.Style{FG: 250, BG: 18}
	styleSelected = device.Style{FG: 231, BG: 20, Flags: device.Bold}
	styleStatus   = device.Style{FG: 231, BG: 8}
)

// NewColumn creates the root element of one picker column. It stays
// invisible until it is placed.
func (d *tcellDevice) NewColumn(name string) device.Element {
	c := &column{name: name}
	d.columns = append(d.columns, c)
	return c
}

// Place moves a column to pos on the screen.
func (d *tcellDevice) Place(el device.Element, pos device.Position, width int) {
	c := asColumn(el)
	c.pos = pos
	c.width = width
}

func (d *tcellDevice) CreateListContainer() device.Element {
	return &list{}
}

func (d *tcellDevice) CreateItemElement(id, text string) device.Element {
	return &item{id: id, text: text}
}

func (d *tcellDevice) AppendChild(parent, child device.Element) {
	switch parent := parent.(type) {
	case *column:
		parent.list = asList(child)
	case *list:
		parent.items = append(parent.items, asItem(child))
	default:
		log.Panicf("### tcell: cannot append to %#v", parent)
	}
}

func (d *tcellDevice) RemoveChild(parent, child device.Element) {
	switch parent := parent.(type) {
	case *column:
		if parent.list == asList(child) {
			parent.list = nil
		}
	case *list:
		it := asItem(child)
		for i, existing := range parent.items {
			if existing == it {
				parent.items = append(parent.items[:i], parent.items[i+1:]...)
				return
			}
		}
	default:
		log.Panicf("### tcell: cannot remove from %#v", parent)
	}
}

func (d *tcellDevice) SetTransform(el device.Element, offsetY float64) {
	asList(el).offsetY = offsetY
}

func (d *tcellDevice) SetHeight(el device.Element, height float64) {
	asColumn(el).height = height
}

func (d *tcellDevice) MeasureItemHeight(device.Element) float64 {
	return float64(d.style.Height())
}

// Render redraws the whole screen: title on the first line, the columns and
// status on the last line.
func (d *tcellDevice) Render(title, status string) {
	width, height := d.screen.Size()
	d.screen.Fill(' ', tcellStyle(styleDefault))
	d.text(0, 0, width, title, styleTitle)
	for _, c := range d.columns {
		d.renderColumn(c)
	}
	if height > 1 {
		d.text(0, height-1, width, status, styleStatus)
	}
	if d.sync {
		d.screen.Sync()
		d.sync = false
	} else {
		d.screen.Show()
	}
}

func (d *tcellDevice) renderColumn(c *column) {
	if c.list == nil || c.width <= 0 {
		return
	}
	itemHeight := d.style.Height()
	offset := int(math.Floor(c.list.offsetY))
	for row := 0; row < int(c.height); row++ {
		style := styleColumn
		if row >= itemHeight && row < 2*itemHeight {
			style = styleSelected
		}
		d.text(c.pos.X, c.pos.Y+row, c.width, "", style)

		line := row - offset
		if line < 0 || line%itemHeight != d.style.labelLine() {
			continue
		}
		if idx := line / itemHeight; idx < len(c.list.items) {
			d.centered(c.pos.X, c.pos.Y+row, c.width, c.list.items[idx].text, style)
		}
	}
}

// text writes txt left aligned and pads it with spaces to width cells.
func (d *tcellDevice) text(x, y, width int, txt string, style device.Style) {
	st := tcellStyle(style)
	col := x
	for _, r := range txt {
		w := runewidth.RuneWidth(r)
		if col+w > x+width {
			break
		}
		d.screen.SetContent(col, y, r, nil, st)
		col += w
	}
	for ; col < x+width; col++ {
		d.screen.SetContent(col, y, ' ', nil, st)
	}
}

func (d *tcellDevice) centered(x, y, width int, txt string, style device.Style) {
	pad := (width - runewidth.StringWidth(txt)) / 2
	if pad < 0 {
		pad = 0
	}
	d.text(x+pad, y, width-pad, txt, style)
}

func (d *tcellDevice) columnAt(x, y int) any {
	for _, c := range d.columns {
		if c.pos.X <= x && c.pos.X+c.width > x &&
			c.pos.Y <= y && c.pos.Y+int(c.height) > y {
			return c
		}
	}
	return nil
}

func tcellStyle(style device.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(style.FG))).
		Background(tcell.PaletteColor(int(style.BG))).
		Bold(style.Flags&device.Bold == device.Bold).
		Italic(style.Flags&device.Italic == device.Italic).
		Reverse(style.Flags&device.Reverse == device.Reverse)
}

func asColumn(el device.Element) *column {
	c, ok := el.(*column)
	if !ok {
		log.Panicf("### tcell: not a column: %#v", el)
	}
	return c
}

func asList(el device.Element) *list {
	l, ok := el.(*list)
	if !ok {
		log.Panicf("### tcell: not a list: %#v", el)
	}
	return l
}

func asItem(el device.Element) *item {
	it, ok := el.(*item)
	if !ok {
		log.Panicf("### tcell: not an item: %#v", el)
	}
	return it
}
