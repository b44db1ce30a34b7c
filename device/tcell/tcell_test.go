package tcell

import (
	"testing"
	"timepicker/device"
	"timepicker/events"
	"timepicker/lifecycle"
	"timepicker/selector"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDevice(t *testing.T) (*tcellDevice, tcell.SimulationScreen, *lifecycle.Lifecycle) {
	t.Helper()
	lc := lifecycle.New()
	screen := tcell.NewSimulationScreen("UTF-8")
	d, err := newDevice(lc, screen, DefaultItemStyle)
	require.NoError(t, err)
	screen.SetSize(40, 12)
	t.Cleanup(lc.Stop)
	return d, screen, lc
}

func next(t *testing.T, d *tcellDevice) events.Event {
	t.Helper()
	for {
		ev, ok := d.PollEvent()
		require.True(t, ok)
		if _, resize := ev.(events.ScreenSize); !resize {
			return ev
		}
	}
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestItemStyle(t *testing.T) {
	assert.Equal(t, 2, DefaultItemStyle.Height())
	style := ItemStyle{MarginTop: 1, PaddingTop: 1, PaddingBottom: 1, MarginBottom: 2}
	assert.Equal(t, 6, style.Height())
	assert.Equal(t, 2, style.labelLine())
}

func TestRenderColumn(t *testing.T) {
	d, screen, _ := newTestDevice(t)
	bus := events.NewDispatcher()
	col := d.NewColumn("minutes")
	d.Place(col, device.Position{X: 2, Y: 3}, 6)

	s, err := selector.New("minutes", d, bus, col, 60, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2), s.ItemHeight())

	d.Render("Time", "Selected 00:00")

	assert.Equal(t, 'T', runeAt(screen, 0, 0))
	assert.Equal(t, 'S', runeAt(screen, 0, 11))

	assert.Equal(t, '5', runeAt(screen, 4, 3))
	assert.Equal(t, '9', runeAt(screen, 5, 3))
	assert.Equal(t, ' ', runeAt(screen, 4, 4))
	assert.Equal(t, '0', runeAt(screen, 4, 5))
	assert.Equal(t, '0', runeAt(screen, 5, 5))
	assert.Equal(t, '0', runeAt(screen, 4, 7))
	assert.Equal(t, '1', runeAt(screen, 5, 7))
	assert.Equal(t, ' ', runeAt(screen, 4, 9))

	_, _, style, _ := screen.GetContent(4, 5)
	assert.Equal(t, tcellStyle(styleSelected), style)
	_, _, style, _ = screen.GetContent(4, 3)
	assert.Equal(t, tcellStyle(styleColumn), style)

	bus.Dispatch(&events.Wheel{Input: events.Input{Target: col}, DeltaY: -1})
	d.Render("Time", "")
	assert.Equal(t, '0', runeAt(screen, 4, 5))
	assert.Equal(t, '1', runeAt(screen, 5, 5))

	s.Destroy()
	d.Render("Time", "")
	assert.Equal(t, ' ', runeAt(screen, 4, 5))
}

func TestMouseEvents(t *testing.T) {
	d, screen, _ := newTestDevice(t)
	col := d.NewColumn("hours")
	d.Place(col, device.Position{X: 2, Y: 3}, 6)
	d.SetHeight(col, 6)

	screen.InjectMouse(3, 4, tcell.WheelUp, tcell.ModNone)
	wheel, ok := next(t, d).(*events.Wheel)
	require.True(t, ok)
	assert.Equal(t, float64(1), wheel.DeltaY)
	assert.Equal(t, col, wheel.Target)

	screen.InjectMouse(30, 1, tcell.WheelDown, tcell.ModNone)
	wheel, ok = next(t, d).(*events.Wheel)
	require.True(t, ok)
	assert.Equal(t, float64(-1), wheel.DeltaY)
	assert.Nil(t, wheel.Target)

	screen.InjectMouse(3, 4, tcell.Button1, tcell.ModNone)
	down, ok := next(t, d).(*events.MouseDown)
	require.True(t, ok)
	assert.Equal(t, col, down.Target)
	assert.Equal(t, float64(4), down.Y)

	screen.InjectMouse(3, 6, tcell.Button1, tcell.ModNone)
	move, ok := next(t, d).(*events.MouseMove)
	require.True(t, ok)
	assert.Equal(t, float64(6), move.Y)

	screen.InjectMouse(3, 6, tcell.ButtonNone, tcell.ModNone)
	up, ok := next(t, d).(*events.MouseUp)
	require.True(t, ok)
	assert.Equal(t, float64(6), up.Y)
}

func TestKeyEvents(t *testing.T) {
	d, screen, _ := newTestDevice(t)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.Equal(t, events.Key{Name: "Esc"}, next(t, d))

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.Equal(t, events.Key{Name: "Rune[q]"}, next(t, d))
}

func TestStopEndsPolling(t *testing.T) {
	d, _, lc := newTestDevice(t)
	lc.Stop()

	for {
		_, ok := d.PollEvent()
		if !ok {
			break
		}
	}
}
