package picker

import (
	"testing"
	"time"
	"timepicker/device/mock_device"
	"timepicker/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	bus         *events.Dispatcher
	hoursRoot   *mock_device.Element
	minutesRoot *mock_device.Element
	changes     []Time
}

func mount(t *testing.T, opts ...Option) (*TimePicker, *fixture) {
	t.Helper()
	d := mock_device.NewDevice(2)
	f := &fixture{
		bus:         events.NewDispatcher(),
		hoursRoot:   d.NewRoot(HoursColumn),
		minutesRoot: d.NewRoot(MinutesColumn),
	}
	opts = append(opts, WithTimeChange(func(tm Time) { f.changes = append(f.changes, tm) }))
	p, err := New(opts...)
	require.NoError(t, err)
	require.NoError(t, p.Mount(d, f.bus, f.hoursRoot, f.minutesRoot))
	return p, f
}

func (f *fixture) wheel(root *mock_device.Element, deltaY float64) {
	f.bus.Dispatch(&events.Wheel{Input: events.Input{Target: root}, DeltaY: deltaY})
}

func TestDefaults(t *testing.T) {
	p, f := mount(t)

	assert.Equal(t, Time{}, p.Time())
	assert.Equal(t, Format24, p.HoursFormat())
	assert.Equal(t, 24, p.Hours().ElementCount())
	assert.Equal(t, 60, p.Minutes().ElementCount())
	assert.Equal(t, 0, p.Hours().Value())
	assert.Equal(t, 0, p.Minutes().Value())
	assert.Empty(t, f.changes)
}

func TestTimeChange(t *testing.T) {
	p, f := mount(t)

	f.wheel(f.hoursRoot, -1)
	f.wheel(f.hoursRoot, -1)
	f.wheel(f.minutesRoot, 1)

	assert.Equal(t, Time{Hours: 2, Minutes: 59}, p.Time())
	assert.Equal(t, []Time{{1, 0}, {2, 0}, {2, 59}}, f.changes)
	assert.Equal(t, "02:59", p.Time().String())
}

func TestDateSeedsColumns(t *testing.T) {
	date := time.Date(2024, 5, 1, 15, 42, 0, 0, time.UTC)
	p, f := mount(t, WithDate(date))

	assert.Equal(t, Time{Hours: 15, Minutes: 42}, p.Time())
	assert.Equal(t, 15, p.Hours().Value())
	assert.Equal(t, 42, p.Minutes().Value())
	assert.Empty(t, f.changes)

	f.wheel(f.minutesRoot, -1)
	assert.Equal(t, Time{Hours: 15, Minutes: 43}, p.Time())
}

func TestTwelveHourFormat(t *testing.T) {
	date := time.Date(2024, 5, 1, 15, 5, 0, 0, time.UTC)
	p, f := mount(t, WithHoursFormat(Format12), WithDate(date))

	assert.Equal(t, 12, p.Hours().ElementCount())
	assert.Equal(t, 3, p.Hours().Value())

	f.wheel(f.hoursRoot, 1)
	f.wheel(f.hoursRoot, 1)
	f.wheel(f.hoursRoot, 1)
	f.wheel(f.hoursRoot, 1)
	assert.Equal(t, 11, p.Time().Hours)
}

func TestInvalidHoursFormat(t *testing.T) {
	_, err := New(WithHoursFormat(HoursFormat(10)))
	assert.ErrorIs(t, err, ErrInvalidHoursFormat)
}

func TestMountFailureLeavesNothingBehind(t *testing.T) {
	d := mock_device.NewDevice(0)
	bus := events.NewDispatcher()
	p, err := New()
	require.NoError(t, err)

	err = p.Mount(d, bus, d.NewRoot(HoursColumn), d.NewRoot(MinutesColumn))
	assert.Error(t, err)
	assert.Equal(t, 0, bus.Len())
	p.Destroy()
}

func TestDestroy(t *testing.T) {
	p, f := mount(t)

	f.bus.Dispatch(&events.MouseDown{Input: events.Input{Target: f.minutesRoot}, Y: 4})
	f.bus.Dispatch(&events.MouseMove{Y: 1})
	p.Destroy()

	assert.Equal(t, 0, f.bus.Len())
	assert.Nil(t, mock_device.List(f.hoursRoot))
	assert.Nil(t, mock_device.List(f.minutesRoot))
	f.bus.Dispatch(&events.MouseUp{Y: 1})
	f.wheel(f.hoursRoot, 1)
	assert.Empty(t, f.changes)
	assert.Equal(t, Time{}, p.Time())
}
