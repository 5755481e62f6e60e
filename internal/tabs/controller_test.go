package tabs

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/multibox/internal/fslist"
	"github.com/muurk/multibox/internal/style"
	"github.com/muurk/multibox/internal/widget"
)

type fakeTimer struct {
	armed    bool
	interval time.Duration
	arms     int
	disarms  int
}

func (t *fakeTimer) Arm(d time.Duration) {
	t.armed = true
	t.interval = d
	t.arms++
}

func (t *fakeTimer) Disarm() {
	t.armed = false
	t.disarms++
}

type fixture struct {
	reg   *widget.Registry
	style *style.State
	timer *fakeTimer
	ctrl  *Controller
	now   time.Time
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		reg:   widget.NewRegistry(),
		timer: &fakeTimer{},
		now:   time.Date(2026, 10, 16, 7, 5, 9, 0, time.Local),
	}
	f.style = style.New(f.reg, style.DefaultFace, style.DefaultFontSize, widget.Color{R: 10, G: 20, B: 30})
	opts = append([]Option{WithNow(func() time.Time { return f.now })}, opts...)
	f.ctrl = New(f.reg, f.style, f.timer, opts...)
	return f
}

func (f *fixture) kinds(t *testing.T) []widget.Kind {
	t.Helper()
	var kinds []widget.Kind
	for _, h := range f.ctrl.Session().Handles() {
		c, ok := f.reg.Control(h)
		require.True(t, ok, "session handle %d is not live", h)
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

func (f *fixture) control(t *testing.T, h widget.Handle) widget.Control {
	t.Helper()
	c, ok := f.reg.Control(h)
	require.True(t, ok, "handle %d is not live", h)
	return c
}

var wantKinds = map[ID][]widget.Kind{
	HelloWorld: {widget.KindLabel},
	Clock:      {widget.KindLabel},
	FileBrowser: {
		widget.KindListView,
		widget.KindButton,
	},
	StyleSettings: {
		widget.KindSlider, widget.KindSlider, widget.KindSlider, widget.KindSlider,
		widget.KindSwatch,
		widget.KindLabel,
	},
}

func TestActivateTabBuildsSession(t *testing.T) {
	for _, id := range All() {
		t.Run(id.String(), func(t *testing.T) {
			f := newFixture(t)
			f.ctrl.ActivateTab(id)

			assert.Equal(t, id, f.ctrl.Active())
			assert.Equal(t, wantKinds[id], f.kinds(t))
			assert.Equal(t, id == Clock, f.timer.armed)
			assert.Equal(t, id == Clock, f.ctrl.TimerArmed())

			// Tab strip plus session controls and nothing else
			assert.Equal(t, 1+len(wantKinds[id]), f.reg.Stats().Live)
			assert.Equal(t, int(id), f.control(t, f.ctrl.TabStrip()).Pos)
		})
	}
}

func TestSessionContents(t *testing.T) {
	f := newFixture(t)

	f.ctrl.ActivateTab(HelloWorld)
	assert.Equal(t, Greeting, f.control(t, f.ctrl.Session().Content).Text)

	f.ctrl.ActivateTab(Clock)
	assert.Equal(t, "07:05:09", f.control(t, f.ctrl.Session().Content).Text)
	assert.Equal(t, DefaultTickInterval, f.timer.interval)

	f.ctrl.ActivateTab(FileBrowser)
	list := f.control(t, f.ctrl.Session().Content)
	assert.Equal(t, FileColumns, list.Columns)
	assert.Nil(t, list.Rows)
	assert.Equal(t, BrowseLabel, f.control(t, f.ctrl.Session().Browse).Text)

	f.ctrl.ActivateTab(StyleSettings)
	s := f.ctrl.Session()
	wantPos := []int{style.DefaultFontSize, 10, 20, 30}
	for i, h := range s.Sliders {
		c := f.control(t, h)
		assert.Equal(t, SliderCaptions[i], c.Text)
		assert.Equal(t, wantPos[i], c.Pos)
	}
	font := f.control(t, s.Sliders[SliderFontSize])
	assert.Equal(t, 10, font.Min)
	assert.Equal(t, 30, font.Max)
	red := f.control(t, s.Sliders[SliderRed])
	assert.Equal(t, 0, red.Min)
	assert.Equal(t, 255, red.Max)

	preview := f.control(t, s.Preview)
	assert.True(t, preview.Filled)
	assert.Equal(t, widget.Color{R: 10, G: 20, B: 30}, preview.Fill)
	assert.Equal(t, "RGB: (10, 20, 30)", f.control(t, s.Readout).Text)
}

func TestRandomTabSequencesDoNotLeak(t *testing.T) {
	f := newFixture(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		id := ID(rng.Intn(Count))
		f.ctrl.ActivateTab(id)

		require.Equal(t, wantKinds[id], f.kinds(t), "step %d", i)
		require.Equal(t, 1+len(wantKinds[id]), f.reg.Stats().Live, "step %d", i)
		require.Equal(t, id == Clock, f.timer.armed, "step %d", i)
	}

	f.ctrl.Destroy()

	stats := f.reg.Stats()
	assert.Equal(t, 0, stats.Live)
	assert.Equal(t, stats.Created, stats.Destroyed)
	assert.Equal(t, 0, stats.LiveFonts)
	assert.Equal(t, stats.FontsAllocated, stats.FontsReleased)
	assert.False(t, f.timer.armed)
	assert.Equal(t, f.timer.arms, f.timer.disarms)
}

func TestClockRestartsAfterLeaving(t *testing.T) {
	f := newFixture(t)

	f.ctrl.ActivateTab(Clock)
	f.now = f.now.Add(2 * time.Second)
	f.ctrl.OnTimerTick()
	assert.Equal(t, "07:05:11", f.control(t, f.ctrl.Session().Content).Text)

	f.ctrl.ActivateTab(HelloWorld)
	assert.False(t, f.timer.armed)

	// A late tick while another tab is active changes nothing
	f.ctrl.OnTimerTick()
	assert.Equal(t, Greeting, f.control(t, f.ctrl.Session().Content).Text)

	f.now = f.now.Add(30 * time.Second)
	f.ctrl.ActivateTab(Clock)
	assert.True(t, f.timer.armed)
	assert.Equal(t, 2, f.timer.arms)
	assert.Equal(t, "07:05:41", f.control(t, f.ctrl.Session().Content).Text)
}

func TestTickIntervalOption(t *testing.T) {
	f := newFixture(t, WithTickInterval(250*time.Millisecond))
	f.ctrl.ActivateTab(Clock)
	assert.Equal(t, 250*time.Millisecond, f.timer.interval)
}

func TestStylePropagatesToAllControls(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(StyleSettings)
	s := f.ctrl.Session()

	require.True(t, f.ctrl.OnScroll(s.Sliders[SliderRed], 200))
	require.True(t, f.ctrl.OnScroll(s.Sliders[SliderFontSize], 14))

	want := widget.Color{R: 200, G: 20, B: 30}
	for _, c := range f.reg.Controls() {
		assert.Equal(t, want, c.TextColor, "control %d (%s)", c.Handle, c.Kind)
		assert.Equal(t, f.style.Font(), c.Font, "control %d (%s)", c.Handle, c.Kind)
	}
	assert.Equal(t, 14, f.style.FontSize())
	assert.Equal(t, want, f.control(t, s.Preview).Fill)
	assert.Equal(t, "RGB: (200, 20, 30)", f.control(t, s.Readout).Text)

	// Style survives a tab switch and reaches the new session and the tab strip
	f.ctrl.ActivateTab(HelloWorld)
	label := f.control(t, f.ctrl.Session().Content)
	assert.Equal(t, want, label.TextColor)
	assert.Equal(t, f.style.Font(), label.Font)
	assert.Equal(t, want, f.control(t, f.ctrl.TabStrip()).TextColor)
}

func TestDirectStyleChangesSyncSliders(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(StyleSettings)

	f.style.SetColor(300, -1, 77)
	f.style.SetFontSize(5)

	s := f.ctrl.Session()
	want := []int{10, 255, 0, 77}
	for i, h := range s.Sliders {
		assert.Equal(t, want[i], f.control(t, h).Pos)
		pos, ok := f.ctrl.SliderPos(i)
		require.True(t, ok)
		assert.Equal(t, want[i], pos)
	}
}

func TestOnScrollClampsAndIgnoresForeignHandles(t *testing.T) {
	f := newFixture(t)

	f.ctrl.ActivateTab(HelloWorld)
	assert.False(t, f.ctrl.OnScroll(f.ctrl.Session().Content, 5))

	f.ctrl.ActivateTab(StyleSettings)
	s := f.ctrl.Session()
	assert.False(t, f.ctrl.OnScroll(f.ctrl.TabStrip(), 1))
	assert.False(t, f.ctrl.OnScroll(0, 1))

	require.True(t, f.ctrl.OnScroll(s.Sliders[SliderBlue], 9000))
	require.True(t, f.ctrl.OnScroll(s.Sliders[SliderFontSize], 2))
	assert.Equal(t, uint8(255), f.style.Color().B)
	assert.Equal(t, style.MinFontSize, f.style.FontSize())
}

func TestRepeatedScrollDoesNotLeakFonts(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(StyleSettings)
	h := f.ctrl.Session().Sliders[SliderFontSize]

	for i := 0; i < 100; i++ {
		f.ctrl.OnScroll(h, 25)
	}
	for i := 0; i < 100; i++ {
		f.ctrl.OnScroll(h, 10+i%21)
	}

	stats := f.reg.Stats()
	assert.Equal(t, 1, stats.LiveFonts)
	assert.Equal(t, stats.FontsAllocated-1, stats.FontsReleased)
}

func TestOnResize(t *testing.T) {
	f := newFixture(t)
	size := widget.Size{W: 800, H: 600}

	f.ctrl.ActivateTab(FileBrowser)
	f.ctrl.OnResize(size)
	f.ctrl.OnResize(size)

	g := Layout(size)
	s := f.ctrl.Session()
	assert.Equal(t, widget.Rect{X: 0, Y: 0, W: 800, H: 560}, f.control(t, f.ctrl.TabStrip()).Rect)
	assert.Equal(t, widget.Rect{X: 0, Y: 50, W: 800, H: 500}, f.control(t, s.Content).Rect)
	assert.Equal(t, widget.Rect{X: 20, Y: 560, W: 120, H: 30}, f.control(t, s.Browse).Rect)
	assert.Equal(t, g.Browse, f.control(t, s.Browse).Rect)
	assert.Equal(t, size, f.ctrl.Size())
}

func TestOnResizeWithoutStyleControls(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(HelloWorld)
	before := f.reg.Stats()

	f.ctrl.OnResize(widget.Size{W: 300, H: 200})

	assert.Equal(t, widget.Rect{W: 300, H: 160}, f.control(t, f.ctrl.TabStrip()).Rect)
	assert.Equal(t, widget.Rect{Y: 50, W: 300, H: 100}, f.control(t, f.ctrl.Session().Content).Rect)
	assert.Equal(t, before.Live, f.reg.Stats().Live)
	assert.Zero(t, f.ctrl.Session().Sliders[SliderRed])
}

func TestResizeBeforeFirstTab(t *testing.T) {
	f := newFixture(t)
	f.ctrl.OnResize(widget.Size{W: 100, H: 100})
	assert.Equal(t, widget.Rect{W: 100, H: 60}, f.control(t, f.ctrl.TabStrip()).Rect)
}

func TestStyleLayout(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(StyleSettings)
	f.ctrl.OnResize(widget.Size{W: 1024, H: 768})

	s := f.ctrl.Session()
	wantY := []int{60, 100, 140, 180}
	for i, h := range s.Sliders {
		assert.Equal(t, widget.Rect{X: 100, Y: wantY[i], W: 200, H: 30}, f.control(t, h).Rect)
	}
	assert.Equal(t, widget.Rect{X: 320, Y: 100, W: 100, H: 100}, f.control(t, s.Preview).Rect)
	assert.Equal(t, widget.Rect{X: 20, Y: 220, W: 400, H: 20}, f.control(t, s.Readout).Rect)
}

func TestShowFolder(t *testing.T) {
	entries := []fslist.FileEntry{{Name: "a.txt", Size: 10}, {Name: "b.bin", Size: 4294967295}}
	var listed []string
	f := newFixture(t, WithLister(func(path string) ([]fslist.FileEntry, error) {
		listed = append(listed, path)
		if path == "/bad" {
			return nil, &fslist.InvalidPathError{Path: path}
		}
		return entries, nil
	}))

	f.ctrl.ActivateTab(HelloWorld)
	assert.ErrorIs(t, f.ctrl.ShowFolder("/ok"), ErrNotBrowsing)
	assert.Empty(t, listed)

	f.ctrl.ActivateTab(FileBrowser)
	require.NoError(t, f.ctrl.ShowFolder("/ok"))
	list := f.control(t, f.ctrl.Session().Content)
	assert.Equal(t, []widget.Row{{"a.txt", "10"}, {"b.bin", "4294967295"}}, list.Rows)

	err := f.ctrl.ShowFolder("/bad")
	require.Error(t, err)
	assert.True(t, fslist.IsInvalidPath(err))
	assert.Equal(t, []widget.Row{{"a.txt", "10"}, {"b.bin", "4294967295"}},
		f.control(t, f.ctrl.Session().Content).Rows, "rows must survive a failed listing")
}

func TestShowFolderRealDirectory(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(FileBrowser)

	err := f.ctrl.ShowFolder("/nonexistent")
	require.Error(t, err)
	var ipe *fslist.InvalidPathError
	assert.True(t, errors.As(err, &ipe))
	assert.Nil(t, f.control(t, f.ctrl.Session().Content).Rows)
}

func TestOnCommand(t *testing.T) {
	f := newFixture(t)

	f.ctrl.ActivateTab(FileBrowser)
	browse := f.ctrl.Session().Browse
	assert.Equal(t, CommandBrowse, f.ctrl.OnCommand(browse))
	assert.Equal(t, CommandNone, f.ctrl.OnCommand(f.ctrl.Session().Content))
	assert.Equal(t, CommandNone, f.ctrl.OnCommand(0))

	f.ctrl.ActivateTab(HelloWorld)
	assert.Equal(t, CommandNone, f.ctrl.OnCommand(browse))
}

func TestDestroyIsFinal(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(Clock)

	f.ctrl.Destroy()
	f.ctrl.Destroy()
	assert.False(t, f.timer.armed)
	assert.Equal(t, 1, f.timer.disarms)
	assert.Zero(t, f.ctrl.TabStrip())

	created := f.reg.Stats().Created
	f.ctrl.ActivateTab(StyleSettings)
	f.ctrl.OnTimerTick()
	f.ctrl.OnResize(widget.Size{W: 10, H: 10})
	f.style.SetColor(1, 2, 3)

	stats := f.reg.Stats()
	assert.Equal(t, created, stats.Created)
	assert.Equal(t, 0, stats.Live)
	assert.Equal(t, 0, stats.LiveFonts)
}

func TestActivateInvalidTab(t *testing.T) {
	f := newFixture(t)
	f.ctrl.ActivateTab(Clock)
	f.ctrl.ActivateTab(ID(17))
	assert.Equal(t, Clock, f.ctrl.Active())
	assert.True(t, f.timer.armed)
}
