package tabs

import (
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/multibox/internal/clock"
	"github.com/muurk/multibox/internal/fslist"
	"github.com/muurk/multibox/internal/logging"
	"github.com/muurk/multibox/internal/style"
	"github.com/muurk/multibox/internal/widget"
)

// Fixed control text
const (
	Greeting    = "Hello, World!"
	BrowseLabel = "Browse Folder"
)

// File list columns
var FileColumns = []widget.Column{
	{Title: "File Name", Width: 300},
	{Title: "File Size (bytes)", Width: 100},
}

// Slider captions, indexed by SliderFontSize..SliderBlue
var SliderCaptions = [SliderCount]string{"Font Size", "Red", "Green", "Blue"}

// ErrNotBrowsing is returned by ShowFolder when the file browser tab is not active
var ErrNotBrowsing = errors.New("file browser tab is not active")

// DefaultTickInterval is the clock refresh period
const DefaultTickInterval = time.Second

// Timer is the single repeating tick that drives the clock label. The host
// delivers ticks by calling OnTimerTick.
type Timer interface {
	Arm(interval time.Duration)
	Disarm()
}

// Command identifies what a button click asks the host to do
type Command int

const (
	CommandNone Command = iota
	CommandBrowse
)

// Option configures a Controller
type Option func(*Controller)

// WithNow replaces the time source used for the clock label
func WithNow(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithTickInterval sets the clock timer period
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithLister replaces the directory lister used by ShowFolder
func WithLister(list func(string) ([]fslist.FileEntry, error)) Option {
	return func(c *Controller) { c.list = list }
}

// WithSize sets the client size used before the first OnResize
func WithSize(size widget.Size) Option {
	return func(c *Controller) { c.size = size }
}

// Controller owns the active tab and its controls.
//
// At most one session exists at a time. Every control a session creates is
// destroyed before the next session is built or when the controller is
// destroyed, and the timer is armed exactly while the clock tab is active.
type Controller struct {
	tk       widget.Toolkit
	style    *style.State
	timer    Timer
	now      func() time.Time
	list     func(string) ([]fslist.FileEntry, error)
	interval time.Duration

	size      widget.Size
	tabStrip  widget.Handle
	active    ID
	current   *session
	armed     bool
	destroyed bool
}

// New creates the tab strip and subscribes to style changes. No tab is
// active until the first ActivateTab.
func New(tk widget.Toolkit, st *style.State, timer Timer, opts ...Option) *Controller {
	c := &Controller{
		tk:       tk,
		style:    st,
		timer:    timer,
		now:      time.Now,
		list:     fslist.ListFiles,
		interval: DefaultTickInterval,
		size:     InitialSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.tabStrip = tk.Create(widget.Spec{
		Kind:  widget.KindTabStrip,
		Items: Titles(),
		Rect:  Layout(c.size).TabStrip,
	})
	st.OnChange(c.ApplyStyle)

	return c
}

// ActivateTab tears down the current session, builds the one for id and
// re-applies the current style to every live control.
func (c *Controller) ActivateTab(id ID) {
	if c.destroyed || !id.Valid() {
		return
	}

	from := "none"
	if c.current != nil {
		from = c.active.String()
	}

	c.teardown()
	c.active = id
	c.tk.SetPos(c.tabStrip, int(id))
	c.current = c.build(id)
	c.layout()
	c.ApplyStyle()

	logging.LogTabSwitch(from, id.String())
}

func (c *Controller) build(id ID) *session {
	s := newSession(c.tk, id)
	g := Layout(c.size)

	switch id {
	case HelloWorld:
		s.Content = s.create(widget.Spec{Kind: widget.KindLabel, Text: Greeting, Rect: g.Content})

	case Clock:
		s.Content = s.create(widget.Spec{Kind: widget.KindLabel, Rect: g.Content})
		c.tk.SetText(s.Content, clock.Format(c.now()))
		c.timer.Arm(c.interval)
		c.armed = true

	case FileBrowser:
		s.Content = s.create(widget.Spec{Kind: widget.KindListView, Columns: FileColumns, Rect: g.Content})
		s.Browse = s.create(widget.Spec{Kind: widget.KindButton, Text: BrowseLabel, Rect: g.Browse})

	case StyleSettings:
		s.pos = c.stylePositions()
		for i := range s.Sliders {
			lo, hi := sliderRange(i)
			s.Sliders[i] = s.create(widget.Spec{
				Kind: widget.KindSlider,
				Text: SliderCaptions[i],
				Rect: g.Sliders[i],
				Min:  lo,
				Max:  hi,
				Pos:  s.pos[i],
			})
		}
		s.Preview = s.create(widget.Spec{Kind: widget.KindSwatch, Rect: g.Preview})
		s.Readout = s.create(widget.Spec{Kind: widget.KindLabel, Text: c.style.Label(), Rect: g.Readout})
	}

	return s
}

func (c *Controller) teardown() {
	if c.current != nil {
		c.current.close()
		c.current = nil
	}
	if c.armed {
		c.timer.Disarm()
		c.armed = false
	}
}

// OnTimerTick refreshes the clock label. It does nothing unless the clock
// tab is active.
func (c *Controller) OnTimerTick() {
	if c.destroyed || c.current == nil || c.active != Clock {
		return
	}
	c.tk.SetText(c.current.Content, clock.Format(c.now()))
	c.tk.Invalidate()
}

// OnResize repositions every live control for the new client size
func (c *Controller) OnResize(size widget.Size) {
	if c.destroyed {
		return
	}
	c.size = size
	c.layout()
	c.tk.Invalidate()
}

func (c *Controller) layout() {
	g := Layout(c.size)
	move := func(h widget.Handle, r widget.Rect) {
		if h != 0 {
			c.tk.Move(h, r)
		}
	}

	move(c.tabStrip, g.TabStrip)
	if c.current == nil {
		return
	}
	s := c.current
	move(s.Content, g.Content)
	move(s.Browse, g.Browse)
	for i, h := range s.Sliders {
		move(h, g.Sliders[i])
	}
	move(s.Preview, g.Preview)
	move(s.Readout, g.Readout)
}

// OnScroll handles a slider position change. It reports false when h is not
// a slider of the active session.
func (c *Controller) OnScroll(h widget.Handle, pos int) bool {
	if c.destroyed || c.current == nil || c.active != StyleSettings {
		return false
	}
	s := c.current
	i := s.slider(h)
	if i < 0 {
		return false
	}

	lo, hi := sliderRange(i)
	s.pos[i] = clamp(pos, lo, hi)
	c.tk.SetPos(h, s.pos[i])

	if i == SliderFontSize {
		c.style.SetFontSize(s.pos[i])
	} else {
		c.style.SetColor(s.pos[SliderRed], s.pos[SliderGreen], s.pos[SliderBlue])
	}
	return true
}

// SliderPos returns the position of slider i on the active style tab
func (c *Controller) SliderPos(i int) (int, bool) {
	if c.current == nil || c.active != StyleSettings || i < 0 || i >= SliderCount {
		return 0, false
	}
	return c.current.pos[i], true
}

// OnCommand classifies a button click
func (c *Controller) OnCommand(h widget.Handle) Command {
	if c.destroyed || c.current == nil || h == 0 {
		return CommandNone
	}
	if c.active == FileBrowser && h == c.current.Browse {
		return CommandBrowse
	}
	return CommandNone
}

// ShowFolder lists path into the file browser. On failure the displayed
// rows are left untouched and the lister's error is returned.
func (c *Controller) ShowFolder(path string) error {
	if c.destroyed || c.current == nil || c.active != FileBrowser {
		return ErrNotBrowsing
	}

	files, err := c.list(path)
	logging.LogListing(path, len(files), err)
	if err != nil {
		return err
	}

	rows := make([]widget.Row, 0, len(files))
	for _, f := range files {
		rows = append(rows, widget.Row{f.Name, strconv.FormatUint(uint64(f.Size), 10)})
	}
	c.tk.SetRows(c.current.Content, rows)
	c.tk.Invalidate()
	return nil
}

// ApplyStyle sets the current font and text color on every live control,
// paints the preview swatch and refreshes the style readout.
func (c *Controller) ApplyStyle() {
	if c.destroyed {
		return
	}
	font := c.style.Font()
	col := c.style.Color()

	for _, h := range c.tk.Live() {
		c.tk.SetFont(h, font)
		c.tk.SetTextColor(h, col)
	}

	if s := c.current; s != nil && s.ID == StyleSettings {
		s.pos = c.stylePositions()
		for i, h := range s.Sliders {
			c.tk.SetPos(h, s.pos[i])
		}
		c.tk.Fill(s.Preview, col)
		c.tk.SetText(s.Readout, c.style.Label())
	}

	c.tk.Invalidate()
}

// Destroy releases every control, the timer and the style font. The
// controller ignores all calls afterwards.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.teardown()
	if c.tabStrip != 0 {
		c.tk.Destroy(c.tabStrip)
		c.tabStrip = 0
	}
	c.style.OnChange(nil)
	c.style.Release()
	c.destroyed = true

	logging.Info("Tab controller destroyed", zap.String("last_tab", c.active.String()))
}

// Active returns the active tab
func (c *Controller) Active() ID { return c.active }

// Session returns the controls of the active tab
func (c *Controller) Session() Session {
	if c.current == nil {
		return Session{}
	}
	return c.current.Session
}

// TabStrip returns the tab strip handle, or zero after Destroy
func (c *Controller) TabStrip() widget.Handle { return c.tabStrip }

// TimerArmed reports whether the clock timer is armed
func (c *Controller) TimerArmed() bool { return c.armed }

// Size returns the client size used for layout
func (c *Controller) Size() widget.Size { return c.size }

func (c *Controller) stylePositions() [SliderCount]int {
	col := c.style.Color()
	return [SliderCount]int{c.style.FontSize(), int(col.R), int(col.G), int(col.B)}
}

func sliderRange(i int) (int, int) {
	if i == SliderFontSize {
		return style.MinFontSize, style.MaxFontSize
	}
	return style.MinChannel, style.MaxChannel
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
