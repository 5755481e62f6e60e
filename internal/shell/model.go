package shell

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/multibox/internal/fslist"
	"github.com/muurk/multibox/internal/logging"
	"github.com/muurk/multibox/internal/style"
	"github.com/muurk/multibox/internal/tabs"
	"github.com/muurk/multibox/internal/ui"
	"github.com/muurk/multibox/internal/widget"
)

const (
	// ErrorTitle heads the error dialog
	ErrorTitle = "Error"
	// InvalidPathMessage is shown when a chosen folder cannot be listed
	InvalidPathMessage = "Invalid folder path."
)

// Options configures a new window
type Options struct {
	StartTab  tabs.ID
	BrowseDir string
	FontFace  string
	FontSize  int
	Color     widget.Color
	Tick      time.Duration

	// Cols and Rows are the terminal size before the first resize message
	Cols int
	Rows int

	// Overridable for tests
	Now       func() time.Time
	Lister    func(string) ([]fslist.FileEntry, error)
	Clipboard func(string) error
}

// Model is the main window. It owns the widget registry, the shared style
// and the tab controller, and turns terminal messages into controller calls.
type Model struct {
	registry *widget.Registry
	style    *style.State
	ctrl     *tabs.Controller
	timer    *tickTimer

	picker folderPicker
	errMsg string

	focus  int // focused slider on the style tab
	cursor int // selected row on the file tab

	browseDir string
	copy      func(string) error

	width  int
	height int

	keys     keyMap
	help     help.Model
	quitting bool
}

// New creates the window and activates the start tab
func New(opts Options) Model {
	if opts.FontFace == "" {
		opts.FontFace = style.DefaultFace
	}
	if opts.FontSize == 0 {
		opts.FontSize = style.DefaultFontSize
	}
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols = tabs.InitialSize.W / ui.CellWidth
		opts.Rows = tabs.InitialSize.H / ui.CellHeight
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	registry := widget.NewRegistry()
	st := style.New(registry, opts.FontFace, opts.FontSize, opts.Color)
	timer := &tickTimer{}

	ctrlOpts := []tabs.Option{tabs.WithSize(clientSize(opts.Cols, opts.Rows))}
	if opts.Now != nil {
		ctrlOpts = append(ctrlOpts, tabs.WithNow(opts.Now))
	}
	if opts.Tick > 0 {
		ctrlOpts = append(ctrlOpts, tabs.WithTickInterval(opts.Tick))
	}
	if opts.Lister != nil {
		ctrlOpts = append(ctrlOpts, tabs.WithLister(opts.Lister))
	}

	m := Model{
		registry:  registry,
		style:     st,
		ctrl:      tabs.New(registry, st, timer, ctrlOpts...),
		timer:     timer,
		picker:    newFolderPicker(),
		browseDir: opts.BrowseDir,
		copy:      opts.Clipboard,
		width:     opts.Cols,
		height:    opts.Rows,
		keys:      newKeyMap(),
		help:      help.New(),
	}
	m.help.Width = footerWidth(opts.Cols)

	start := opts.StartTab
	if !start.Valid() {
		start = tabs.HelloWorld
	}
	m.ctrl.ActivateTab(start)
	return m
}

// clientSize is the layout area left above the one-line help footer
func clientSize(cols, rows int) widget.Size {
	if rows > 1 {
		rows--
	}
	return ui.ToLayout(cols, rows)
}

// footerWidth is the help width that fits cols after the footer padding
func footerWidth(cols int) int {
	return max(cols-ui.HelpStyle.GetHorizontalFrameSize(), 1)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.timer.schedule()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ev := m.classify(msg)
	if ev == nil {
		return m, m.timer.schedule()
	}

	var cmd tea.Cmd
	m, cmd = m.dispatch(ev)
	return m, tea.Batch(cmd, m.timer.schedule())
}

func (m Model) dispatch(ev event) (Model, tea.Cmd) {
	switch ev := ev.(type) {
	case resizeEvent:
		m.width, m.height = ev.cols, ev.rows
		m.help.Width = footerWidth(ev.cols)
		m.ctrl.OnResize(clientSize(ev.cols, ev.rows))

	case tickEvent:
		m.ctrl.OnTimerTick()

	case selectTabEvent:
		m.activate(ev.id)

	case cycleTabEvent:
		next := m.ctrl.Active().Next()
		if !ev.forward {
			next = m.ctrl.Active().Prev()
		}
		m.activate(next)

	case commandEvent:
		if m.ctrl.OnCommand(ev.handle) == tabs.CommandBrowse {
			return m, m.picker.Open(m.browseDir)
		}

	case scrollEvent:
		m.ctrl.OnScroll(ev.handle, ev.pos)

	case focusEvent:
		m.focus = wrap(m.focus+ev.delta, tabs.SliderCount)

	case cursorEvent:
		if n := len(m.rows()); n > 0 {
			m.cursor = clampIndex(m.cursor+ev.delta, n)
		}

	case copyEvent:
		m.copyReadout()

	case dismissEvent:
		m.errMsg = ""

	case pickerEvent:
		res, cmd := m.picker.Update(ev.msg)
		if res.status == pickSelected {
			m.showFolder(res.path)
		}
		return m, cmd

	case destroyEvent:
		m.Close()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) activate(id tabs.ID) {
	if !id.Valid() || id == m.ctrl.Active() {
		return
	}
	m.ctrl.ActivateTab(id)
	m.focus = 0
	m.cursor = 0
}

// showFolder lists path into the file tab. A failure leaves the list as it
// was and opens the error dialog.
func (m *Model) showFolder(path string) {
	err := m.ctrl.ShowFolder(path)
	switch {
	case err == nil:
		m.browseDir = path
		m.cursor = 0
	case fslist.IsInvalidPath(err):
		m.errMsg = InvalidPathMessage
	case errors.Is(err, tabs.ErrNotBrowsing):
		logging.Warn("Folder chosen while file tab is not active", zap.String("path", path))
	default:
		m.errMsg = err.Error()
	}
}

// copyReadout puts the text the active tab is showing on the clipboard.
// Failures are logged and otherwise ignored.
func (m *Model) copyReadout() {
	text := m.readout()
	if text == "" {
		return
	}
	if err := m.copy(text); err != nil {
		logging.Warn("Failed to copy to clipboard", zap.Error(err))
		return
	}
	logging.Debug("Copied to clipboard", zap.String("text", text))
}

func (m Model) readout() string {
	sess := m.ctrl.Session()
	switch m.ctrl.Active() {
	case tabs.HelloWorld, tabs.Clock:
		if c, ok := m.registry.Control(sess.Content); ok {
			return c.Text
		}
	case tabs.FileBrowser:
		if rows := m.rows(); m.cursor < len(rows) && len(rows[m.cursor]) > 0 {
			return rows[m.cursor][0]
		}
	case tabs.StyleSettings:
		return m.style.Label()
	}
	return ""
}

func (m Model) rows() []widget.Row {
	if m.ctrl.Active() != tabs.FileBrowser {
		return nil
	}
	c, ok := m.registry.Control(m.ctrl.Session().Content)
	if !ok {
		return nil
	}
	return c.Rows
}

// Close destroys the controller and releases every resource it owns. It is
// safe to call more than once.
func (m Model) Close() {
	m.ctrl.Destroy()
	stats := m.registry.Stats()
	logging.Info("Window closed",
		zap.Int("controls_created", stats.Created),
		zap.Int("controls_live", stats.Live),
		zap.Int("fonts_live", stats.LiveFonts),
	)
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := ui.HelpStyle.Render(m.help.View(m.keys.forTab(m.ctrl.Active())))
	window := ui.RenderWindow(ui.Frame{
		Controls: m.registry.Controls(),
		Fonts:    m.registry.Font,
		Focus:    m.focusHandle(),
		Cursor:   m.cursor,
		Width:    m.width,
		Height:   m.height,
		Footer:   footer,
	})

	dialogWidth := ui.DialogWidth(m.width)
	switch {
	case m.picker.open:
		return ui.Overlay(ui.RenderPickerDialog(
			PickerTitle,
			m.picker.View(),
			m.help.View(m.picker.keys),
			dialogWidth,
		), m.width, m.height)
	case m.errMsg != "":
		return ui.Overlay(ui.RenderErrorDialog(ErrorTitle, m.errMsg, dialogWidth), m.width, m.height)
	}
	return window
}

func (m Model) focusHandle() widget.Handle {
	sess := m.ctrl.Session()
	switch m.ctrl.Active() {
	case tabs.FileBrowser:
		return sess.Browse
	case tabs.StyleSettings:
		return sess.Sliders[m.focus]
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
