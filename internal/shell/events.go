package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/multibox/internal/tabs"
	"github.com/muurk/multibox/internal/widget"
)

// event is the closed set of window events the controller reacts to.
// Terminal messages are classified into events before anything is changed.
type event interface {
	isEvent()
}

type (
	// resizeEvent carries the new terminal size in cells
	resizeEvent struct{ cols, rows int }
	// tickEvent is a timer tick for the current arming
	tickEvent struct{}
	// selectTabEvent activates a tab directly
	selectTabEvent struct{ id tabs.ID }
	// cycleTabEvent moves to the next or previous tab
	cycleTabEvent struct{ forward bool }
	// commandEvent is a button click
	commandEvent struct{ handle widget.Handle }
	// scrollEvent moves a slider to pos
	scrollEvent struct {
		handle widget.Handle
		pos    int
	}
	// focusEvent moves slider focus on the style tab
	focusEvent struct{ delta int }
	// cursorEvent moves the file list cursor
	cursorEvent struct{ delta int }
	// copyEvent copies the active readout to the clipboard
	copyEvent struct{}
	// dismissEvent closes the error dialog
	dismissEvent struct{}
	// pickerEvent is input for the open folder picker
	pickerEvent struct{ msg tea.Msg }
	// destroyEvent closes the window
	destroyEvent struct{}
)

func (resizeEvent) isEvent()    {}
func (tickEvent) isEvent()      {}
func (selectTabEvent) isEvent() {}
func (cycleTabEvent) isEvent()  {}
func (commandEvent) isEvent()   {}
func (scrollEvent) isEvent()    {}
func (focusEvent) isEvent()     {}
func (cursorEvent) isEvent()    {}
func (copyEvent) isEvent()      {}
func (dismissEvent) isEvent()   {}
func (pickerEvent) isEvent()    {}
func (destroyEvent) isEvent()   {}

// classify maps a terminal message to an event, or nil when the message
// means nothing to the window
func (m Model) classify(msg tea.Msg) event {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return resizeEvent{cols: msg.Width, rows: msg.Height}

	case tickMsg:
		if m.timer.accept(msg) {
			return tickEvent{}
		}
		return nil

	case tea.KeyMsg:
		// Modal dialogs take every key
		if m.picker.open {
			return pickerEvent{msg: msg}
		}
		if m.errMsg != "" {
			return dismissEvent{}
		}
		return m.classifyKey(msg)
	}

	if m.picker.open {
		return pickerEvent{msg: msg}
	}
	return nil
}

func (m Model) classifyKey(msg tea.KeyMsg) event {
	active := m.ctrl.Active()
	sess := m.ctrl.Session()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return destroyEvent{}
	case key.Matches(msg, m.keys.NextTab):
		return cycleTabEvent{forward: true}
	case key.Matches(msg, m.keys.PrevTab):
		return cycleTabEvent{forward: false}
	case key.Matches(msg, m.keys.SelectTab):
		id := tabs.ID(msg.Runes[0] - '1')
		return selectTabEvent{id: id}
	case key.Matches(msg, m.keys.Copy):
		return copyEvent{}
	}

	switch active {
	case tabs.FileBrowser:
		switch {
		case key.Matches(msg, m.keys.Browse):
			return commandEvent{handle: sess.Browse}
		case key.Matches(msg, m.keys.Up):
			return cursorEvent{delta: -1}
		case key.Matches(msg, m.keys.Down):
			return cursorEvent{delta: 1}
		}

	case tabs.StyleSettings:
		switch {
		case key.Matches(msg, m.keys.Up):
			return focusEvent{delta: -1}
		case key.Matches(msg, m.keys.Down):
			return focusEvent{delta: 1}
		case key.Matches(msg, m.keys.Left):
			return m.scrollBy(-1)
		case key.Matches(msg, m.keys.Right):
			return m.scrollBy(1)
		case key.Matches(msg, m.keys.PageLeft):
			return m.scrollBy(-10)
		case key.Matches(msg, m.keys.PageRight):
			return m.scrollBy(10)
		}
	}
	return nil
}

// scrollBy builds a scroll event for the focused slider. The position is
// not clamped here; the controller does that.
func (m Model) scrollBy(delta int) event {
	pos, ok := m.ctrl.SliderPos(m.focus)
	if !ok {
		return nil
	}
	return scrollEvent{
		handle: m.ctrl.Session().Sliders[m.focus],
		pos:    pos + delta,
	}
}
