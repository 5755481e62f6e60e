package shell

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/multibox/internal/tabs"
)

// keyMap defines every key binding of the main window
type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	SelectTab key.Binding
	Browse    key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageLeft  key.Binding
	PageRight key.Binding
	Copy      key.Binding
	Quit      key.Binding
}

// pickerKeyMap defines key bindings inside the folder picker
type pickerKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// tabHelp is the help.KeyMap for one tab
type tabHelp []key.Binding

// ShortHelp returns keybindings to be shown in the mini help view
func (h tabHelp) ShortHelp() []key.Binding { return h }

// FullHelp returns keybindings for the expanded help view
func (h tabHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func newKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		SelectTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "go to tab"),
		),
		Browse: key.NewBinding(
			key.WithKeys("enter", "b"),
			key.WithHelp("enter/b", "browse folder"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		PageLeft: key.NewBinding(
			key.WithKeys("pgdown", "shift+left", "H"),
			key.WithHelp("shift+←", "-10"),
		),
		PageRight: key.NewBinding(
			key.WithKeys("pgup", "shift+right", "L"),
			key.WithHelp("shift+→", "+10"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// forTab returns the bindings shown in the footer for a tab
func (k keyMap) forTab(id tabs.ID) tabHelp {
	h := tabHelp{k.NextTab, k.SelectTab}
	switch id {
	case tabs.HelloWorld:
	case tabs.Clock:
		h = append(h, k.Copy)
	case tabs.FileBrowser:
		h = append(h, k.Browse, k.Up, k.Down, k.Copy)
	case tabs.StyleSettings:
		h = append(h, k.Up, k.Down, k.Left, k.Right, k.PageRight, k.Copy)
	}
	return append(h, k.Quit)
}
