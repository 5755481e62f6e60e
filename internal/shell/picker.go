package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PickerTitle is shown at the top of the folder picker
const PickerTitle = "Select a Folder"

type pickStatus int

const (
	pickPending pickStatus = iota
	pickCancelled
	pickSelected
)

// pickResult is the outcome of one key press in the folder picker
type pickResult struct {
	status pickStatus
	path   string
}

// folderPicker asks for a folder path. It answers with a path or a
// cancellation and never touches the file list itself.
type folderPicker struct {
	input textinput.Model
	keys  pickerKeyMap
	open  bool
}

func newFolderPicker() folderPicker {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "/path/to/folder"
	input.CharLimit = 4096
	input.Width = 48

	return folderPicker{
		input: input,
		keys:  newPickerKeyMap(),
	}
}

// Open shows the picker pre-filled with dir
func (p *folderPicker) Open(dir string) tea.Cmd {
	p.open = true
	p.input.SetValue(dir)
	p.input.CursorEnd()
	return p.input.Focus()
}

func (p *folderPicker) close() {
	p.open = false
	p.input.Blur()
}

// Update feeds msg to the picker. Enter with an empty path counts as a
// cancellation.
func (p *folderPicker) Update(msg tea.Msg) (pickResult, tea.Cmd) {
	if !p.open {
		return pickResult{status: pickCancelled}, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, p.keys.Cancel):
			p.close()
			return pickResult{status: pickCancelled}, nil

		case key.Matches(keyMsg, p.keys.Confirm):
			path := strings.TrimSpace(p.input.Value())
			p.close()
			if path == "" {
				return pickResult{status: pickCancelled}, nil
			}
			return pickResult{status: pickSelected, path: path}, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return pickResult{status: pickPending}, cmd
}

// View renders the input line
func (p folderPicker) View() string {
	return p.input.View()
}
