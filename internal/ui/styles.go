package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the window chrome. Control text uses the style state's
// color instead.
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - active tab, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - focus highlight
	ErrorColor   = lipgloss.Color("#FF5555") // Red - error dialog
	WarningColor = lipgloss.Color("#FFA500") // Orange - picker dialog
	MutedColor   = lipgloss.Color("#626262") // Gray - inactive tabs, help
	TextColor    = lipgloss.Color("#FFFFFF") // White - dialog content
)

// Layout units per terminal cell. The host window is laid out in units and
// rendered at this resolution.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Dialog width limits
const (
	MinDialogWidth = 36
	MaxDialogWidth = 64
)

var (
	// ActiveTabStyle is for the selected tab title
	ActiveTabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(PrimaryColor).
			Padding(0, 1).
			Bold(true)

	// InactiveTabStyle is for the other tab titles
	InactiveTabStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true, true, false, true).
				BorderForeground(MutedColor).
				Foreground(MutedColor).
				Padding(0, 1)

	// TabRuleStyle is for the line under the tab strip
	TabRuleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// ButtonStyle is for push buttons
	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1)

	// FocusedButtonStyle is for the focused push button
	FocusedButtonStyle = ButtonStyle.
				BorderForeground(SuccessColor)

	// SliderMarkerStyle is for the focus marker in front of a slider
	SliderMarkerStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// DialogTitleStyle is for dialog titles
	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true)

	// DialogTextStyle is for dialog body text
	DialogTextStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// HelpStyle is for the footer help line
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)
)

// Status markers
const (
	FailureMarker = "✗"
	FocusMarker   = "▸"
)

// ErrorBoxStyle returns the border style for the error dialog
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(1, 2)
}

// PickerBoxStyle returns the border style for the folder picker dialog
func PickerBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(1, 2)
}

// DialogWidth clamps a dialog to the terminal width
func DialogWidth(termWidth int) int {
	w := termWidth - 4
	if w > MaxDialogWidth {
		w = MaxDialogWidth
	}
	if w < MinDialogWidth {
		w = MinDialogWidth
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// GetTerminalSize returns the terminal size of f in cells, with the initial
// 75x25 window as fallback
func GetTerminalSize(f *os.File) (int, int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 75, 25
	}
	return width, height
}
