package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderErrorDialog renders a modal error box with a dismiss hint
func RenderErrorDialog(title, message string, width int) string {
	var lines []string

	lines = append(lines, DialogTitleStyle.Foreground(ErrorColor).Render(FailureMarker+"  "+title))
	lines = append(lines, "")
	lines = append(lines, DialogTextStyle.Render(message))
	lines = append(lines, "")
	lines = append(lines, HelpStyle.UnsetPaddingLeft().Render("Press any key to continue"))

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderPickerDialog renders the folder picker around an input view
func RenderPickerDialog(title, input, help string, width int) string {
	var lines []string

	lines = append(lines, DialogTitleStyle.Foreground(WarningColor).Render(title))
	lines = append(lines, "")
	lines = append(lines, input)
	if help != "" {
		lines = append(lines, "")
		lines = append(lines, help)
	}

	return PickerBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// Overlay centers a dialog in a width x height area, replacing the window
// contents while the dialog is open
func Overlay(dialog string, width, height int) string {
	if width <= 0 || height <= 0 {
		return dialog
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
