package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/multibox/internal/style"
	"github.com/muurk/multibox/internal/widget"
)

// Fonts at or above BoldFontSize render bold, at or below FaintFontSize faint
const (
	BoldFontSize  = 24
	FaintFontSize = 13
)

// FontLookup resolves a font handle to its description
type FontLookup func(widget.FontHandle) (widget.Font, bool)

// Frame is everything needed to draw the window once
type Frame struct {
	Controls []widget.Control
	Fonts    FontLookup
	Focus    widget.Handle // focused slider or button
	Cursor   int           // list view cursor row
	Width    int           // terminal columns
	Height   int           // terminal rows
	Footer   string
}

// ToLayout converts a terminal size in cells to layout units
func ToLayout(cols, rows int) widget.Size {
	return widget.Size{W: cols * CellWidth, H: rows * CellHeight}
}

// Cols converts a width in layout units to terminal columns, at least one
func Cols(units int) int {
	if n := units / CellWidth; n > 0 {
		return n
	}
	return 1
}

// Lines converts a height in layout units to terminal rows, at least one
func Lines(units int) int {
	if n := units / CellHeight; n > 0 {
		return n
	}
	return 1
}

// SliderCaptionWidth is the width of the focus marker and caption drawn to
// the left of a slider track
const SliderCaptionWidth = 12

// RenderWindow draws the tab strip, every control at its layout row and
// column, and the footer. The result is clipped to the frame height.
func RenderWindow(f Frame) string {
	var cv canvas
	for _, c := range f.Controls {
		if c.Kind == widget.KindTabStrip {
			cv.put(0, 0, renderTabStrip(c, f))
		}
	}
	for _, c := range f.Controls {
		row, col := c.Rect.Y/CellHeight, c.Rect.X/CellWidth
		switch c.Kind {
		case widget.KindTabStrip:
		case widget.KindSlider:
			caption, track := renderSlider(c, f)
			cv.put(row, max(col-SliderCaptionWidth, 0), caption)
			cv.put(row, col, track)
		default:
			cv.put(row, col, renderControl(c, f))
		}
	}
	lines := cv.lines()

	footer := f.Footer
	footerLines := 0
	if footer != "" {
		footerLines = strings.Count(footer, "\n") + 1
	}
	if f.Height > 0 {
		avail := max(f.Height-footerLines, 0)
		if len(lines) > avail {
			lines = lines[:avail]
		}
		for len(lines) < avail {
			lines = append(lines, "")
		}
	}
	if footer != "" {
		lines = append(lines, footer)
	}

	return strings.Join(lines, "\n")
}

// segment is one line of a rendered block starting at a terminal column
type segment struct {
	col  int
	text string
}

// canvas collects rendered blocks by terminal row and column. Blocks on the
// same row are laid out left to right; an overlapping block is pushed right.
type canvas struct {
	rows [][]segment
}

func (cv *canvas) put(row, col int, block string) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		for len(cv.rows) <= r {
			cv.rows = append(cv.rows, nil)
		}
		cv.rows[r] = append(cv.rows[r], segment{col: col, text: line})
	}
}

func (cv *canvas) lines() []string {
	out := make([]string, len(cv.rows))
	for i, segs := range cv.rows {
		sort.SliceStable(segs, func(a, b int) bool { return segs[a].col < segs[b].col })
		var b strings.Builder
		width := 0
		for _, s := range segs {
			if s.col > width {
				b.WriteString(strings.Repeat(" ", s.col-width))
				width = s.col
			}
			b.WriteString(s.text)
			width += lipgloss.Width(s.text)
		}
		out[i] = b.String()
	}
	return out
}

func renderControl(c widget.Control, f Frame) string {
	switch c.Kind {
	case widget.KindLabel:
		return renderLabel(c, f)
	case widget.KindListView:
		return renderListView(c, f)
	case widget.KindButton:
		return renderButton(c, f)
	case widget.KindSwatch:
		return renderSwatch(c)
	default:
		return ""
	}
}

// textStyle maps a control's font and text color to terminal attributes
func textStyle(c widget.Control, f Frame) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Hex(c.TextColor)))
	if f.Fonts == nil {
		return s
	}
	font, ok := f.Fonts(c.Font)
	if !ok {
		return s
	}
	switch {
	case font.Size >= BoldFontSize:
		s = s.Bold(true)
	case font.Size <= FaintFontSize:
		s = s.Faint(true)
	}
	return s
}

func renderTabStrip(c widget.Control, f Frame) string {
	tabs := make([]string, 0, len(c.Items))
	for i, title := range c.Items {
		if i == c.Pos {
			tabs = append(tabs, ActiveTabStyle.Inherit(textStyle(c, f)).Render(title))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(title))
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	width := f.Width
	if width <= 0 {
		width = Cols(c.Rect.W)
	}
	rule := width - lipgloss.Width(strip)
	if rule < 0 {
		rule = 0
	}
	lastLine := TabRuleStyle.Render(strings.Repeat("─", rule))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, strip, lastLine)
}

func renderLabel(c widget.Control, f Frame) string {
	return textStyle(c, f).
		MaxWidth(Cols(c.Rect.W)).
		MaxHeight(Lines(c.Rect.H)).
		Render(c.Text)
}

func renderListView(c widget.Control, f Frame) string {
	columns := make([]table.Column, len(c.Columns))
	for i, col := range c.Columns {
		columns[i] = table.Column{Title: col.Title, Width: Cols(col.Width)}
	}

	rows := make([]table.Row, len(c.Rows))
	for i, r := range c.Rows {
		row := make(table.Row, len(columns))
		for j := range columns {
			if j < len(r) {
				row[j] = runewidth.Truncate(r[j], columns[j].Width, "…")
			}
		}
		rows[i] = row
	}

	height := Lines(c.Rect.H) - 2
	if height < 1 {
		height = 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	text := textStyle(c, f)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(MutedColor).
		BorderBottom(true).
		Bold(true)
	styles.Cell = styles.Cell.Inherit(text)
	styles.Selected = styles.Selected.
		Foreground(TextColor).
		Background(PrimaryColor).
		Bold(false)
	t.SetStyles(styles)

	cursor := f.Cursor
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	t.SetCursor(cursor)

	return t.View()
}

func renderButton(c widget.Control, f Frame) string {
	s := ButtonStyle
	if c.Handle == f.Focus {
		s = FocusedButtonStyle
	}
	// Width counts padding but not the border; never wrap the caption
	w := Cols(c.Rect.W) - 2
	if need := runewidth.StringWidth(c.Text) + 2; w < need {
		w = need
	}
	return s.Inherit(textStyle(c, f)).
		Width(w).
		Align(lipgloss.Center).
		Render(c.Text)
}

// renderSlider returns the caption drawn left of the slider and the track
// drawn in the slider's own rectangle
func renderSlider(c widget.Control, f Frame) (string, string) {
	marker := "  "
	if c.Handle == f.Focus {
		marker = SliderMarkerStyle.Render(FocusMarker) + " "
	}
	caption := marker + textStyle(c, f).Render(fmt.Sprintf("%-*s", SliderCaptionWidth-2, c.Text))

	percent := 0.0
	if c.Max > c.Min {
		percent = float64(c.Pos-c.Min) / float64(c.Max-c.Min)
	}
	const valueWidth = 4
	bar := progress.New(
		progress.WithSolidFill(string(PrimaryColor)),
		progress.WithWidth(max(Cols(c.Rect.W)-valueWidth, 1)),
		progress.WithoutPercentage(),
	)
	value := textStyle(c, f).Render(fmt.Sprintf("%*d", valueWidth, c.Pos))
	return caption, bar.ViewAs(percent) + value
}

func renderSwatch(c widget.Control) string {
	w, h := Cols(c.Rect.W), Lines(c.Rect.H)
	row := strings.Repeat(" ", w)
	block := make([]string, h)
	for i := range block {
		block[i] = row
	}
	s := lipgloss.NewStyle()
	if c.Filled {
		s = s.Background(lipgloss.Color(style.Hex(c.Fill)))
	}
	return s.Render(strings.Join(block, "\n"))
}
