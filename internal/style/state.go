// Package style holds the process-wide font size and text color applied to
// every control, and the font resource derived from them.
package style

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/muurk/multibox/internal/logging"
	"github.com/muurk/multibox/internal/widget"
)

// Font size bounds in points
const (
	MinFontSize     = 10
	MaxFontSize     = 30
	DefaultFontSize = 20
	DefaultFace     = "Arial"
)

// Color channel bounds
const (
	MinChannel = 0
	MaxChannel = 255
)

// State is the current font size and text color. It exclusively owns the
// font resource allocated for the current size and releases it whenever the
// size changes or the state is released.
type State struct {
	fonts    widget.FontAllocator
	face     string
	size     int
	color    widget.Color
	font     widget.FontHandle
	label    string
	onChange func()
}

// New creates a State and allocates its initial font. size is clamped to
// [MinFontSize, MaxFontSize]; an empty face selects DefaultFace.
func New(fonts widget.FontAllocator, face string, size int, color widget.Color) *State {
	if face == "" {
		face = DefaultFace
	}
	s := &State{
		fonts: fonts,
		face:  face,
		size:  ClampFontSize(size),
		color: color,
	}
	s.font = fonts.CreateFont(s.face, s.size)
	s.label = FormatLabel(s.color)
	return s
}

// OnChange registers the function called after every SetFontSize and
// SetColor. Only one function is kept; a later call replaces it.
func (s *State) OnChange(fn func()) {
	s.onChange = fn
}

// SetFontSize sets the font size, clamped to [MinFontSize, MaxFontSize].
// The font resource is reallocated only when the clamped size differs from
// the current one. The change callback runs either way.
func (s *State) SetFontSize(pt int) {
	pt = ClampFontSize(pt)
	if pt != s.size || s.font == 0 {
		if s.font != 0 {
			s.fonts.ReleaseFont(s.font)
		}
		s.size = pt
		s.font = s.fonts.CreateFont(s.face, s.size)
	}
	s.label = FormatLabel(s.color)
	s.changed()
}

// SetColor sets the text color. Each channel is clamped to [0, 255].
func (s *State) SetColor(r, g, b int) {
	s.color = widget.Color{R: ClampChannel(r), G: ClampChannel(g), B: ClampChannel(b)}
	s.label = FormatLabel(s.color)
	s.changed()
}

func (s *State) changed() {
	logging.LogStyleChange(s.size, s.color.R, s.color.G, s.color.B)
	if s.onChange != nil {
		s.onChange()
	}
}

// Release frees the font resource. The State must not be used afterwards
// except for another Release, which is a no-op.
func (s *State) Release() {
	if s.font == 0 {
		return
	}
	s.fonts.ReleaseFont(s.font)
	s.font = 0
}

// FontSize returns the current font size in points
func (s *State) FontSize() int { return s.size }

// Face returns the font face name
func (s *State) Face() string { return s.face }

// Color returns the current text color
func (s *State) Color() widget.Color { return s.color }

// Font returns the font resource for the current size
func (s *State) Font() widget.FontHandle { return s.font }

// Label returns the human-readable color readout, e.g. "RGB: (255, 0, 12)"
func (s *State) Label() string { return s.label }

// ClampFontSize limits pt to [MinFontSize, MaxFontSize]
func ClampFontSize(pt int) int {
	if pt < MinFontSize {
		return MinFontSize
	}
	if pt > MaxFontSize {
		return MaxFontSize
	}
	return pt
}

// ClampChannel limits v to a single color channel
func ClampChannel(v int) uint8 {
	if v < MinChannel {
		return MinChannel
	}
	if v > MaxChannel {
		return MaxChannel
	}
	return uint8(v)
}

// FormatLabel renders the color readout shown under the style sliders
func FormatLabel(c widget.Color) string {
	return fmt.Sprintf("RGB: (%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns c as a "#rrggbb" string suitable for lipgloss colors
func Hex(c widget.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
