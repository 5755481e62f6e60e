package config

import (
	"time"

	"github.com/muurk/multibox/internal/style"
	"github.com/muurk/multibox/internal/widget"
)

// CurrentVersion is the only configuration file version understood
const CurrentVersion = 1

// Settings represents the entire configuration file.
// It only supplies startup defaults; the program never writes it back.
type Settings struct {
	Version int             `yaml:"version"`
	Style   StyleSettings   `yaml:"style"`
	Startup StartupSettings `yaml:"startup"`
	Clock   ClockSettings   `yaml:"clock"`
}

// StyleSettings holds the initial font and text color
type StyleSettings struct {
	FontFace string        `yaml:"font_face"`
	FontSize int           `yaml:"font_size"` // Points, clamped to 10-30
	Color    ColorSettings `yaml:"color"`
}

// ColorSettings is an RGB triple. Channels outside 0-255 are clamped.
type ColorSettings struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// StartupSettings controls the initial screen
type StartupSettings struct {
	Tab       string `yaml:"tab"`        // hello, clock, files or style
	BrowseDir string `yaml:"browse_dir"` // Pre-filled folder picker path
}

// ClockSettings controls the clock tab refresh
type ClockSettings struct {
	Tick time.Duration `yaml:"tick"`
}

// Default returns the settings used when no configuration file exists
func Default() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Style: StyleSettings{
			FontFace: style.DefaultFace,
			FontSize: style.DefaultFontSize,
			Color:    ColorSettings{R: 255, G: 255, B: 255},
		},
		Startup: StartupSettings{
			Tab: "hello",
		},
		Clock: ClockSettings{
			Tick: time.Second,
		},
	}
}

// TextColor returns the configured color as a widget color
func (s *Settings) TextColor() widget.Color {
	return widget.Color{
		R: style.ClampChannel(s.Style.Color.R),
		G: style.ClampChannel(s.Style.Color.G),
		B: style.ClampChannel(s.Style.Color.B),
	}
}

// normalize fills zero values from the defaults and clamps ranges
func (s *Settings) normalize() {
	def := Default()

	if s.Style.FontFace == "" {
		s.Style.FontFace = def.Style.FontFace
	}
	if s.Style.FontSize == 0 {
		s.Style.FontSize = def.Style.FontSize
	}
	s.Style.FontSize = style.ClampFontSize(s.Style.FontSize)

	c := s.TextColor()
	s.Style.Color = ColorSettings{R: int(c.R), G: int(c.G), B: int(c.B)}

	if s.Startup.Tab == "" {
		s.Startup.Tab = def.Startup.Tab
	}
	if s.Clock.Tick <= 0 {
		s.Clock.Tick = def.Clock.Tick
	}
}
