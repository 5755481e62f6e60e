package tabs

import "github.com/muurk/multibox/internal/widget"

// Initial client size of the host window
var InitialSize = widget.Size{W: 600, H: 400}

// Slider indices within a style session
const (
	SliderFontSize = iota
	SliderRed
	SliderGreen
	SliderBlue
	sliderCount
)

// Geometry holds the rectangle of every control slot for one client size
type Geometry struct {
	TabStrip widget.Rect
	Content  widget.Rect
	Browse   widget.Rect
	Sliders  [sliderCount]widget.Rect
	Preview  widget.Rect
	Readout  widget.Rect
}

// Layout computes control positions for a client area. Only the tab strip,
// content area and browse button depend on the size.
func Layout(size widget.Size) Geometry {
	g := Geometry{
		TabStrip: widget.Rect{X: 0, Y: 0, W: size.W, H: size.H - 40},
		Content:  widget.Rect{X: 0, Y: 50, W: size.W, H: size.H - 100},
		Browse:   widget.Rect{X: 20, Y: size.H - 40, W: 120, H: 30},
		Preview:  widget.Rect{X: 320, Y: 100, W: 100, H: 100},
		Readout:  widget.Rect{X: 20, Y: 220, W: 400, H: 20},
	}
	for i := range g.Sliders {
		g.Sliders[i] = widget.Rect{X: 100, Y: 60 + 40*i, W: 200, H: 30}
	}
	return g
}
