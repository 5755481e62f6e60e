package widget

import (
	"sort"

	"go.uber.org/zap"

	"github.com/muurk/multibox/internal/logging"
)

// Control is a snapshot of one live control's state
type Control struct {
	Handle    Handle
	Kind      Kind
	Text      string
	Rect      Rect
	Columns   []Column
	Rows      []Row
	Items     []string
	Min, Max  int
	Pos       int
	Font      FontHandle
	TextColor Color
	Fill      Color
	Filled    bool
}

// Stats counts resource acquisitions and releases since the registry was created
type Stats struct {
	Created        int
	Destroyed      int
	Live           int
	FontsAllocated int
	FontsReleased  int
	LiveFonts      int
	Repaints       int
}

// Registry is an in-memory Toolkit. It keeps every live control and font,
// and is what the terminal renderer draws from.
//
// Registry is not safe for concurrent use; it belongs to the UI thread.
type Registry struct {
	next     Handle
	nextFont FontHandle
	controls map[Handle]*Control
	order    []Handle
	fonts    map[FontHandle]Font
	stats    Stats
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		controls: make(map[Handle]*Control),
		fonts:    make(map[FontHandle]Font),
	}
}

// Create implements Toolkit
func (r *Registry) Create(spec Spec) Handle {
	r.next++
	h := r.next

	c := &Control{
		Handle:  h,
		Kind:    spec.Kind,
		Text:    spec.Text,
		Rect:    spec.Rect,
		Columns: append([]Column(nil), spec.Columns...),
		Items:   append([]string(nil), spec.Items...),
		Min:     spec.Min,
		Max:     spec.Max,
		Pos:     spec.Pos,
	}
	if spec.Kind == KindSlider {
		c.Pos = clamp(spec.Pos, spec.Min, spec.Max)
	}

	r.controls[h] = c
	r.order = append(r.order, h)
	r.stats.Created++

	logging.LogControl("created", spec.Kind.String(), uint32(h))
	return h
}

// Destroy implements Toolkit
func (r *Registry) Destroy(h Handle) {
	c, ok := r.controls[h]
	if !ok {
		return
	}
	delete(r.controls, h)
	for i, oh := range r.order {
		if oh == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.stats.Destroyed++

	logging.LogControl("destroyed", c.Kind.String(), uint32(h))
}

// Move implements Toolkit
func (r *Registry) Move(h Handle, rect Rect) {
	if c, ok := r.controls[h]; ok {
		c.Rect = rect
	}
}

// SetText implements Toolkit
func (r *Registry) SetText(h Handle, text string) {
	if c, ok := r.controls[h]; ok {
		c.Text = text
	}
}

// SetRows implements Toolkit
func (r *Registry) SetRows(h Handle, rows []Row) {
	c, ok := r.controls[h]
	if !ok || c.Kind != KindListView {
		return
	}
	c.Rows = make([]Row, len(rows))
	for i, row := range rows {
		c.Rows[i] = append(Row(nil), row...)
	}
}

// SetPos implements Toolkit. Slider positions are clamped to the slider range.
func (r *Registry) SetPos(h Handle, pos int) {
	c, ok := r.controls[h]
	if !ok {
		return
	}
	if c.Kind == KindSlider {
		pos = clamp(pos, c.Min, c.Max)
	}
	c.Pos = pos
}

// SetFont implements Toolkit
func (r *Registry) SetFont(h Handle, f FontHandle) {
	if c, ok := r.controls[h]; ok {
		c.Font = f
	}
}

// SetTextColor implements Toolkit
func (r *Registry) SetTextColor(h Handle, col Color) {
	if c, ok := r.controls[h]; ok {
		c.TextColor = col
	}
}

// Fill implements Toolkit
func (r *Registry) Fill(h Handle, col Color) {
	if c, ok := r.controls[h]; ok {
		c.Fill = col
		c.Filled = true
	}
}

// Live implements Toolkit
func (r *Registry) Live() []Handle {
	return append([]Handle(nil), r.order...)
}

// Invalidate implements Toolkit
func (r *Registry) Invalidate() {
	r.stats.Repaints++
}

// CreateFont implements FontAllocator
func (r *Registry) CreateFont(face string, size int) FontHandle {
	r.nextFont++
	f := r.nextFont
	r.fonts[f] = Font{Handle: f, Face: face, Size: size}
	r.stats.FontsAllocated++
	logging.Debug("Font allocated",
		zap.Uint32("font", uint32(f)),
		zap.String("face", face),
		zap.Int("size", size),
	)
	return f
}

// ReleaseFont implements FontAllocator
func (r *Registry) ReleaseFont(f FontHandle) {
	if _, ok := r.fonts[f]; !ok {
		return
	}
	delete(r.fonts, f)
	r.stats.FontsReleased++
	logging.Debug("Font released", zap.Uint32("font", uint32(f)))
}

// Control returns a snapshot of the control with handle h
func (r *Registry) Control(h Handle) (Control, bool) {
	c, ok := r.controls[h]
	if !ok {
		return Control{}, false
	}
	return *c, true
}

// Controls returns snapshots of every live control in creation order
func (r *Registry) Controls() []Control {
	out := make([]Control, 0, len(r.order))
	for _, h := range r.order {
		out = append(out, *r.controls[h])
	}
	return out
}

// ControlsOfKind returns the live controls of the given kind, ordered by handle
func (r *Registry) ControlsOfKind(k Kind) []Control {
	var out []Control
	for _, c := range r.controls {
		if c.Kind == k {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// Font returns the font with handle f if it is still allocated
func (r *Registry) Font(f FontHandle) (Font, bool) {
	font, ok := r.fonts[f]
	return font, ok
}

// Stats returns the current resource counters
func (r *Registry) Stats() Stats {
	s := r.stats
	s.Live = len(r.controls)
	s.LiveFonts = len(r.fonts)
	return s
}

func clamp(v, lo, hi int) int {
	if lo > hi {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
