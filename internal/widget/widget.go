package widget

import "fmt"

// Handle identifies a live control. The zero Handle never refers to a control.
type Handle uint32

// FontHandle identifies an allocated font. The zero FontHandle means "no font".
type FontHandle uint32

// Kind is the class of a control
type Kind int

const (
	KindTabStrip Kind = iota
	KindLabel
	KindListView
	KindButton
	KindSlider
	KindSwatch
)

// String returns the class name used in logs
func (k Kind) String() string {
	switch k {
	case KindTabStrip:
		return "tabstrip"
	case KindLabel:
		return "label"
	case KindListView:
		return "listview"
	case KindButton:
		return "button"
	case KindSlider:
		return "slider"
	case KindSwatch:
		return "swatch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Rect is a control's position and size in layout units
type Rect struct {
	X, Y, W, H int
}

// Size is the client area of the host window in layout units
type Size struct {
	W, H int
}

// Color is a 24-bit RGB color
type Color struct {
	R, G, B uint8
}

// Column describes one list view column. Width is in layout units.
type Column struct {
	Title string
	Width int
}

// Row is one list view row, one cell per column
type Row []string

// Spec describes a control to create. Fields that do not apply to the
// requested Kind are ignored.
type Spec struct {
	Kind    Kind
	Text    string   // label text, button caption, slider caption
	Rect    Rect
	Columns []Column // list view
	Items   []string // tab strip titles
	Min     int      // slider range
	Max     int
	Pos     int // slider position, tab strip selection
}

// Font describes an allocated font
type Font struct {
	Handle FontHandle
	Face   string
	Size   int
}

// FontAllocator creates and releases font resources.
type FontAllocator interface {
	CreateFont(face string, size int) FontHandle
	ReleaseFont(f FontHandle)
}

// Toolkit is the widget layer the tab controller drives. All calls happen on
// the UI thread; operations on an unknown handle are ignored.
type Toolkit interface {
	FontAllocator

	Create(spec Spec) Handle
	Destroy(h Handle)
	Move(h Handle, r Rect)
	SetText(h Handle, text string)
	SetRows(h Handle, rows []Row)
	SetPos(h Handle, pos int)
	SetFont(h Handle, f FontHandle)
	SetTextColor(h Handle, c Color)
	Fill(h Handle, c Color)

	// Live returns the handles of every live control in creation order.
	Live() []Handle

	// Invalidate requests a repaint of the whole window.
	Invalidate()
}
