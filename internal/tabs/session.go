package tabs

import "github.com/muurk/multibox/internal/widget"

// SliderCount is the number of sliders on the style tab
const SliderCount = sliderCount

// Session is the set of controls owned by the active tab. Unused slots hold
// the zero Handle.
type Session struct {
	ID      ID
	Content widget.Handle // label or list view occupying the content area
	Browse  widget.Handle
	Sliders [SliderCount]widget.Handle
	Preview widget.Handle
	Readout widget.Handle
}

// Handles returns every control in the session, in creation order
func (s Session) Handles() []widget.Handle {
	var out []widget.Handle
	add := func(h widget.Handle) {
		if h != 0 {
			out = append(out, h)
		}
	}
	add(s.Content)
	add(s.Browse)
	for _, h := range s.Sliders {
		add(h)
	}
	add(s.Preview)
	add(s.Readout)
	return out
}

// session owns the controls of one tab activation. close destroys them all;
// after close the session must not be used.
type session struct {
	Session
	tk    widget.Toolkit
	owned []widget.Handle
	pos   [SliderCount]int
}

func newSession(tk widget.Toolkit, id ID) *session {
	return &session{Session: Session{ID: id}, tk: tk}
}

// create builds a control and records it for teardown
func (s *session) create(spec widget.Spec) widget.Handle {
	h := s.tk.Create(spec)
	s.owned = append(s.owned, h)
	return h
}

// slider returns the slider index of h, or -1
func (s *session) slider(h widget.Handle) int {
	if h == 0 {
		return -1
	}
	for i, sh := range s.Sliders {
		if sh == h {
			return i
		}
	}
	return -1
}

func (s *session) close() {
	for i := len(s.owned) - 1; i >= 0; i-- {
		s.tk.Destroy(s.owned[i])
	}
	s.owned = nil
	s.Session = Session{ID: s.ID}
}
