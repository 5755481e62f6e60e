package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is delivered by the clock timer. gen identifies the arming that
// produced it so ticks from an earlier arming are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

// tickTimer implements tabs.Timer on top of tea.Every. Arming only records
// the request; the model turns it into a command after each update.
type tickTimer struct {
	gen      int
	armed    bool
	pending  bool
	interval time.Duration
}

// Arm implements tabs.Timer
func (t *tickTimer) Arm(interval time.Duration) {
	t.gen++
	t.armed = true
	t.pending = true
	t.interval = interval
}

// Disarm implements tabs.Timer
func (t *tickTimer) Disarm() {
	t.armed = false
	t.pending = false
}

// accept reports whether msg belongs to the current arming, and if so
// schedules the next tick
func (t *tickTimer) accept(msg tickMsg) bool {
	if !t.armed || msg.gen != t.gen {
		return false
	}
	t.pending = true
	return true
}

// schedule returns the command for a pending tick, or nil
func (t *tickTimer) schedule() tea.Cmd {
	if !t.armed || !t.pending {
		return nil
	}
	t.pending = false
	gen := t.gen
	// tea.Every fires on interval boundaries of the wall clock, so the
	// label changes when the second does
	return tea.Every(t.interval, func(at time.Time) tea.Msg {
		return tickMsg{gen: gen, at: at}
	})
}
