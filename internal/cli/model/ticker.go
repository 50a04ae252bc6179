package model

import (
	"time"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
)

// teaTicker is a TickSource driven by the Bubble Tea event loop. The session
// registers its tick callback here; the TUI model fires it on every tick
// message it schedules with tea.Tick.
type teaTicker struct {
	fn     func()
	handle port.TickHandle
	next   port.TickHandle
}

func newTeaTicker() *teaTicker {
	return &teaTicker{next: 1}
}

func (t *teaTicker) Start(_ time.Duration, fn func()) port.TickHandle {
	t.next++
	t.handle = t.next
	t.fn = fn
	return t.handle
}

func (t *teaTicker) Stop(handle port.TickHandle) {
	if handle == t.handle {
		t.fn = nil
		t.handle = 0
	}
}

// Fire invokes the registered callback, if any.
func (t *teaTicker) Fire() {
	if t.fn != nil {
		t.fn()
	}
}
