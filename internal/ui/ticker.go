package ui

import (
	"sync"
	"time"

	"github.com/bnema/puregotk/v4/glib"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
)

// glibTicker schedules session ticks on the GTK main loop via glib timeout
// sources. Callbacks therefore run on the same thread that owns the session.
type glibTicker struct {
	mu        sync.Mutex
	callbacks map[port.TickHandle]*glib.SourceFunc
}

// NewGLibTicker creates a TickSource backed by the GTK main loop.
func NewGLibTicker() port.TickSource {
	return &glibTicker{
		callbacks: make(map[port.TickHandle]*glib.SourceFunc),
	}
}

func (t *glibTicker) Start(interval time.Duration, fn func()) port.TickHandle {
	var cb glib.SourceFunc = func(uintptr) bool {
		fn()
		return true // keep firing until Stop removes the source
	}

	id := glib.TimeoutAdd(uint(interval.Milliseconds()), &cb, 0)
	handle := port.TickHandle(id)

	// Hold the closure so the GC cannot collect it while the source lives.
	t.mu.Lock()
	t.callbacks[handle] = &cb
	t.mu.Unlock()

	return handle
}

func (t *glibTicker) Stop(handle port.TickHandle) {
	if handle == 0 {
		return
	}

	t.mu.Lock()
	_, known := t.callbacks[handle]
	delete(t.callbacks, handle)
	t.mu.Unlock()

	if known {
		glib.SourceRemove(uint(handle))
	}
}
