package port

import "time"

// TickHandle identifies an active periodic-tick registration.
type TickHandle uint

// TickSource schedules a periodic callback on the owner's event loop.
// At most one registration is outstanding per session; the callback runs to
// completion before the next tick can fire.
type TickSource interface {
	// Start registers fn to fire every interval and returns its handle.
	Start(interval time.Duration, fn func()) TickHandle

	// Stop tears down a registration synchronously: no tick is observed
	// after Stop returns. Stopping an unknown handle is a no-op.
	Stop(handle TickHandle)
}
