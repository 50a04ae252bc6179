package port

import "context"

// PlayerTransport delivers transport commands to whatever video embed surface
// is currently active. Delivery is best-effort: there is no acknowledgement,
// and failures must never affect timer correctness.
type PlayerTransport interface {
	// Pause issues a pause command to the player. Fire-and-forget.
	Pause(ctx context.Context)

	// SetVolume sets the player volume. Callers clamp percent to [0,100]
	// before invocation; implementations do not re-validate.
	SetVolume(ctx context.Context, percent int)
}
