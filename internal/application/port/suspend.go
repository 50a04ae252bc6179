package port

import "context"

// Suspender suspends the host machine. One fallible call, no parameters, no
// meaningful payload on success. The session fires it exactly once per
// completed run and does not block on or retry the outcome.
type Suspender interface {
	Suspend(ctx context.Context) error
}
