// Package repository defines persistence interfaces implemented by the
// infrastructure layer.
package repository

import (
	"context"

	"github.com/sleepywhaleco/sleepywhale/internal/domain/entity"
)

// WatchRepository stores the watch history. All operations are best-effort
// from the session's point of view: persistence failures never affect timer
// correctness.
type WatchRepository interface {
	// RecordWatch inserts a new history entry and returns its ID.
	RecordWatch(ctx context.Context, videoID string) (int64, error)

	// MarkCompleted stamps an entry as a session that ran to expiry.
	MarkCompleted(ctx context.Context, watchID int64) error

	// RecentWatches returns up to limit entries, newest first.
	RecentWatches(ctx context.Context, limit int) ([]entity.Watch, error)
}
