package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sleepywhaleco/sleepywhale/internal/domain/entity"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/repository"
)

// Compile-time interface check.
var _ repository.WatchRepository = (*WatchRepository)(nil)

// WatchRepository persists the watch history in SQLite.
type WatchRepository struct {
	db *sql.DB
}

// NewWatchRepository creates a repository over the given connection.
func NewWatchRepository(db *sql.DB) *WatchRepository {
	return &WatchRepository{db: db}
}

// RecordWatch inserts a new history entry and returns its ID.
func (r *WatchRepository) RecordWatch(ctx context.Context, videoID string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO watches (video_id) VALUES (?)`, videoID)
	if err != nil {
		return 0, fmt.Errorf("insert watch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("watch insert id: %w", err)
	}
	return id, nil
}

// MarkCompleted stamps an entry as a session that ran to expiry.
func (r *WatchRepository) MarkCompleted(ctx context.Context, watchID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE watches SET completed = 1 WHERE id = ?`, watchID); err != nil {
		return fmt.Errorf("mark watch completed: %w", err)
	}
	return nil
}

// RecentWatches returns up to limit entries, newest first.
func (r *WatchRepository) RecentWatches(ctx context.Context, limit int) ([]entity.Watch, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, video_id, watched_at, completed
		 FROM watches
		 ORDER BY watched_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent watches: %w", err)
	}
	defer rows.Close()

	var watches []entity.Watch
	for rows.Next() {
		var w entity.Watch
		var completed int
		if err := rows.Scan(&w.ID, &w.VideoID, &w.WatchedAt, &completed); err != nil {
			return nil, fmt.Errorf("scan watch row: %w", err)
		}
		w.Completed = completed != 0
		watches = append(watches, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watch rows: %w", err)
	}
	return watches, nil
}
