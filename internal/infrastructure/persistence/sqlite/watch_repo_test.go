package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/persistence/sqlite"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

func watchTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) *sqlite.WatchRepository {
	t.Helper()

	ctx := watchTestCtx()
	dbPath := filepath.Join(t.TempDir(), "sleepywhale.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewWatchRepository(db)
}

func TestRecordAndListWatches(t *testing.T) {
	ctx := watchTestCtx()
	repo := newTestRepo(t)

	id1, err := repo.RecordWatch(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	id2, err := repo.RecordWatch(ctx, "a_b-c_d-e_f")
	require.NoError(t, err)
	require.Greater(t, id2, id1)

	watches, err := repo.RecentWatches(ctx, 10)
	require.NoError(t, err)
	require.Len(t, watches, 2)

	// Newest first.
	assert.Equal(t, "a_b-c_d-e_f", watches[0].VideoID)
	assert.Equal(t, "dQw4w9WgXcQ", watches[1].VideoID)
	assert.False(t, watches[0].Completed)
	assert.False(t, watches[0].WatchedAt.IsZero())
}

func TestMarkCompleted(t *testing.T) {
	ctx := watchTestCtx()
	repo := newTestRepo(t)

	id, err := repo.RecordWatch(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)

	require.NoError(t, repo.MarkCompleted(ctx, id))

	watches, err := repo.RecentWatches(ctx, 1)
	require.NoError(t, err)
	require.Len(t, watches, 1)
	assert.True(t, watches[0].Completed)
}

func TestRecentWatchesLimit(t *testing.T) {
	ctx := watchTestCtx()
	repo := newTestRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.RecordWatch(ctx, "dQw4w9WgXcQ")
		require.NoError(t, err)
	}

	watches, err := repo.RecentWatches(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, watches, 3)
}

func TestRecentWatchesEmpty(t *testing.T) {
	ctx := watchTestCtx()
	repo := newTestRepo(t)

	watches, err := repo.RecentWatches(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, watches)
}
