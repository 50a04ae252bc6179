package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleepywhaleco/sleepywhale/internal/application/usecase"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/entity"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/videoref"
)

type fakeWatchRepo struct {
	recorded  []string
	completed []int64
	nextID    int64
	recordErr error
}

func (f *fakeWatchRepo) RecordWatch(_ context.Context, videoID string) (int64, error) {
	if f.recordErr != nil {
		return 0, f.recordErr
	}
	f.recorded = append(f.recorded, videoID)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeWatchRepo) MarkCompleted(_ context.Context, watchID int64) error {
	f.completed = append(f.completed, watchID)
	return nil
}

func (f *fakeWatchRepo) RecentWatches(context.Context, int) ([]entity.Watch, error) {
	return nil, nil
}

func TestLoadVideoResolvesAndRecords(t *testing.T) {
	t.Parallel()

	repo := &fakeWatchRepo{}
	uc := usecase.NewLoadVideoUseCase(repo)

	result, err := uc.Execute(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.EqualValues(t, "dQw4w9WgXcQ", result.VideoID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&enablejsapi=1", result.EmbedURL)
	assert.Equal(t, int64(1), result.WatchID)
	assert.Equal(t, []string{"dQw4w9WgXcQ"}, repo.recorded)
}

func TestLoadVideoResolutionErrors(t *testing.T) {
	t.Parallel()

	uc := usecase.NewLoadVideoUseCase(&fakeWatchRepo{})

	_, err := uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, videoref.ErrEmpty)

	_, err = uc.Execute(context.Background(), "https://example.com/x")
	assert.ErrorIs(t, err, videoref.ErrUnparseable)
}

func TestLoadVideoHistoryFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	repo := &fakeWatchRepo{recordErr: errors.New("db locked")}
	uc := usecase.NewLoadVideoUseCase(repo)

	result, err := uc.Execute(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err, "history is a convenience, not the contract")
	assert.Zero(t, result.WatchID)
}

func TestLoadVideoNilRepository(t *testing.T) {
	t.Parallel()

	uc := usecase.NewLoadVideoUseCase(nil)

	result, err := uc.Execute(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Zero(t, result.WatchID)

	uc.MarkCompleted(context.Background(), 0)
}

func TestMarkCompleted(t *testing.T) {
	t.Parallel()

	repo := &fakeWatchRepo{}
	uc := usecase.NewLoadVideoUseCase(repo)

	uc.MarkCompleted(context.Background(), 7)
	assert.Equal(t, []int64{7}, repo.completed)

	uc.MarkCompleted(context.Background(), 0)
	assert.Len(t, repo.completed, 1, "zero watch ID is ignored")
}
