// Package usecase contains application operations orchestrating domain logic
// and infrastructure capabilities.
package usecase

import (
	"context"

	"github.com/sleepywhaleco/sleepywhale/internal/domain/repository"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/videoref"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// LoadVideoResult carries everything the UI needs to attach a resolved video.
type LoadVideoResult struct {
	VideoID  videoref.MediaID
	EmbedURL string
	// WatchID identifies the history entry, 0 if recording failed.
	WatchID int64
}

// LoadVideoUseCase resolves a user-supplied reference and records the watch.
type LoadVideoUseCase struct {
	watches repository.WatchRepository
}

// NewLoadVideoUseCase creates the use case. A nil repository disables history.
func NewLoadVideoUseCase(watches repository.WatchRepository) *LoadVideoUseCase {
	return &LoadVideoUseCase{watches: watches}
}

// Execute resolves input into a MediaID. Resolution errors
// (videoref.ErrEmpty, videoref.ErrUnparseable) are user-facing and
// recoverable; history recording failures are logged and swallowed.
func (uc *LoadVideoUseCase) Execute(ctx context.Context, input string) (*LoadVideoResult, error) {
	log := logging.FromContext(ctx)

	id, err := videoref.Resolve(input)
	if err != nil {
		return nil, err
	}

	result := &LoadVideoResult{
		VideoID:  id,
		EmbedURL: videoref.EmbedURL(id),
	}

	if uc.watches != nil {
		watchID, err := uc.watches.RecordWatch(ctx, string(id))
		if err != nil {
			log.Warn().Err(err).Str("video_id", string(id)).Msg("failed to record watch")
		} else {
			result.WatchID = watchID
		}
	}

	return result, nil
}

// MarkCompleted stamps a previously recorded watch as a completed session.
func (uc *LoadVideoUseCase) MarkCompleted(ctx context.Context, watchID int64) {
	if uc.watches == nil || watchID == 0 {
		return
	}
	if err := uc.watches.MarkCompleted(ctx, watchID); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Int64("watch_id", watchID).Msg("failed to mark watch completed")
	}
}
