package timer

import (
	"context"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/videoref"
)

// MediaController wraps a possibly-absent player handle. Commands are
// best-effort no-ops while detached; attachment never affects timer
// correctness. The controller does not restore volume on detach - that
// responsibility belongs to the session.
type MediaController struct {
	transport port.PlayerTransport
	videoID   videoref.MediaID
	attached  bool
}

// NewMediaController creates a controller over the given transport.
// A nil transport behaves as permanently detached.
func NewMediaController(transport port.PlayerTransport) *MediaController {
	return &MediaController{transport: transport}
}

// Attach binds the controller to a loaded video.
func (c *MediaController) Attach(id videoref.MediaID) {
	c.videoID = id
	c.attached = true
}

// Detach unbinds the controller. Subsequent commands become no-ops.
func (c *MediaController) Detach() {
	c.videoID = ""
	c.attached = false
}

// Attached reports whether a player is currently attached.
func (c *MediaController) Attached() bool {
	return c.attached && c.transport != nil
}

// VideoID returns the attached video identifier, or "" when detached.
func (c *MediaController) VideoID() videoref.MediaID {
	return c.videoID
}

// Pause issues a pause command to the attached player. No-op when detached.
func (c *MediaController) Pause(ctx context.Context) {
	if !c.Attached() {
		return
	}
	c.transport.Pause(ctx)
}

// SetVolume issues a set-volume command to the attached player.
// No-op when detached. percent is assumed already clamped to [0,100].
func (c *MediaController) SetVolume(ctx context.Context, percent int) {
	if !c.Attached() {
		return
	}
	c.transport.SetVolume(ctx, percent)
}
