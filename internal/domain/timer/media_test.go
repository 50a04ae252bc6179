package timer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port/mocks"
)

func TestMediaControllerDetachedCommandsAreNoops(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	transport := mocks.NewMockPlayerTransport(ctrl)
	// No expectations: any call on the mock fails the test.

	c := NewMediaController(transport)
	c.Pause(context.Background())
	c.SetVolume(context.Background(), 50)

	assert.False(t, c.Attached())
	assert.Empty(t, c.VideoID())
}

func TestMediaControllerAttachedCommands(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	transport := mocks.NewMockPlayerTransport(ctrl)
	transport.EXPECT().Pause(gomock.Any()).Times(1)
	transport.EXPECT().SetVolume(gomock.Any(), 42).Times(1)

	c := NewMediaController(transport)
	c.Attach("dQw4w9WgXcQ")

	assert.True(t, c.Attached())
	assert.EqualValues(t, "dQw4w9WgXcQ", c.VideoID())

	c.Pause(context.Background())
	c.SetVolume(context.Background(), 42)
}

func TestMediaControllerDetachStopsDelivery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	transport := mocks.NewMockPlayerTransport(ctrl)

	c := NewMediaController(transport)
	c.Attach("dQw4w9WgXcQ")
	c.Detach()

	assert.False(t, c.Attached())
	c.Pause(context.Background())
	c.SetVolume(context.Background(), 100)
}

func TestMediaControllerNilTransport(t *testing.T) {
	t.Parallel()

	c := NewMediaController(nil)
	c.Attach("dQw4w9WgXcQ")

	assert.False(t, c.Attached(), "nil transport behaves as permanently detached")
	c.Pause(context.Background())
	c.SetVolume(context.Background(), 100)
}
