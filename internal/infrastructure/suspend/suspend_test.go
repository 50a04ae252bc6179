//go:build unix

package suspend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sleepywhaleco/sleepywhale/internal/config"
)

func TestCustomCommandSuccess(t *testing.T) {
	t.Parallel()

	s := New(config.SuspendConfig{Command: "true"})
	assert.NoError(t, s.Suspend(context.Background()))
}

func TestCustomCommandWithArgs(t *testing.T) {
	t.Parallel()

	s := New(config.SuspendConfig{Command: "echo suspending now"})
	assert.NoError(t, s.Suspend(context.Background()))
}

func TestCustomCommandFailure(t *testing.T) {
	t.Parallel()

	s := New(config.SuspendConfig{Command: "false"})
	err := s.Suspend(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "suspend command")
}

func TestCustomCommandMissingBinary(t *testing.T) {
	t.Parallel()

	s := New(config.SuspendConfig{Command: "/nonexistent/suspend-helper"})
	assert.Error(t, s.Suspend(context.Background()))
}
