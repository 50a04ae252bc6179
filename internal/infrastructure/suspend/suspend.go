// Package suspend implements the host-suspend capability. The mechanism is
// platform-specific; from the session's point of view it is one fallible,
// fire-and-forget call.
package suspend

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/config"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// Compile-time interface check.
var _ port.Suspender = (*Service)(nil)

// Service suspends the host machine.
type Service struct {
	cfg config.SuspendConfig
}

// New creates a suspend service with the given configuration.
func New(cfg config.SuspendConfig) *Service {
	return &Service{cfg: cfg}
}

// Suspend puts the host to sleep. A configured custom command takes
// precedence over the built-in per-OS mechanism.
func (s *Service) Suspend(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if s.cfg.Command != "" {
		log.Info().Str("command", s.cfg.Command).Msg("suspending host via custom command")
		return runCommand(ctx, s.cfg.Command)
	}

	log.Info().Msg("suspending host")
	return s.platformSuspend(ctx)
}

func runCommand(ctx context.Context, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("empty suspend command")
	}
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("suspend command %q failed: %w (output: %s)", command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
