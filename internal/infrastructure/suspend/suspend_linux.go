//go:build linux

package suspend

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

const (
	logindDest      = "org.freedesktop.login1"
	logindPath      = "/org/freedesktop/login1"
	logindInterface = "org.freedesktop.login1.Manager"
)

// platformSuspend asks logind to suspend over the system bus, falling back to
// systemctl when D-Bus is unavailable or disabled.
func (s *Service) platformSuspend(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if s.cfg.UseDBus {
		err := suspendViaLogind(ctx)
		if err == nil {
			return nil
		}
		log.Debug().Err(err).Msg("logind suspend failed, falling back to systemctl")
	}

	return runCommand(ctx, "systemctl suspend")
}

func suspendViaLogind(ctx context.Context) error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("connect system bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(logindDest, logindPath)
	// Suspend(interactive: b) - false skips polkit interactivity.
	call := obj.CallWithContext(ctx, logindInterface+".Suspend", 0, false)
	if call.Err != nil {
		return fmt.Errorf("logind Suspend: %w", call.Err)
	}
	return nil
}
