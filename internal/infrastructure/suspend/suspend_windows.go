//go:build windows

package suspend

import "context"

func (s *Service) platformSuspend(ctx context.Context) error {
	return runCommand(ctx, "rundll32.exe powrprof.dll,SetSuspendState 0 1 0")
}
