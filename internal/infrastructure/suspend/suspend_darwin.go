//go:build darwin

package suspend

import "context"

func (s *Service) platformSuspend(ctx context.Context) error {
	return runCommand(ctx, "pmset sleepnow")
}
