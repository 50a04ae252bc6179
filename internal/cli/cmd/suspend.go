package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/suspend"
)

var suspendCmd = &cobra.Command{
	Use:   "suspend",
	Short: "Suspend the computer now",
	Long: `Suspend the host immediately, using the same mechanism the timer
uses on expiry. Useful for verifying that suspend works before trusting
a session to it.`,
	RunE: runSuspend,
}

func init() {
	rootCmd.AddCommand(suspendCmd)
}

func runSuspend(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	svc := suspend.New(app.Config.Suspend)
	if err := svc.Suspend(app.Ctx()); err != nil {
		return fmt.Errorf("suspend failed: %w", err)
	}
	return nil
}
