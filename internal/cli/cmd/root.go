// Package cmd provides the Cobra CLI commands for sleepywhale.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sleepywhaleco/sleepywhale/internal/cli"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "sleepywhale",
		Short: "A sleep timer that watches YouTube with you",
		Long: `Sleepy Whale Player - watch something until you fall asleep.

Load a YouTube video, set a timer, and drift off. The screen dims as the
countdown runs, the volume fades near the end, and when time is up the
video pauses and the computer suspends.

Run 'sleepywhale play' (or just 'sleepywhale') to open the graphical
player, or use the subcommands for terminal-based operation.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// playCmd is a placeholder for help output - actual execution happens in
// main.go before cobra runs, because GTK owns the process main loop.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the graphical player",
	Long: `Open the GTK graphical player.

This is the default when sleepywhale is run without arguments.`,
	Run: func(_ *cobra.Command, _ []string) {
		// Handled by main.go before cobra runs.
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
