package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sleepywhaleco/sleepywhale/internal/cli/model"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/timer"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/suspend"
)

var timerMinutes int

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run a sleep timer in the terminal",
	Long: `Run a countdown in the terminal without the video player.

When the timer expires the computer suspends, same as the graphical
player. Press 'c' to cancel.`,
	RunE: runTimer,
}

func init() {
	rootCmd.AddCommand(timerCmd)

	timerCmd.Flags().IntVarP(&timerMinutes, "minutes", "m", 0,
		fmt.Sprintf("timer duration in minutes (%d-%d)", timer.MinMinutes, timer.MaxMinutes))
}

func runTimer(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	minutes := timerMinutes
	if minutes == 0 {
		minutes = app.Config.Timer.DefaultMinutes
	}
	if minutes < timer.MinMinutes || minutes > timer.MaxMinutes {
		return fmt.Errorf("minutes must be between %d and %d", timer.MinMinutes, timer.MaxMinutes)
	}

	suspender := suspend.New(app.Config.Suspend)
	m := model.NewTimerModel(app.Ctx(), app.Theme, suspender, minutes)

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run timer: %w", err)
	}

	if tm, ok := final.(model.TimerModel); ok {
		snap := tm.Snapshot()
		if snap.Phase == timer.PhaseCompleted {
			fmt.Println(snap.Status.Text)
		}
	}
	return nil
}
