package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sleepywhaleco/sleepywhale/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the environment can run sleep sessions",
	Long: `Run environment checks: config, data directories, watch database,
and the D-Bus services used for idle inhibition and suspend.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type checkResult struct {
	name string
	err  error
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	checks := []struct {
		name string
		fn   func() error
	}{
		{"config file", checkConfigFile},
		{"data directories", checkDirectories},
		{"watch database", checkDatabase},
		{"session bus (idle inhibit)", checkSessionBus},
		{"suspend mechanism", checkSuspendMechanism},
	}

	results := make([]checkResult, len(checks))
	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			results[i] = checkResult{name: c.name, err: c.fn()}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Printf("%s %s: %v\n", app.Theme.ErrorStyle.Render("✗"), r.name, r.err)
		} else {
			fmt.Printf("%s %s\n", app.Theme.SuccessStyle.Render("✓"), r.name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println(app.Theme.Subtle.Render("all checks passed, sweet dreams"))
	return nil
}

func checkConfigFile() error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("missing %s (created on first GUI run)", path)
	}
	return nil
}

func checkDirectories() error {
	if err := config.EnsureDirectories(); err != nil {
		return err
	}
	dataDir, err := config.GetDataDir()
	if err != nil {
		return err
	}
	probe := filepath.Join(dataDir, ".doctor-probe")
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	return os.Remove(probe)
}

func checkDatabase() error {
	app := GetApp()
	if !app.Config.History.Enabled {
		return nil // disabled is a valid state, not a failure
	}
	if app.Watches == nil {
		return fmt.Errorf("history enabled but database unavailable")
	}
	_, err := app.Watches.RecentWatches(app.Ctx(), 1)
	return err
}

func checkSessionBus() error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("no session bus: %w", err)
	}
	return conn.Close()
}

func checkSuspendMechanism() error {
	app := GetApp()
	if app.Config.Suspend.Command != "" {
		// A custom command is taken at face value.
		return nil
	}

	if app.Config.Suspend.UseDBus {
		conn, err := dbus.SystemBus()
		if err == nil {
			defer func() { _ = conn.Close() }()
			var owner string
			if err := conn.BusObject().Call("org.freedesktop.DBus.GetNameOwner", 0,
				"org.freedesktop.login1").Store(&owner); err == nil {
				return nil
			}
		}
	}

	if _, err := exec.LookPath("systemctl"); err != nil {
		return fmt.Errorf("neither logind nor systemctl available")
	}
	return nil
}
