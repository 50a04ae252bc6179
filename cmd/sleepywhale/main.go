package main

import (
	"os"
	"runtime"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/cli"
	"github.com/sleepywhaleco/sleepywhale/internal/cli/cmd"
	"github.com/sleepywhaleco/sleepywhale/internal/config"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/build"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/idle"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/suspend"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
	"github.com/sleepywhaleco/sleepywhale/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// GUI mode bypasses cobra: GTK owns the process main loop.
	if len(os.Args) == 1 || os.Args[1] == "play" {
		os.Args = os.Args[:1]
		os.Exit(runGUI())
		return
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

func runGUI() int {
	app, err := cli.NewApp()
	if err != nil {
		os.Stderr.WriteString("sleepywhale: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = app.Close() }()

	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	// GTK and WebKit write warnings straight to fd 2; fold them into the log.
	if capture, err := logging.CaptureStderr(*log); err == nil {
		defer func() { _ = capture.Close() }()
	}

	// Watch for config edits while the player is open.
	app.Manager.OnChange(func(*config.Config) {
		log.Info().Msg("configuration reloaded")
	})
	app.Manager.Watch()

	var inhibitor port.IdleInhibitor
	if app.Config.Idle.Inhibit {
		inhibitor = idle.NewPortalInhibitor(ctx)
	}

	guiApp, err := ui.NewApp(&ui.Dependencies{
		Config:    app.Config,
		Watches:   app.Watches,
		Suspender: suspend.New(app.Config.Suspend),
		Inhibitor: inhibitor,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create GUI application")
		return 1
	}

	return guiApp.Run(ctx, os.Args)
}
