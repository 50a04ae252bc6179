// Package cli provides the command-line interface and Bubble Tea TUIs.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/sleepywhaleco/sleepywhale/internal/cli/styles"
	"github.com/sleepywhaleco/sleepywhale/internal/config"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/build"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/repository"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/persistence/sqlite"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// App holds CLI dependencies shared by all subcommands.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Watches   repository.WatchRepository // nil when history is disabled

	db  *sql.DB
	ctx context.Context
}

// NewApp loads configuration, sets up logging, and opens the watch history
// database when enabled.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("SLEEPYWHALE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:  cfg,
		Manager: manager,
		Theme:   styles.NewTheme(),
		ctx:     ctx,
	}

	if cfg.History.Enabled {
		// Load() resolves an empty database_path to <data-dir>/history.db.
		dbFile := cfg.History.DatabasePath
		db, err := sqlite.NewConnection(ctx, dbFile)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		app.db = db
		app.Watches = sqlite.NewWatchRepository(db)
		logger.Debug().Str("db_path", dbFile).Msg("database connected")
	}

	return app, nil
}

// Ctx returns the app context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases app resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
