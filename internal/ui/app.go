// Package ui owns the GTK application shell: window, webview, and the bridge
// between the web UI and the timer session.
package ui

import (
	"context"
	"fmt"

	"github.com/bnema/puregotk/v4/gio"
	"github.com/bnema/puregotk/v4/gtk"

	"github.com/sleepywhaleco/sleepywhale/assets"
	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/application/usecase"
	"github.com/sleepywhaleco/sleepywhale/internal/config"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/repository"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/timer"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/webkit"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// AppID identifies the application to GTK and the desktop environment.
const AppID = "co.sleepywhale.player"

// uiEntryURI is the page loaded into the webview at startup.
const uiEntryURI = "sleepy://app/"

// Dependencies carries everything the GUI needs from the host process.
type Dependencies struct {
	Config    *config.Config
	Watches   repository.WatchRepository // nil disables history
	Suspender port.Suspender
	Inhibitor port.IdleInhibitor // nil disables idle inhibition
}

// App wraps the GTK application and manages the player lifecycle.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	mainWindow *MainWindow
	webview    *webkit.WebView
	session    *timer.Session
	bridge     *Bridge
}

// NewApp creates the GUI application.
func NewApp(deps *Dependencies) (*App, error) {
	if deps == nil || deps.Config == nil {
		return nil, fmt.Errorf("ui dependencies are incomplete")
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK main loop and blocks until exit. Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)

	a.gtkApp = gtk.NewApplication(nil, gio.GApplicationFlagsNoneValue)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	activateCb := func(_ gio.Application) {
		a.onActivate(ctx)
	}
	a.gtkApp.ConnectActivate(&activateCb)

	shutdownCb := func(_ gio.Application) {
		a.onShutdown(ctx)
	}
	a.gtkApp.ConnectShutdown(&shutdownCb)

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(len(args), args)
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if err := a.buildUI(ctx); err != nil {
		log.Error().Err(err).Msg("failed to build UI")
		return
	}

	a.mainWindow.Present()
	a.webview.LoadURI(uiEntryURI)
}

func (a *App) buildUI(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}
	dataDir, err := config.GetDataDir()
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	cacheDir, err := config.GetCacheDir()
	if err != nil {
		return fmt.Errorf("cache dir: %w", err)
	}

	wkCtx, err := webkit.NewWebKitContext(ctx, dataDir, cacheDir)
	if err != nil {
		return fmt.Errorf("webkit context: %w", err)
	}

	scheme := webkit.NewSleepySchemeHandler(ctx)
	scheme.RegisterAsset("/", assets.IndexHTML(), "text/html")
	scheme.RegisterAsset("/index.html", assets.IndexHTML(), "text/html")
	scheme.RegisterAsset("/style.css", assets.StyleCSS(), "text/css")
	scheme.RegisterAsset("/app.js", assets.AppJS(), "application/javascript")
	scheme.RegisterWithContext(wkCtx)

	a.webview, err = webkit.NewWebView(wkCtx, *log)
	if err != nil {
		return fmt.Errorf("webview: %w", err)
	}

	router := webkit.NewMessageRouter(ctx)
	if err := router.Attach(a.webview); err != nil {
		return fmt.Errorf("attach message router: %w", err)
	}

	player := NewIframePlayer(a.webview, *log)
	media := timer.NewMediaController(player)
	dim := timer.NewDimController(NewOverlayDim(a.webview))

	a.session = timer.NewSession(ctx, media, dim, a.deps.Suspender, NewGLibTicker(), *log)
	a.session.SelectMinutes(a.deps.Config.Timer.DefaultMinutes)

	loader := usecase.NewLoadVideoUseCase(a.deps.Watches)
	a.bridge = NewBridge(ctx, a.session, loader, a.webview, a.deps.Inhibitor)
	if err := a.bridge.Register(router); err != nil {
		return fmt.Errorf("register bridge: %w", err)
	}

	a.mainWindow, err = NewMainWindow(ctx, a.gtkApp, a.deps.Config, a.webview)
	if err != nil {
		return fmt.Errorf("main window: %w", err)
	}

	return nil
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.session != nil && a.session.Running() {
		a.session.Cancel()
	}
	if a.deps.Inhibitor != nil {
		if err := a.deps.Inhibitor.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close idle inhibitor")
		}
	}
	if a.webview != nil {
		a.webview.Destroy()
	}
}
