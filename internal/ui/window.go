package ui

import (
	"context"
	"errors"

	"github.com/bnema/puregotk/v4/gtk"
	"github.com/rs/zerolog"

	"github.com/sleepywhaleco/sleepywhale/internal/config"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/webkit"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

const windowTitle = "Sleepy Whale Player"

var errWindowCreationFailed = errors.New("failed to create GTK window")

// MainWindow is the single application window hosting the UI webview.
type MainWindow struct {
	window  *gtk.ApplicationWindow
	rootBox *gtk.Box

	cfg    *config.Config
	logger zerolog.Logger
}

// NewMainWindow creates the application window and embeds the webview.
func NewMainWindow(ctx context.Context, app *gtk.Application, cfg *config.Config, wv *webkit.WebView) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		cfg:    cfg,
		logger: log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, errWindowCreationFailed
	}

	title := windowTitle
	mw.window.SetTitle(&title)
	mw.window.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)

	mw.rootBox = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if mw.rootBox == nil {
		mw.window.Unref()
		return nil, errors.New("failed to create root box")
	}
	mw.rootBox.SetHexpand(true)
	mw.rootBox.SetVexpand(true)

	widget := wv.Widget()
	widget.SetHexpand(true)
	widget.SetVexpand(true)
	mw.rootBox.Append(&widget.Widget)

	mw.window.SetChild(&mw.rootBox.Widget)

	mw.logger.Debug().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Msg("main window created")

	return mw, nil
}

// Present shows the window and raises it.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// Window exposes the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}
