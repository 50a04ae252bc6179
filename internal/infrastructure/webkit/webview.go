package webkit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/bnema/puregotk/v4/gio"
	"github.com/rs/zerolog"

	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// WebView wraps webkit.WebView for the single sleepywhale UI surface.
type WebView struct {
	inner *webkit.WebView
	ucm   *webkit.UserContentManager

	destroyed atomic.Bool
	logger    zerolog.Logger

	// asyncCallbacks keeps references to async JS callbacks to prevent GC.
	mu             sync.Mutex
	asyncCallbacks []interface{}
}

// NewWebView creates a WebView. The WebKitContext must be initialized first.
func NewWebView(wkCtx *WebKitContext, logger zerolog.Logger) (*WebView, error) {
	if wkCtx == nil || !wkCtx.IsInitialized() {
		return nil, fmt.Errorf("webkit context not initialized")
	}

	inner := webkit.NewWebView()
	if inner == nil {
		return nil, fmt.Errorf("failed to create webkit webview")
	}

	wv := &WebView{
		inner:  inner,
		ucm:    inner.GetUserContentManager(),
		logger: logger.With().Str("component", "webview").Logger(),
	}

	settings := inner.GetSettings()
	if settings != nil {
		// The embedded player needs media to start without a user gesture.
		settings.SetMediaPlaybackRequiresUserGesture(false)
		settings.SetEnableJavascript(true)
	}

	return wv, nil
}

// Widget returns the underlying webkit.WebView for container embedding.
func (wv *WebView) Widget() *webkit.WebView {
	return wv.inner
}

// UserContentManager returns the UCM for script message wiring.
func (wv *WebView) UserContentManager() *webkit.UserContentManager {
	return wv.ucm
}

// LoadURI navigates the webview.
func (wv *WebView) LoadURI(uri string) {
	if wv.destroyed.Load() {
		return
	}
	wv.inner.LoadUri(uri)
}

// RunJavaScript executes script in the main world. Fire-and-forget: it does
// not block, and errors are logged asynchronously. Safe to call from GTK
// signal handlers.
func (wv *WebView) RunJavaScript(ctx context.Context, script string) {
	if wv.destroyed.Load() {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.FromContext(ctx)

	cb := gio.AsyncReadyCallback(func(_ uintptr, resPtr uintptr, _ uintptr) {
		if resPtr == 0 {
			log.Warn().Msg("RunJavaScript: nil async result")
			return
		}

		res := &gio.AsyncResultBase{Ptr: resPtr}
		value, err := wv.inner.EvaluateJavascriptFinish(res)
		if err != nil {
			log.Warn().Err(err).Msg("RunJavaScript: failed")
			return
		}

		if value != nil {
			if jscCtx := value.GetContext(); jscCtx != nil {
				if exc := jscCtx.GetException(); exc != nil {
					log.Warn().Str("exception", exc.GetMessage()).Msg("RunJavaScript: JS exception")
				}
			}
		}
	})

	// Prevent the callback from being GC'd before it fires.
	wv.mu.Lock()
	wv.asyncCallbacks = append(wv.asyncCallbacks, cb)
	wv.mu.Unlock()

	wv.inner.EvaluateJavascript(script, -1, nil, nil, nil, &cb, 0)
}

// Destroy marks the webview dead; further commands become no-ops.
func (wv *WebView) Destroy() {
	if wv.destroyed.Swap(true) {
		return
	}
	wv.logger.Debug().Msg("webview destroyed")
}
