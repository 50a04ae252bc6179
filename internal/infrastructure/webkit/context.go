// Package webkit wraps the WebKitGTK webview hosting the sleepywhale UI.
package webkit

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/rs/zerolog"

	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// WebKitContext manages the shared WebContext and persistent NetworkSession.
// Must be initialized before any WebView is created.
type WebKitContext struct {
	webContext     *webkit.WebContext
	networkSession *webkit.NetworkSession

	dataDir  string
	cacheDir string

	logger      zerolog.Logger
	initialized bool
}

// NewWebKitContext creates a WebKitContext with a persistent NetworkSession
// rooted at the given directories (cookies, cache, local storage).
func NewWebKitContext(ctx context.Context, dataDir, cacheDir string) (*WebKitContext, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-context").Logger()

	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if cacheDir == "" {
		return nil, fmt.Errorf("cache directory cannot be empty")
	}

	wkCtx := &WebKitContext{
		dataDir:  dataDir,
		cacheDir: cacheDir,
		logger:   log,
	}

	// The first NetworkSession created becomes the default (WebKitGTK 6.0).
	session := webkit.NewNetworkSession(&wkCtx.dataDir, &wkCtx.cacheDir)
	if session == nil {
		return nil, fmt.Errorf("failed to create network session")
	}
	if session.IsEphemeral() {
		return nil, fmt.Errorf("network session is ephemeral despite data directories")
	}
	wkCtx.networkSession = session

	cookieManager := session.GetCookieManager()
	if cookieManager == nil {
		return nil, fmt.Errorf("failed to get cookie manager")
	}
	cookiePath := filepath.Join(dataDir, "cookies.db")
	cookieManager.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqliteValue)

	wkCtx.webContext = webkit.WebContextGetDefault()
	if wkCtx.webContext == nil {
		return nil, fmt.Errorf("failed to get WebContext")
	}

	wkCtx.initialized = true
	log.Info().
		Str("data_dir", dataDir).
		Str("cache_dir", cacheDir).
		Msg("webkit context initialized")

	return wkCtx, nil
}

// Context returns the underlying WebContext.
func (c *WebKitContext) Context() *webkit.WebContext {
	return c.webContext
}

// NetworkSession returns the persistent network session.
func (c *WebKitContext) NetworkSession() *webkit.NetworkSession {
	return c.networkSession
}

// IsInitialized reports whether the context is ready for WebView creation.
func (c *WebKitContext) IsInitialized() bool {
	return c.initialized
}
