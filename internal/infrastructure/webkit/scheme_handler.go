package webkit

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/bnema/puregotk/v4/gio"
	"github.com/bnema/puregotk/v4/glib"
	"github.com/rs/zerolog"

	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// SchemeName is the custom URI scheme serving the embedded UI.
const SchemeName = "sleepy"

// SchemeRequest represents a request to the sleepy:// scheme.
type SchemeRequest struct {
	inner  *webkit.URISchemeRequest
	URI    string
	Path   string
	Method string
}

// SchemeResponse is the reply to a scheme request.
type SchemeResponse struct {
	Data        []byte
	ContentType string
	StatusCode  int
}

// PageHandler generates content for a specific page path.
type PageHandler interface {
	Handle(req *SchemeRequest) *SchemeResponse
}

// PageHandlerFunc adapts ordinary functions to PageHandler.
type PageHandlerFunc func(req *SchemeRequest) *SchemeResponse

func (f PageHandlerFunc) Handle(req *SchemeRequest) *SchemeResponse {
	return f(req)
}

// SleepySchemeHandler serves sleepy:// URIs from registered handlers,
// typically embedded UI assets.
type SleepySchemeHandler struct {
	handlers map[string]PageHandler
	logger   zerolog.Logger
	mu       sync.RWMutex
}

// NewSleepySchemeHandler creates a handler for the sleepy:// scheme.
func NewSleepySchemeHandler(ctx context.Context) *SleepySchemeHandler {
	log := logging.FromContext(ctx)
	return &SleepySchemeHandler{
		handlers: make(map[string]PageHandler),
		logger:   log.With().Str("component", "scheme-handler").Logger(),
	}
}

// RegisterPage registers a handler for a specific path.
func (h *SleepySchemeHandler) RegisterPage(path string, handler PageHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[path] = handler
	h.logger.Debug().Str("path", path).Msg("registered page handler")
}

// RegisterAsset registers a static asset under the given path.
func (h *SleepySchemeHandler) RegisterAsset(path string, data []byte, contentType string) {
	h.RegisterPage(path, PageHandlerFunc(func(*SchemeRequest) *SchemeResponse {
		return &SchemeResponse{
			Data:        data,
			ContentType: contentType,
			StatusCode:  http.StatusOK,
		}
	}))
}

// HandleRequest processes a scheme request and sends the response.
func (h *SleepySchemeHandler) HandleRequest(reqPtr uintptr) {
	req := webkit.URISchemeRequestNewFromInternalPtr(reqPtr)
	if req == nil {
		return
	}

	schemeReq := &SchemeRequest{
		inner:  req,
		URI:    req.GetUri(),
		Path:   req.GetPath(),
		Method: req.GetHttpMethod(),
	}

	h.logger.Debug().
		Str("uri", schemeReq.URI).
		Str("path", schemeReq.Path).
		Msg("handling scheme request")

	h.mu.RLock()
	handler, ok := h.handlers[schemeReq.Path]
	if !ok {
		handler, ok = h.handlers[strings.TrimPrefix(schemeReq.Path, "/")]
	}
	h.mu.RUnlock()

	var response *SchemeResponse
	if ok {
		response = handler.Handle(schemeReq)
	} else {
		response = &SchemeResponse{
			Data:        []byte(notFoundHTML),
			ContentType: "text/html",
			StatusCode:  http.StatusNotFound,
		}
	}

	h.sendResponse(req, response)
}

func (h *SleepySchemeHandler) sendResponse(req *webkit.URISchemeRequest, response *SchemeResponse) {
	if response == nil {
		response = &SchemeResponse{
			Data:        []byte("Internal error"),
			ContentType: "text/plain",
			StatusCode:  http.StatusInternalServerError,
		}
	}

	gbytes := glib.NewBytes(response.Data, uint(len(response.Data)))
	if gbytes == nil {
		h.logger.Error().Msg("failed to create GBytes for response")
		return
	}

	stream := gio.NewMemoryInputStreamFromBytes(gbytes)
	if stream == nil {
		h.logger.Error().Msg("failed to create MemoryInputStream for response")
		return
	}

	contentType := response.ContentType
	if contentType == "" {
		contentType = "text/html"
	}

	req.Finish(&stream.InputStream, int64(len(response.Data)), &contentType)
}

// RegisterWithContext registers the sleepy:// scheme with a WebKitContext.
func (h *SleepySchemeHandler) RegisterWithContext(wkCtx *WebKitContext) {
	if wkCtx == nil || wkCtx.Context() == nil {
		h.logger.Error().Msg("cannot register scheme: context is nil")
		return
	}

	callback := webkit.URISchemeRequestCallback(func(reqPtr, _ uintptr) {
		h.HandleRequest(reqPtr)
	})

	wkCtx.Context().RegisterUriScheme(SchemeName, &callback, 0, nil)

	secMgr := wkCtx.Context().GetSecurityManager()
	if secMgr != nil {
		secMgr.RegisterUriSchemeAsLocal(SchemeName)
		secMgr.RegisterUriSchemeAsSecure(SchemeName)
	}

	h.logger.Info().Msg("sleepy:// scheme registered")
}

const notFoundHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Not Found</title>
    <style>
        body {
            font-family: system-ui, sans-serif;
            background: #0a0e1a;
            color: #cdd6f4;
            display: flex;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
        }
        h1 { color: #f9a825; }
    </style>
</head>
<body>
    <h1>404</h1>
</body>
</html>`
