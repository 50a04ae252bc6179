package webkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/puregotk-webkit/javascriptcore"
	"github.com/bnema/puregotk-webkit/webkit"

	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// MessageHandlerName is the webkit.messageHandlers entry the UI posts to.
const MessageHandlerName = "sleepy"

// Message is the JS -> Go envelope sent via postMessage.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MessageHandler handles a decoded message payload.
type MessageHandler interface {
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handle calls f(ctx, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	return f(ctx, payload)
}

type handlerEntry struct {
	handler       MessageHandler
	callback      string
	errorCallback string
}

// MessageRouter dispatches script-message events from the UI webview to
// registered handlers.
type MessageRouter struct {
	baseCtx context.Context
	webview *WebView

	mu        sync.RWMutex
	handlers  map[string]handlerEntry
	callbacks []interface{} // keep signal closures alive
}

// NewMessageRouter creates a message router.
func NewMessageRouter(ctx context.Context) *MessageRouter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &MessageRouter{
		baseCtx:  ctx,
		handlers: make(map[string]handlerEntry),
	}
}

// RegisterHandler registers a handler for a message type.
func (r *MessageRouter) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handlerEntry{handler: handler}
	return nil
}

// RegisterHandlerWithCallbacks registers a handler and window-level response
// callbacks: callback on success, errorCallback (optional) on failure.
func (r *MessageRouter) RegisterHandlerWithCallbacks(msgType, callback, errorCallback string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}
	if callback == "" {
		return errors.New("callback cannot be empty when registering with callbacks")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handlerEntry{
		handler:       handler,
		callback:      callback,
		errorCallback: errorCallback,
	}
	return nil
}

// Attach wires the router into the webview's UserContentManager. Registers
// the script message handler in the main world: webkit.messageHandlers is
// only available there.
func (r *MessageRouter) Attach(wv *WebView) error {
	log := logging.FromContext(r.baseCtx).With().Str("component", "message-router").Logger()

	if wv == nil || wv.UserContentManager() == nil {
		return errors.New("webview has no user content manager")
	}
	r.webview = wv
	ucm := wv.UserContentManager()

	// Connect to the signal before registering the handler, per WebKit docs.
	cb := func(_ webkit.UserContentManager, valuePtr uintptr) {
		r.handleScriptMessage(valuePtr)
	}

	r.mu.Lock()
	r.callbacks = append(r.callbacks, cb)
	r.mu.Unlock()

	signalID := ucm.ConnectScriptMessageReceived(&cb)

	if ok := ucm.RegisterScriptMessageHandler(MessageHandlerName, nil); !ok {
		return fmt.Errorf("failed to register script message handler %q", MessageHandlerName)
	}

	log.Info().
		Str("handler", MessageHandlerName).
		Uint("signal_id", signalID).
		Msg("script message handler connected")
	return nil
}

// handleScriptMessage decodes the JSC value and routes it to a handler.
func (r *MessageRouter) handleScriptMessage(valuePtr uintptr) {
	log := logging.FromContext(r.baseCtx).With().Str("component", "message-router").Logger()

	if valuePtr == 0 {
		log.Warn().Msg("received script message with nil value pointer")
		return
	}

	jscValue := javascriptcore.ValueNewFromInternalPtr(valuePtr)
	if jscValue == nil {
		log.Warn().Msg("failed to wrap script message JSC value")
		return
	}

	rawJSON := jscValue.ToJson(0)
	if rawJSON == "" {
		log.Warn().Msg("script message JSON is empty")
		return
	}

	var msg Message
	if err := json.Unmarshal([]byte(rawJSON), &msg); err != nil {
		log.Warn().Err(err).Str("json", rawJSON).Msg("failed to unmarshal script message")
		return
	}
	if msg.Type == "" {
		log.Warn().Msg("script message missing type")
		return
	}

	entry, ok := r.getHandler(msg.Type)
	if !ok || entry.handler == nil {
		log.Warn().Str("type", msg.Type).Msg("no handler registered for message type")
		return
	}

	log.Debug().
		Str("type", msg.Type).
		Int("payload_len", len(msg.Payload)).
		Msg("received script message")

	resp, err := entry.handler.Handle(r.baseCtx, msg.Payload)
	if err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("message handler returned error")
		if entry.errorCallback != "" {
			r.dispatchResponse(entry.errorCallback, err.Error())
		}
		return
	}

	if entry.callback != "" {
		r.dispatchResponse(entry.callback, resp)
	}
}

func (r *MessageRouter) getHandler(msgType string) (handlerEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.handlers[msgType]
	return entry, ok
}

// dispatchResponse serializes the payload and invokes a window callback in JS.
func (r *MessageRouter) dispatchResponse(callback string, payload any) {
	log := logging.FromContext(r.baseCtx)

	if r.webview == nil {
		log.Warn().Str("callback", callback).Msg("no webview attached for callback dispatch")
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("callback", callback).Msg("failed to marshal callback payload")
		return
	}

	script := fmt.Sprintf(
		`(function(){try{if(window.%[1]s){window.%[1]s(%[2]s);}`+
			`else{console.warn("sleepy callback missing: %[1]s");}}`+
			`catch(e){console.error("sleepy callback %[1]s failed", e);}})();`,
		callback,
		string(data),
	)

	r.webview.RunJavaScript(r.baseCtx, script)
}
