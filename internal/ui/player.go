package ui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/webkit"
)

// iframePlayer drives the embedded YouTube player through its postMessage
// API. Commands cross two boundaries (Go -> UI page -> iframe) and are
// fire-and-forget on both.
type iframePlayer struct {
	webview *webkit.WebView
	logger  zerolog.Logger
}

// NewIframePlayer creates a PlayerTransport targeting the #youtube-player
// iframe inside the given webview.
func NewIframePlayer(wv *webkit.WebView, logger zerolog.Logger) port.PlayerTransport {
	return &iframePlayer{
		webview: wv,
		logger:  logger.With().Str("component", "iframe-player").Logger(),
	}
}

func (p *iframePlayer) Pause(ctx context.Context) {
	p.command(ctx, "pauseVideo", nil)
}

func (p *iframePlayer) SetVolume(ctx context.Context, percent int) {
	p.command(ctx, "setVolume", []any{percent})
}

func (p *iframePlayer) command(ctx context.Context, fn string, args []any) {
	if args == nil {
		args = []any{}
	}

	msg, err := json.Marshal(map[string]any{
		"event": "command",
		"func":  fn,
		"args":  args,
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("func", fn).Msg("failed to marshal player command")
		return
	}

	// The YouTube iframe API expects the command envelope as a JSON string.
	payload, err := json.Marshal(string(msg))
	if err != nil {
		p.logger.Warn().Err(err).Str("func", fn).Msg("failed to marshal player payload")
		return
	}

	script := fmt.Sprintf(
		`(function(){var p=document.getElementById("youtube-player");`+
			`if(p&&p.contentWindow){p.contentWindow.postMessage(%s,"*");}})();`,
		string(payload),
	)

	p.logger.Debug().Str("func", fn).Msg("sending player command")
	p.webview.RunJavaScript(ctx, script)
}
