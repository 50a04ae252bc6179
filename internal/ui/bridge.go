package ui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/application/usecase"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/timer"
	"github.com/sleepywhaleco/sleepywhale/internal/infrastructure/webkit"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// snapshotDTO is the JSON shape of a session snapshot pushed to the UI page.
type snapshotDTO struct {
	Phase            string    `json:"phase"`
	Running          bool      `json:"running"`
	SelectedMinutes  int       `json:"selectedMinutes"`
	TotalSeconds     int       `json:"totalSeconds"`
	RemainingSeconds int       `json:"remainingSeconds"`
	Display          string    `json:"display"`
	ProgressPercent  int       `json:"progressPercent"`
	Status           statusDTO `json:"status"`
	DimOpacity       float64   `json:"dimOpacity"`
	VideoActive      bool      `json:"videoActive"`
	DimMode          bool      `json:"dimMode"`
}

type statusDTO struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

type videoLoadedDTO struct {
	VideoID  string `json:"videoId"`
	EmbedURL string `json:"embedUrl"`
}

type startPayload struct {
	Minutes int `json:"minutes"`
}

type loadVideoPayload struct {
	URL string `json:"url"`
}

// Bridge connects the UI page to the session: inbound intents arrive through
// the message router, outbound state flows back as rendered snapshots. It
// also owns the session side effects that live outside the timer domain:
// idle inhibition while running and history completion stamping.
type Bridge struct {
	ctx       context.Context
	session   *timer.Session
	loader    *usecase.LoadVideoUseCase
	webview   *webkit.WebView
	inhibitor port.IdleInhibitor
	logger    zerolog.Logger

	// currentWatchID tracks the history row for the attached video.
	currentWatchID int64
	wasRunning     bool
}

// NewBridge creates the bridge. The inhibitor may be nil.
func NewBridge(ctx context.Context, session *timer.Session, loader *usecase.LoadVideoUseCase, wv *webkit.WebView, inhibitor port.IdleInhibitor) *Bridge {
	log := logging.FromContext(ctx)
	return &Bridge{
		ctx:       ctx,
		session:   session,
		loader:    loader,
		webview:   wv,
		inhibitor: inhibitor,
		logger:    log.With().Str("component", "bridge").Logger(),
	}
}

// Register wires the bridge's message handlers into the router and installs
// the session observer. Call before loading the UI page.
func (b *Bridge) Register(router *webkit.MessageRouter) error {
	handlers := map[string]webkit.MessageHandlerFunc{
		"ui.ready":     b.handleReady,
		"timer.start":  b.handleStart,
		"timer.cancel": b.handleCancel,
		"video.close":  b.handleVideoClose,
	}
	for msgType, handler := range handlers {
		if err := router.RegisterHandler(msgType, handler); err != nil {
			return fmt.Errorf("register %s: %w", msgType, err)
		}
	}

	if err := router.RegisterHandlerWithCallbacks(
		"video.load",
		"__sleepy.onVideoLoaded",
		"__sleepy.onVideoError",
		webkit.MessageHandlerFunc(b.handleVideoLoad),
	); err != nil {
		return fmt.Errorf("register video.load: %w", err)
	}

	b.session.SetObserver(b.onSnapshot)
	return nil
}

func (b *Bridge) handleReady(_ context.Context, _ json.RawMessage) (any, error) {
	b.logger.Debug().Msg("ui ready")
	b.render(b.session.Snapshot())
	return nil, nil
}

func (b *Bridge) handleStart(_ context.Context, payload json.RawMessage) (any, error) {
	var p startPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("invalid start payload: %w", err)
	}
	b.session.Start(p.Minutes)
	return nil, nil
}

func (b *Bridge) handleCancel(_ context.Context, _ json.RawMessage) (any, error) {
	b.session.Cancel()
	return nil, nil
}

func (b *Bridge) handleVideoLoad(ctx context.Context, payload json.RawMessage) (any, error) {
	var p loadVideoPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("invalid video payload: %w", err)
	}

	result, err := b.loader.Execute(ctx, p.URL)
	if err != nil {
		b.logger.Debug().Err(err).Str("url", p.URL).Msg("video load rejected")
		return nil, err
	}

	b.currentWatchID = result.WatchID
	b.session.AttachMedia(result.VideoID)
	b.logger.Info().Str("video_id", string(result.VideoID)).Msg("video attached")

	return videoLoadedDTO{
		VideoID:  string(result.VideoID),
		EmbedURL: result.EmbedURL,
	}, nil
}

func (b *Bridge) handleVideoClose(_ context.Context, _ json.RawMessage) (any, error) {
	b.session.DetachMedia()
	b.currentWatchID = 0
	b.logger.Info().Msg("video detached")
	return nil, nil
}

// onSnapshot runs after every session mutation, on the GTK main loop.
func (b *Bridge) onSnapshot(snap timer.Snapshot) {
	b.render(snap)

	if snap.Running != b.wasRunning {
		b.wasRunning = snap.Running
		b.toggleIdleInhibit(snap.Running)
	}

	if snap.Phase == timer.PhaseCompleted {
		b.loader.MarkCompleted(b.ctx, b.currentWatchID)
	}
}

func (b *Bridge) render(snap timer.Snapshot) {
	dto := snapshotDTO{
		Phase:            snap.Phase.String(),
		Running:          snap.Running,
		SelectedMinutes:  snap.SelectedMinutes,
		TotalSeconds:     snap.TotalSeconds,
		RemainingSeconds: snap.RemainingSeconds,
		Display:          snap.Display,
		ProgressPercent:  snap.ProgressPercent,
		Status: statusDTO{
			Text:     snap.Status.Text,
			Severity: string(snap.Status.Severity),
		},
		DimOpacity:  snap.DimOpacity,
		VideoActive: snap.VideoActive,
		DimMode:     snap.DimMode,
	}

	data, err := json.Marshal(dto)
	if err != nil {
		b.logger.Warn().Err(err).Msg("failed to marshal snapshot")
		return
	}

	script := fmt.Sprintf(
		`(function(){if(window.__sleepy&&window.__sleepy.render){window.__sleepy.render(%s);}})();`,
		string(data),
	)
	b.webview.RunJavaScript(b.ctx, script)
}

func (b *Bridge) toggleIdleInhibit(running bool) {
	if b.inhibitor == nil {
		return
	}

	if running {
		if err := b.inhibitor.Inhibit(b.ctx, "sleep timer running"); err != nil {
			b.logger.Warn().Err(err).Msg("failed to inhibit idle")
		}
		return
	}
	if err := b.inhibitor.Uninhibit(b.ctx); err != nil {
		b.logger.Warn().Err(err).Msg("failed to release idle inhibit")
	}
}
