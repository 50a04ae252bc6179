// Package timer owns the sleep-session state machine: countdown, derived
// status, progressive dimming, volume fade, and the terminal suspend action.
package timer

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/videoref"
)

// Phase is the session lifecycle state. Completed and Cancelled are transient
// annotations: the session folds back to an idle-shaped state (remaining=0,
// total=0) on the same transition, they only exist to drive one-shot side
// effects.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseCompleted
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseCompleted:
		return "completed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

const (
	// MinMinutes and MaxMinutes bound the selectable duration, inclusive.
	MinMinutes = 1
	MaxMinutes = 480

	// DefaultMinutes is the duration selected at startup.
	DefaultMinutes = 60

	// TickInterval is the countdown resolution.
	TickInterval = time.Second
)

// Snapshot is the derived view of the session pushed to observers after every
// mutation. It carries everything a presentation layer needs.
type Snapshot struct {
	Phase            Phase
	Running          bool
	SelectedMinutes  int
	TotalSeconds     int
	RemainingSeconds int
	Display          string // HH:MM:SS
	ProgressPercent  int
	Status           Status
	DimOpacity       float64
	VideoActive      bool
	DimMode          bool
}

// Session is the aggregate state of one timer run. All mutable state is
// confined to a single-threaded owner (the GTK main loop or the Bubble Tea
// update loop); external capabilities are invoked, never shared.
type Session struct {
	media     *MediaController
	dim       *DimController
	suspender port.Suspender
	ticks     port.TickSource
	logger    zerolog.Logger

	ctx      context.Context
	observer func(Snapshot)

	selectedMinutes  int
	totalSeconds     int
	remainingSeconds int
	phase            Phase
	tickHandle       port.TickHandle
	hasTick          bool
	status           Status
	dimMode          bool
}

// NewSession creates an idle session with the default duration selected.
func NewSession(ctx context.Context, media *MediaController, dim *DimController, suspender port.Suspender, ticks port.TickSource, logger zerolog.Logger) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Session{
		media:           media,
		dim:             dim,
		suspender:       suspender,
		ticks:           ticks,
		logger:          logger.With().Str("component", "session").Logger(),
		ctx:             ctx,
		selectedMinutes: DefaultMinutes,
		phase:           PhaseIdle,
		status:          Status{Text: msgReady, Severity: SeverityNeutral},
	}
}

// SetObserver registers the snapshot callback invoked after every mutation.
func (s *Session) SetObserver(fn func(Snapshot)) {
	s.observer = fn
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Running reports whether a countdown is in progress.
func (s *Session) Running() bool {
	return s.phase == PhaseRunning
}

// SelectedMinutes returns the currently selected duration.
func (s *Session) SelectedMinutes() int {
	return s.selectedMinutes
}

// SelectMinutes updates the selected duration. Ignored while running; the
// value is validated on Start, not here, so free-form input can stay live.
func (s *Session) SelectMinutes(minutes int) {
	if s.phase == PhaseRunning {
		return
	}
	s.selectedMinutes = minutes
	s.publish()
}

// Media exposes the media controller for attachment state queries.
func (s *Session) Media() *MediaController {
	return s.media
}

// Start begins a countdown of the given duration in minutes. Out-of-range
// durations leave the session idle and surface a warning status. Any prior
// tick registration is torn down first: at most one is ever outstanding.
func (s *Session) Start(minutes int) {
	if minutes < MinMinutes || minutes > MaxMinutes {
		s.status = Status{Text: msgInvalidDuration, Severity: SeverityWarning}
		s.logger.Warn().Int("minutes", minutes).Msg("rejected out-of-range duration")
		s.publish()
		return
	}

	s.stopTicks()

	s.selectedMinutes = minutes
	s.totalSeconds = minutes * 60
	s.remainingSeconds = s.totalSeconds
	s.phase = PhaseRunning
	s.status = Status{Text: msgRunning, Severity: SeverityRunning}
	s.dimMode = s.media.Attached()

	s.tickHandle = s.ticks.Start(TickInterval, s.Tick)
	s.hasTick = true

	s.logger.Info().
		Int("minutes", minutes).
		Bool("media_attached", s.media.Attached()).
		Msg("session started")
	s.publish()
}

// Tick advances the countdown by one second. Invoked by the tick source on
// the owner's event loop; a stray tick outside Running is ignored.
func (s *Session) Tick() {
	if s.phase != PhaseRunning {
		return
	}

	if s.remainingSeconds > 0 {
		s.remainingSeconds--
	}

	if s.remainingSeconds == 0 {
		s.complete()
		return
	}

	remaining := s.remainingSeconds

	// Status upgrades are sticky: once a more urgent message is shown it is
	// never reset to "TIMER RUNNING" on this path, only a new session is.
	switch {
	case remaining <= almostThereThreshold:
		s.status = Status{Text: msgAlmostThere, Severity: SeverityWarning}
	case remaining <= gettingSleepyThreshold:
		s.status = Status{Text: msgGettingSleepy, Severity: SeverityWarning}
	}

	// Progressive dimming tracks elapsed fraction whether or not media is
	// attached; attachment only gates the volume fade.
	s.dim.Apply(s.ctx, s.progress())

	if s.media.Attached() {
		tenPercent := s.totalSeconds / 10
		if tenPercent > 0 && remaining <= tenPercent {
			volume := int(math.Round(float64(remaining) / float64(tenPercent) * 100))
			s.media.SetVolume(s.ctx, volume)
		}
	}

	s.publish()
}

// Cancel tears down a running countdown synchronously: no tick is observed
// after Cancel returns. Calling it while idle is a no-op.
func (s *Session) Cancel() {
	if s.phase != PhaseRunning {
		return
	}

	s.stopTicks()
	s.phase = PhaseCancelled
	s.totalSeconds = 0
	s.remainingSeconds = 0
	s.status = Status{Text: msgCancelled, Severity: SeverityNone}

	s.dim.Reset(s.ctx)
	if s.media.Attached() {
		s.media.SetVolume(s.ctx, 100)
	}

	s.logger.Info().Msg("session cancelled")
	s.publish()
}

// AttachMedia binds a loaded video to the session. Attaching while running
// never perturbs the countdown.
func (s *Session) AttachMedia(id videoref.MediaID) {
	s.media.Attach(id)
	s.publish()
}

// DetachMedia unbinds the video and disables dim-mode styling. The countdown,
// if running, keeps going unaffected.
func (s *Session) DetachMedia() {
	s.media.Detach()
	s.dimMode = false
	s.publish()
}

// Snapshot derives the current presentation view.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:            s.phase,
		Running:          s.phase == PhaseRunning,
		SelectedMinutes:  s.selectedMinutes,
		TotalSeconds:     s.totalSeconds,
		RemainingSeconds: s.remainingSeconds,
		Display:          FormatHMS(s.remainingSeconds),
		ProgressPercent:  ProgressPercent(s.totalSeconds, s.remainingSeconds),
		Status:           s.status,
		DimOpacity:       s.dim.Opacity(s.progress()),
		VideoActive:      s.media.Attached(),
		DimMode:          s.dimMode,
	}
}

// complete handles natural expiry: fold to idle shape, pause the player, and
// fire the suspend capability exactly once, without awaiting the outcome.
func (s *Session) complete() {
	s.stopTicks()
	s.phase = PhaseCompleted
	s.totalSeconds = 0
	s.remainingSeconds = 0
	s.status = Status{Text: msgSweetDreams, Severity: SeverityNone}

	s.media.Pause(s.ctx)

	suspender := s.suspender
	logger := s.logger
	go func() {
		if suspender == nil {
			return
		}
		if err := suspender.Suspend(context.Background()); err != nil {
			// Session is already Completed; failure is logged, never surfaced.
			logger.Warn().Err(err).Msg("host suspend failed")
		}
	}()

	s.logger.Info().Msg("session completed, suspending host")
	s.publish()
}

func (s *Session) stopTicks() {
	if !s.hasTick {
		return
	}
	s.ticks.Stop(s.tickHandle)
	s.hasTick = false
}

func (s *Session) progress() float64 {
	if s.totalSeconds == 0 {
		return 0
	}
	return float64(s.totalSeconds-s.remainingSeconds) / float64(s.totalSeconds)
}

func (s *Session) publish() {
	if s.observer == nil {
		return
	}
	s.observer(s.Snapshot())
}
