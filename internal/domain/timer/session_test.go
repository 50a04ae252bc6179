package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
)

type fakeTransport struct {
	pauses  int
	volumes []int
}

func (f *fakeTransport) Pause(context.Context) { f.pauses++ }

func (f *fakeTransport) SetVolume(_ context.Context, percent int) {
	f.volumes = append(f.volumes, percent)
}

type fakeDim struct {
	opacities []float64
}

func (f *fakeDim) SetOpacity(_ context.Context, opacity float64) {
	f.opacities = append(f.opacities, opacity)
}

type fakeSuspender struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSuspender) Suspend(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeSuspender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeTickSource struct {
	fn     func()
	active bool
	starts int
	stops  int
	last   port.TickHandle
}

func (f *fakeTickSource) Start(_ time.Duration, fn func()) port.TickHandle {
	f.fn = fn
	f.active = true
	f.starts++
	f.last++
	return f.last
}

func (f *fakeTickSource) Stop(port.TickHandle) {
	f.active = false
	f.stops++
}

func (f *fakeTickSource) fire() {
	if f.active && f.fn != nil {
		f.fn()
	}
}

type harness struct {
	session   *Session
	transport *fakeTransport
	dim       *fakeDim
	suspender *fakeSuspender
	ticks     *fakeTickSource
}

func newHarness() *harness {
	h := &harness{
		transport: &fakeTransport{},
		dim:       &fakeDim{},
		suspender: &fakeSuspender{},
		ticks:     &fakeTickSource{},
	}
	h.session = NewSession(
		context.Background(),
		NewMediaController(h.transport),
		NewDimController(h.dim),
		h.suspender,
		h.ticks,
		zerolog.Nop(),
	)
	return h
}

// fireTicks advances the countdown by n seconds.
func (h *harness) fireTicks(n int) {
	for i := 0; i < n; i++ {
		h.ticks.fire()
	}
}

func TestStartValidDuration(t *testing.T) {
	t.Parallel()

	for _, minutes := range []int{1, 60, 480} {
		h := newHarness()
		h.session.Start(minutes)

		assert.Equal(t, PhaseRunning, h.session.Phase())
		snap := h.session.Snapshot()
		assert.Equal(t, minutes*60, snap.TotalSeconds)
		assert.Equal(t, minutes*60, snap.RemainingSeconds)
		assert.Equal(t, msgRunning, snap.Status.Text)
		assert.Equal(t, SeverityRunning, snap.Status.Severity)
		assert.Equal(t, 1, h.ticks.starts)
	}
}

func TestStartInvalidDuration(t *testing.T) {
	t.Parallel()

	for _, minutes := range []int{0, -5, 481, 1000} {
		h := newHarness()
		h.session.Start(minutes)

		assert.Equal(t, PhaseIdle, h.session.Phase())
		snap := h.session.Snapshot()
		assert.Equal(t, msgInvalidDuration, snap.Status.Text)
		assert.Equal(t, SeverityWarning, snap.Status.Severity)
		assert.Zero(t, h.ticks.starts, "no tick registration on invalid duration")
	}
}

func TestStartBoundsInclusive(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(MinMinutes)
	require.Equal(t, PhaseRunning, h.session.Phase())
	h.session.Cancel()

	h.session.Start(MaxMinutes)
	require.Equal(t, PhaseRunning, h.session.Phase())
}

func TestRestartReplacesTickRegistration(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(2)
	h.session.Start(3)

	assert.Equal(t, 2, h.ticks.starts)
	assert.Equal(t, 1, h.ticks.stops, "prior registration torn down before new one")
	assert.Equal(t, 180, h.session.Snapshot().RemainingSeconds)
}

func TestTickMonotonicDecrement(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(1)

	prev := h.session.Snapshot().RemainingSeconds
	for i := 0; i < 59; i++ {
		h.ticks.fire()
		cur := h.session.Snapshot().RemainingSeconds
		assert.Equal(t, prev-1, cur)
		assert.GreaterOrEqual(t, cur, 0)
		prev = cur
	}
	assert.Equal(t, PhaseRunning, h.session.Phase())
}

func TestStatusThresholdsAndStickiness(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(2) // 120 seconds

	h.fireTicks(59) // remaining 61
	assert.Equal(t, msgRunning, h.session.Snapshot().Status.Text)

	h.ticks.fire() // remaining 60
	snap := h.session.Snapshot()
	assert.Equal(t, msgGettingSleepy, snap.Status.Text)
	assert.Equal(t, SeverityWarning, snap.Status.Severity)

	// Sticky: a later tick with 10 < remaining <= 60 must not revert.
	h.fireTicks(20) // remaining 40
	assert.Equal(t, msgGettingSleepy, h.session.Snapshot().Status.Text)

	h.fireTicks(30) // remaining 10
	assert.Equal(t, msgAlmostThere, h.session.Snapshot().Status.Text)
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.AttachMedia("dQw4w9WgXcQ")
	h.session.Start(1)

	h.fireTicks(60)

	snap := h.session.Snapshot()
	assert.Equal(t, PhaseCompleted, snap.Phase)
	assert.Zero(t, snap.TotalSeconds)
	assert.Zero(t, snap.RemainingSeconds)
	assert.Equal(t, msgSweetDreams, snap.Status.Text)
	assert.Equal(t, SeverityNone, snap.Status.Severity)

	assert.Equal(t, 1, h.transport.pauses, "exactly one pause on completion")
	assert.Equal(t, 1, h.ticks.stops)

	require.Eventually(t, func() bool {
		return h.suspender.count() == 1
	}, time.Second, 5*time.Millisecond, "exactly one suspend call")

	// A stray tick after completion is a no-op.
	h.session.Tick()
	assert.Zero(t, h.session.Snapshot().RemainingSeconds)
	assert.Equal(t, 1, h.transport.pauses)
}

func TestCompletionWithoutMedia(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(1)
	h.fireTicks(60)

	assert.Equal(t, PhaseCompleted, h.session.Phase())
	assert.Zero(t, h.transport.pauses, "pause is a no-op when detached")
	require.Eventually(t, func() bool {
		return h.suspender.count() == 1
	}, time.Second, 5*time.Millisecond, "suspend must not depend on player cooperation")
}

func TestCancel(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.AttachMedia("dQw4w9WgXcQ")
	h.session.Start(2)
	h.fireTicks(30)

	h.session.Cancel()

	snap := h.session.Snapshot()
	assert.Equal(t, PhaseCancelled, snap.Phase)
	assert.Zero(t, snap.TotalSeconds)
	assert.Zero(t, snap.RemainingSeconds)
	assert.Equal(t, msgCancelled, snap.Status.Text)
	assert.Equal(t, 1, h.ticks.stops)

	// Dim reset and volume restored.
	require.NotEmpty(t, h.dim.opacities)
	assert.Zero(t, h.dim.opacities[len(h.dim.opacities)-1])
	require.NotEmpty(t, h.transport.volumes)
	assert.Equal(t, 100, h.transport.volumes[len(h.transport.volumes)-1])

	// No suspend on cancellation.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, h.suspender.count())
}

func TestCancelWhenIdleIsNoop(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Cancel()

	assert.Equal(t, PhaseIdle, h.session.Phase())
	assert.Equal(t, msgReady, h.session.Snapshot().Status.Text)
	assert.Zero(t, h.ticks.stops)
	assert.Empty(t, h.dim.opacities)
}

func TestCancelTwiceIsNoop(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(1)
	h.session.Cancel()

	stops := h.ticks.stops
	h.session.Cancel()
	assert.Equal(t, stops, h.ticks.stops)
}

func TestDimOpacityMonotonicAndBounded(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(1)
	h.fireTicks(59)

	require.NotEmpty(t, h.dim.opacities)
	prev := 0.0
	for _, o := range h.dim.opacities {
		assert.GreaterOrEqual(t, o, prev)
		assert.GreaterOrEqual(t, o, 0.0)
		assert.LessOrEqual(t, o, MaxDimOpacity)
		prev = o
	}
}

func TestDimAppliedWithoutMedia(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(1)
	h.ticks.fire()

	assert.NotEmpty(t, h.dim.opacities, "dimming does not require an attached player")
	assert.Empty(t, h.transport.volumes, "volume fade requires an attached player")
}

func TestVolumeFadeLastTenPercent(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.AttachMedia("dQw4w9WgXcQ")
	h.session.Start(1) // total 60s, tenPercent 6

	h.fireTicks(53) // remaining 7, above the fade window
	assert.Empty(t, h.transport.volumes)

	h.ticks.fire() // remaining 6
	require.Len(t, h.transport.volumes, 1)
	assert.Equal(t, 100, h.transport.volumes[0])

	h.fireTicks(3) // remaining 3
	assert.Equal(t, 50, h.transport.volumes[len(h.transport.volumes)-1])

	h.fireTicks(2) // remaining 1, the boundary before completion
	assert.Equal(t, 17, h.transport.volumes[len(h.transport.volumes)-1])

	for _, v := range h.transport.volumes {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestAttachDetachDuringRun(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(2)
	h.fireTicks(10)

	before := h.session.Snapshot().RemainingSeconds
	h.session.AttachMedia("dQw4w9WgXcQ")
	assert.Equal(t, before, h.session.Snapshot().RemainingSeconds, "attach never perturbs the countdown")
	assert.True(t, h.session.Snapshot().VideoActive)

	h.session.DetachMedia()
	snap := h.session.Snapshot()
	assert.Equal(t, before, snap.RemainingSeconds, "detach never perturbs the countdown")
	assert.False(t, snap.VideoActive)
	assert.False(t, snap.DimMode)
	assert.Equal(t, PhaseRunning, snap.Phase)

	h.ticks.fire()
	assert.Equal(t, before-1, h.session.Snapshot().RemainingSeconds)
}

func TestDimModeFollowsAttachmentAtStart(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.AttachMedia("dQw4w9WgXcQ")
	h.session.Start(1)
	assert.True(t, h.session.Snapshot().DimMode)

	h2 := newHarness()
	h2.session.Start(1)
	assert.False(t, h2.session.Snapshot().DimMode)
}

func TestObserverReceivesSnapshots(t *testing.T) {
	t.Parallel()

	h := newHarness()
	var got []Snapshot
	h.session.SetObserver(func(s Snapshot) { got = append(got, s) })

	h.session.Start(1)
	h.ticks.fire()
	h.session.Cancel()

	require.Len(t, got, 3)
	assert.True(t, got[0].Running)
	assert.Equal(t, "00:00:59", got[1].Display)
	assert.Equal(t, PhaseCancelled, got[2].Phase)
}

func TestSelectMinutesIgnoredWhileRunning(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.session.Start(2)
	h.session.SelectMinutes(30)
	assert.Equal(t, 2, h.session.SelectedMinutes())

	h.session.Cancel()
	h.session.SelectMinutes(30)
	assert.Equal(t, 30, h.session.SelectedMinutes())
}
