package model

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleepywhaleco/sleepywhale/internal/cli/styles"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/timer"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

type countingSuspender struct {
	mu    sync.Mutex
	count int
}

func (s *countingSuspender) Suspend(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return nil
}

func (s *countingSuspender) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func newTestTimerModel(t *testing.T, minutes int) (TimerModel, *countingSuspender) {
	t.Helper()

	logger := logging.NewFromConfigValues("debug", "console")
	ctx := logging.WithContext(context.Background(), logger)
	suspender := &countingSuspender{}

	return NewTimerModel(ctx, styles.NewTheme(), suspender, minutes), suspender
}

func tick(m TimerModel) (TimerModel, tea.Cmd) {
	updated, cmd := m.Update(tickMsg(time.Now()))
	return updated.(TimerModel), cmd
}

func TestTimerModelCountsDown(t *testing.T) {
	t.Parallel()

	m, _ := newTestTimerModel(t, 1)
	cmd := m.Init()
	require.NotNil(t, cmd)
	require.True(t, m.session.Running())

	m, cmd = tick(m)
	require.NotNil(t, cmd, "running timer should schedule the next tick")

	snap := m.Snapshot()
	assert.Equal(t, 59, snap.RemainingSeconds)
	assert.Equal(t, "00:00:59", snap.Display)
}

func TestTimerModelCancelKey(t *testing.T) {
	t.Parallel()

	m, suspender := newTestTimerModel(t, 1)
	m.Init()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(TimerModel)

	require.NotNil(t, cmd, "cancel should quit the program")
	assert.False(t, m.session.Running())
	assert.Equal(t, 0, suspender.Count())
	assert.Equal(t, "TIMER CANCELLED", m.Snapshot().Status.Text)
}

func TestTimerModelRunsToCompletion(t *testing.T) {
	t.Parallel()

	m, suspender := newTestTimerModel(t, 1)
	m.Init()

	var cmd tea.Cmd
	for i := 0; i < 59; i++ {
		m, cmd = tick(m)
		require.NotNil(t, cmd)
	}

	m, cmd = tick(m)
	require.NotNil(t, cmd, "completion should quit the program")

	snap := m.Snapshot()
	assert.Equal(t, timer.PhaseCompleted, snap.Phase)
	assert.Equal(t, "SWEET DREAMS WHALE!", snap.Status.Text)

	require.Eventually(t, func() bool {
		return suspender.Count() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestTimerModelInvalidDurationQuitsImmediately(t *testing.T) {
	t.Parallel()

	m, _ := newTestTimerModel(t, 500)
	cmd := m.Init()

	require.NotNil(t, cmd, "invalid duration should quit")
	assert.False(t, m.session.Running())
	assert.Equal(t, "INVALID TIME (1-480 MIN)", m.Snapshot().Status.Text)
}

func TestTeaTickerFireAndStop(t *testing.T) {
	t.Parallel()

	ticker := newTeaTicker()
	fired := 0
	handle := ticker.Start(time.Second, func() { fired++ })

	ticker.Fire()
	ticker.Fire()
	assert.Equal(t, 2, fired)

	ticker.Stop(handle)
	ticker.Fire()
	assert.Equal(t, 2, fired, "stopped ticker must not fire")
}
