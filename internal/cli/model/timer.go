package model

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/cli/styles"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/timer"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// tickMsg advances the countdown by one interval.
type tickMsg time.Time

// TimerModel runs a sleep session in the terminal: countdown, progress bar,
// and the same suspend-on-completion behavior as the GUI, minus the video.
type TimerModel struct {
	ctx     context.Context
	theme   *styles.Theme
	session *timer.Session
	ticker  *teaTicker

	progress progress.Model
	minutes  int
	width    int
	quitting bool
}

// NewTimerModel creates a TUI countdown for the given duration.
func NewTimerModel(ctx context.Context, theme *styles.Theme, suspender port.Suspender, minutes int) TimerModel {
	ticker := newTeaTicker()
	log := logging.FromContext(ctx)

	session := timer.NewSession(ctx, timer.NewMediaController(nil), timer.NewDimController(nil), suspender, ticker, *log)

	return TimerModel{
		ctx:      ctx,
		theme:    theme,
		session:  session,
		ticker:   ticker,
		progress: progress.New(progress.WithDefaultGradient()),
		minutes:  minutes,
		width:    60,
	}
}

// Init implements tea.Model.
func (m TimerModel) Init() tea.Cmd {
	m.session.Start(m.minutes)
	if !m.session.Running() {
		// Invalid duration: render the status once and exit.
		return tea.Quit
	}
	return m.scheduleTick()
}

func (m TimerModel) scheduleTick() tea.Cmd {
	return tea.Tick(timer.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-8, 60)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "c", "esc", "ctrl+c":
			m.session.Cancel()
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.ticker.Fire()
		snap := m.session.Snapshot()
		if snap.Phase == timer.PhaseCompleted {
			m.quitting = true
			return m, tea.Quit
		}
		if snap.Running {
			return m, m.scheduleTick()
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m TimerModel) View() string {
	snap := m.session.Snapshot()

	title := m.theme.Title.Render("SLEEPY WHALE")
	display := m.theme.TimerDisplay.Render(snap.Display)
	bar := m.progress.ViewAs(float64(snap.ProgressPercent) / 100.0)
	status := m.theme.StatusStyle(string(snap.Status.Severity)).Render(snap.Status.Text)

	help := ""
	if snap.Running {
		help = fmt.Sprintf("%s %s",
			m.theme.HelpKey.Render("c"),
			m.theme.HelpDesc.Render("cancel"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		display,
		bar,
		"",
		status,
		help,
	)

	out := m.theme.Box.Render(body)
	if m.quitting {
		out += "\n"
	}
	return out
}

// Snapshot exposes the session state, for callers inspecting the final model.
func (m TimerModel) Snapshot() timer.Snapshot {
	return m.session.Snapshot()
}
