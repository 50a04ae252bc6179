package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sleepywhaleco/sleepywhale/internal/cli/styles"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/entity"
	"github.com/sleepywhaleco/sleepywhale/internal/domain/repository"
)

const historyPageSize = 50

// HistoryModel displays recent watches in a table.
type HistoryModel struct {
	ctx     context.Context
	theme   *styles.Theme
	watches repository.WatchRepository

	table   table.Model
	entries []entity.Watch
	loading bool
	err     error
}

// watchesLoadedMsg is sent when the watch list has been fetched.
type watchesLoadedMsg struct {
	entries []entity.Watch
	err     error
}

// NewHistoryModel creates the watch history browser.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, watches repository.WatchRepository) HistoryModel {
	columns := []table.Column{
		{Title: "WATCHED", Width: 20},
		{Title: "VIDEO", Width: 16},
		{Title: "SLEPT", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(theme.Accent)
	st.Selected = st.Selected.Foreground(theme.Background).Background(theme.Accent)
	t.SetStyles(st)

	return HistoryModel{
		ctx:     ctx,
		theme:   theme,
		watches: watches,
		table:   t,
		loading: true,
	}
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.loadWatches
}

func (m HistoryModel) loadWatches() tea.Msg {
	entries, err := m.watches.RecentWatches(m.ctx, historyPageSize)
	return watchesLoadedMsg{entries: entries, err: err}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case watchesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		m.table.SetRows(watchRows(msg.entries))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func watchRows(entries []entity.Watch) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, w := range entries {
		slept := "no"
		if w.Completed {
			slept = "yes"
		}
		rows = append(rows, table.Row{
			w.WatchedAt.Format("2006-01-02 15:04"),
			w.VideoID,
			slept,
		})
	}
	return rows
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	if m.loading {
		return m.theme.Subtle.Render("loading watch history...")
	}
	if m.err != nil {
		return m.theme.ErrorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	if len(m.entries) == 0 {
		return m.theme.Subtle.Render("no watches recorded yet")
	}

	header := m.theme.Title.Render("WATCH HISTORY")
	help := fmt.Sprintf("%s %s",
		m.theme.HelpKey.Render("q"),
		m.theme.HelpDesc.Render("quit"))

	return header + "\n\n" + m.table.View() + "\n" + help
}

// Entries returns the loaded watches, for --json output.
func (m HistoryModel) Entries() []entity.Watch {
	return m.entries
}

// Error returns the load error, if any.
func (m HistoryModel) Error() error {
	return m.err
}
