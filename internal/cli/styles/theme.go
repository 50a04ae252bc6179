// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds lipgloss colors and styles for the terminal UI.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	TimerDisplay lipgloss.Style
	Box          lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}

// NewTheme creates the night-sky theme used across sleepywhale TUIs.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color("#0a0e1a"),
		Surface:    lipgloss.Color("#111831"),
		Text:       lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7394"),
		Accent:     lipgloss.Color("#7c9eff"),
		Border:     lipgloss.Color("#2a3558"),
		Error:      lipgloss.Color("#ff6b6b"),
		Warning:    lipgloss.Color("#f9a825"),
		Success:    lipgloss.Color("#6ee7a0"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	t.ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.TimerDisplay = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 2)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.HelpKey = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)

	return t
}

// StatusStyle maps a status severity string to its style.
func (t *Theme) StatusStyle(severity string) lipgloss.Style {
	switch severity {
	case "warning":
		return t.WarningStyle
	case "running":
		return t.SuccessStyle
	default:
		return t.Subtle
	}
}
