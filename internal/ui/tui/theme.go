package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Cursor   lipgloss.Style

	// Trend tones: biological favors down, financial favors up.
	Good    lipgloss.Style
	Bad     lipgloss.Style
	Neutral lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label:   lipgloss.NewStyle().Bold(true),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Good:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Neutral: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
