package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Price    lipgloss.Style
	Strike   lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Total    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Strike:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
