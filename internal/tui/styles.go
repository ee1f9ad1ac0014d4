package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles shared by the TUI views
type Styles struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Status lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles returns the standard style set
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
