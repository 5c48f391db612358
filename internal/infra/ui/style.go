package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)
