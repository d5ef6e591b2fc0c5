package ui

import "github.com/charmbracelet/lipgloss"

var (
	hnOrange = lipgloss.Color("#FF6600")

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(hnOrange)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#828282"))

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))
)
