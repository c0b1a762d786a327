package presentation

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#E8A87C") // warm orange
	successColor = lipgloss.Color("#85DCB0") // mint green
	warningColor = lipgloss.Color("#F6AE2D") // amber
	dimTextColor = lipgloss.Color("#9CA3AF")

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Width(14)

	statValueStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)
)
