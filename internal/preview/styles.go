package preview

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	cyan     = lipgloss.Color("#00FFFF")
	dimWhite = lipgloss.Color("#808080")
)

// Styles
var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cyan).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimWhite)
)
