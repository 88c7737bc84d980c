package tui

import "github.com/charmbracelet/lipgloss"

// raw hex values shared with the cell canvas, which styles per run
const (
	dimHex    = "#6B7280"
	gridHex   = "#2A3442"
	borderHex = "#243141"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: dimHex, Dark: dimHex}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color(borderHex)

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)
