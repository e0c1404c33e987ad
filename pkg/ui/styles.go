package ui

import "github.com/charmbracelet/lipgloss"

// Color palette, Dracula-inspired.
var (
	ColorBg        = lipgloss.Color("#282A36")
	ColorHighlight = lipgloss.Color("#44475A")
	ColorText      = lipgloss.Color("#F8F8F2")
	ColorSubtext   = lipgloss.Color("#BFBFBF")
	ColorMuted     = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	cellStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorHighlight).
				Bold(true)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)
