package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#3B82F6") // Blue
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorBorder    = lipgloss.Color("#374151") // Dark gray
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(colorBorder).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	detailsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				MarginBottom(1)

	detailsLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	scaledStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
