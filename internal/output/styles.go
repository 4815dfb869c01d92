package output

import "github.com/charmbracelet/lipgloss"

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	unitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// paint applies style only when colour output is enabled.
func paint(style lipgloss.Style, s string, colorEnabled bool) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}
