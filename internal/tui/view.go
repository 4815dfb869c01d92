package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("ps2gv preview: " + m.title))
	sb.WriteString("  ")
	sb.WriteString(emptyStyle.Render(m.status()))
	sb.WriteString("\n")

	tablePanel := panelStyle.Render(m.table.View())
	detailsPanel := panelStyle.Render(m.details.View())
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tablePanel, detailsPanel))
	sb.WriteString("\n")

	if m.input.Focused() || m.input.Value() != "" {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
