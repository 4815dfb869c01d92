package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wrap"

	"github.com/pranshuparmar/ps2gv/internal/graph"
)

// updateDetails fills the details viewport with the tooltip of the node
// under the cursor.
func (m *Model) updateDetails() {
	n := m.current()
	if n == nil {
		m.details.SetContent(emptyStyle.Render("No matching processes"))
		return
	}
	content := detailsContent(*n)
	if m.details.Width > 0 {
		content = wrap.String(content, m.details.Width)
	}
	m.details.SetContent(content)
	m.details.GotoTop()
}

func detailsContent(n graph.Node) string {
	var b strings.Builder
	b.WriteString(detailsTitleStyle.Render(graph.BaseName(n.Record.Command)))
	b.WriteString("\n")

	// Tooltips carry DOT newline escapes.
	for _, line := range strings.Split(n.Tooltip, `\n`) {
		line = strings.ReplaceAll(line, `\\`, `\`)
		label, value, ok := strings.Cut(line, ": ")
		if !ok {
			b.WriteString(line + "\n")
			continue
		}
		b.WriteString(detailsLabelStyle.Render(label+":") + " " + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(detailsLabelStyle.Render("Colour:") + " " + n.FillColor + "\n")
	if n.Sized {
		b.WriteString(scaledStyle.Render("Scaled") + " " + fmt.Sprintf("%.2f x %.2f", n.Width, n.Height) + "\n")
	}
	return b.String()
}
