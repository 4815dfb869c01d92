package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranshuparmar/ps2gv/internal/graph"
)

// Model previews the nodes of one generated graph before it is rendered.
type Model struct {
	title    string
	nodes    []graph.Node
	filtered []graph.Node

	table   table.Model
	input   textinput.Model
	details viewport.Model
	help    help.Model
	keys    KeyMap

	width     int
	height    int
	confirmed bool
	quitting  bool
}

var columns = []table.Column{
	{Title: "PID", Width: 8},
	{Title: "Command", Width: 16},
	{Title: "Unit", Width: 22},
	{Title: "Colour", Width: 14},
	{Title: "CPU%", Width: 6},
	{Title: "RSS", Width: 9},
	{Title: "Scaled", Width: 6},
}

// New builds a preview over the nodes of d.
func New(title string, d *graph.Description) Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "pid, command or unit"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = "/ "
	ti.PromptStyle = promptStyle
	ti.Blur()

	m := Model{
		title:   title,
		nodes:   d.Nodes(),
		table:   t,
		input:   ti,
		details: viewport.New(40, 20),
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
	m.applyFilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user asked for the graph to be rendered.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// applyFilter rebuilds the table rows from the current filter text.
func (m *Model) applyFilter() {
	filter := strings.ToLower(strings.TrimSpace(m.input.Value()))

	m.filtered = nil
	var rows []table.Row
	for _, n := range m.nodes {
		if filter != "" && !matches(n, filter) {
			continue
		}
		m.filtered = append(m.filtered, n)
		rows = append(rows, nodeRow(n))
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c < 0 || c >= len(rows) {
		m.table.SetCursor(0)
	}
	m.updateDetails()
}

func matches(n graph.Node, filter string) bool {
	return strings.Contains(n.ID, filter) ||
		strings.Contains(strings.ToLower(n.Record.Command), filter) ||
		strings.Contains(strings.ToLower(n.Record.Unit), filter)
}

func nodeRow(n graph.Node) table.Row {
	scaled := ""
	if n.Sized {
		scaled = "yes"
	}
	return table.Row{
		n.ID,
		graph.BaseName(n.Record.Command),
		n.Record.Unit,
		n.FillColor,
		n.Record.PCPU,
		n.Record.RSS,
		scaled,
	}
}

// current returns the node under the cursor, or nil when nothing is listed.
func (m Model) current() *graph.Node {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.filtered) {
		return nil
	}
	return &m.filtered[i]
}

func (m Model) status() string {
	return fmt.Sprintf("%d of %d nodes", len(m.filtered), len(m.nodes))
}
