package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}
	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.input.Focused() {
		return m.handleFilterInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Skip):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		m.input.Focus()
		return m, textinput.Blink
	}

	prev := m.table.Cursor()
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != prev {
		m.updateDetails()
	}
	return m, cmd
}

// handleFilterInput edits the filter; enter keeps it and esc clears it.
func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.input.Blur()
		return m, nil
	case "esc":
		m.input.SetValue("")
		m.input.Blur()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.table.SetCursor(0)
	m.applyFilter()
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// Border and padding of both panels plus a small gap.
	available := max(width-8, 20)
	tableWidth := int(float64(available) * 0.65)
	detailsWidth := available - tableWidth

	contentHeight := max(height-7, 5)

	cols := make([]table.Column, len(columns))
	copy(cols, columns)
	fixed := 0
	for _, c := range cols {
		if c.Title != "Unit" {
			fixed += c.Width
		}
	}
	// Unit names are the widest column, so it takes whatever is left.
	for i := range cols {
		if cols[i].Title == "Unit" {
			cols[i].Width = max(tableWidth-fixed-len(cols)*2, 10)
		}
	}
	m.table.SetColumns(cols)
	m.table.SetWidth(tableWidth)
	m.table.SetHeight(contentHeight)

	m.details.Width = detailsWidth
	m.details.Height = contentHeight - 2
	m.help.Width = width
	m.updateDetails()
}
