package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/pranshuparmar/ps2gv/internal/graph"
)

// ErrNoTerminal is returned by Preview when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("preview needs an interactive terminal")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Preview shows the nodes of d and blocks until the user confirms or skips.
// It reports whether the graph should be rendered.
func Preview(title string, d *graph.Description) (bool, error) {
	if !isTerminal() {
		return false, ErrNoTerminal
	}
	p := tea.NewProgram(New(title, d), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running preview: %w", err)
	}
	m, ok := final.(Model)
	return ok && m.Confirmed(), nil
}
