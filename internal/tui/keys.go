package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the preview
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Filter  key.Binding
	Confirm key.Binding
	Skip    key.Binding
	Abort   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "render"),
		),
		Skip: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "skip"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Confirm, k.Skip}
}

// FullHelp returns key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.Confirm, k.Skip},
	}
}
