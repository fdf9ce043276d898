package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/paddyterm/internal/pane"
)

// keyMap defines the browser's key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Focus   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Focus, k.Quit},
	}
}

// hints renders the short help as plain text. The footer applies its own
// style, so the help styling is stripped.
func (k keyMap) hints() string {
	return ansi.Strip(help.New().ShortHelpView(k.ShortHelp()))
}

// paneKey maps a key press to a navigation key.
func (k keyMap) paneKey(msg tea.KeyMsg) (pane.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return pane.KeyUp, true
	case key.Matches(msg, k.Down):
		return pane.KeyDown, true
	case key.Matches(msg, k.Left):
		return pane.KeyLeft, true
	case key.Matches(msg, k.Right):
		return pane.KeyRight, true
	case key.Matches(msg, k.Confirm):
		return pane.KeyConfirm, true
	}
	return 0, false
}
