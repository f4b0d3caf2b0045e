// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the main view and the sheet.
type KeyMap struct {
	// Direct open
	OpenOne   key.Binding
	OpenTwo   key.Binding
	OpenThree key.Binding

	// Button focus
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding

	// Sheet
	Close   key.Binding
	Dismiss key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		OpenOne: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "screen 1"),
		),
		OpenTwo: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "screen 2"),
		),
		OpenThree: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "screen 3"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "right", "j", "l"),
			key.WithHelp("tab", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "left", "k", "h"),
			key.WithHelp("shift+tab", "prev button"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close sheet"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenOne, k.OpenTwo, k.OpenThree},
		{k.Next, k.Prev, k.Activate},
		{k.Close, k.Dismiss},
		{k.Help, k.Quit},
	}
}
