package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding

	// Actions
	Quit         key.Binding
	Help         key.Binding
	Escape       key.Binding
	Filter       key.Binding
	Jump         key.Binding
	CategoryUp   key.Binding
	CategoryDown key.Binding
	ToggleClass  key.Binding
	RowMode      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to start"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to end"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Jump: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "jump to item"),
		),
		CategoryUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "larger text"),
		),
		CategoryDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "smaller text"),
		),
		ToggleClass: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle compact"),
		),
		RowMode: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "cycle row height mode"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
