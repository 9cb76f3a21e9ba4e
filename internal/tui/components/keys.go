package components

import "github.com/charmbracelet/bubbles/key"

// GridKeyMap defines key bindings for grid navigation
type GridKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding
	Filter key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// DefaultGridKeyMap returns the default grid key bindings
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
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
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// OmnibarKeyMap defines key bindings for the jump omnibar
type OmnibarKeyMap struct {
	Escape key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultOmnibarKeyMap returns the default omnibar key bindings
func DefaultOmnibarKeyMap() OmnibarKeyMap {
	return OmnibarKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next"),
		),
	}
}

// Package-level key map instances
var (
	GridKeys    = DefaultGridKeyMap()
	OmnibarKeys = DefaultOmnibarKeyMap()
)
