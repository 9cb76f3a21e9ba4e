package tui

import "github.com/mosaicgrid/mosaic/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CardsLoadedMsg signals that the card collection has been loaded
type CardsLoadedMsg struct {
	Cards []domain.Card
}

// GridInvalidateMsg tells the grid to drop stale caches. It trails the
// resize (or trait change) that made them stale rather than being folded
// into it.
type GridInvalidateMsg struct {
	Width int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
