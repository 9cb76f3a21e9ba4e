package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mosaicgrid/mosaic/internal/gallery"
)

// Command factories for async operations

// LoadCardsCmd loads the card collection
func LoadCardsCmd(svc *gallery.Service) tea.Cmd {
	return func() tea.Msg {
		return CardsLoadedMsg{Cards: svc.Cards()}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
