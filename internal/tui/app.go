package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mosaicgrid/mosaic/internal/domain"
	"github.com/mosaicgrid/mosaic/internal/gallery"
	"github.com/mosaicgrid/mosaic/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Vertical layout: single footer line
const ChromeHeight = 1

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	GallerySvc *gallery.Service

	// UI components
	Grid    components.Grid
	Omnibar components.Omnibar

	// Data
	Cards []domain.Card

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	notifier *ResizeNotifier
}

// NewModel creates a new application model
func NewModel(gallerySvc *gallery.Service, grid components.Grid) Model {
	grid.SetFocused(true)
	return Model{
		State:      StateBrowsing,
		GallerySvc: gallerySvc,
		Grid:       grid,
		Omnibar:    components.NewOmnibar(),
		notifier:   NewResizeNotifier(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCardsCmd(m.GallerySvc),
		m.notifier.NextCmd(),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Grid.SetSize(msg.Width, msg.Height-ChromeHeight)
		m.Omnibar.SetSize(msg.Width, msg.Height)
		m.notifier.Publish(msg.Width)
		return m, nil

	case GridInvalidateMsg:
		m.Grid.InvalidateCaches()
		// Re-arm for the next resize burst
		return m, m.notifier.NextCmd()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case CardsLoadedMsg:
		m.Cards = msg.Cards
		m.Grid.SetItems(domain.Items(msg.Cards))
		return m, nil

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Non-key messages still reach the omnibar (cursor blink ticks)
	if m.Omnibar.IsVisible() {
		var cmd tea.Cmd
		m.Omnibar, cmd, _ = m.Omnibar.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}
