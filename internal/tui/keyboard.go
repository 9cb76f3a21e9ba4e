package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mosaicgrid/mosaic/internal/layout"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle state-specific keys
	if m.State == StateHelp {
		switch {
		case key.Matches(msg, Keys.Escape), key.Matches(msg, Keys.Help):
			m.State = StateBrowsing
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	// Handle omnibar if visible
	if m.Omnibar.IsVisible() {
		var cmd tea.Cmd
		var selected bool
		m.Omnibar, cmd, selected = m.Omnibar.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		if m.Omnibar.QueryChanged() {
			m.Omnibar.SetResults(rankCards(m.Omnibar.Query(), m.Cards))
		}

		if selected {
			if result := m.Omnibar.SelectedResult(); result != nil {
				m.Omnibar.Hide()
				m.Grid.ClearFilter()
				m.Grid.SelectByID(m.Cards[result.Index].ID)
			}
		}
		return m, tea.Batch(cmds...)
	}

	// Handle filter typing mode
	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Jump):
		m.Omnibar.Show()
		m.Omnibar.SetSize(m.Width, m.Height)
		m.Omnibar.SetResults(rankCards("", m.Cards))
		return m, m.Omnibar.Init()

	case key.Matches(msg, Keys.CategoryUp):
		tr := m.Grid.Traits()
		tr.Category = tr.Category.Larger()
		return m.applyTraits(tr)

	case key.Matches(msg, Keys.CategoryDown):
		tr := m.Grid.Traits()
		tr.Category = tr.Category.Smaller()
		return m.applyTraits(tr)

	case key.Matches(msg, Keys.ToggleClass):
		tr := m.Grid.Traits()
		if tr.Class == layout.ClassRegular {
			tr.Class = layout.ClassCompact
		} else {
			tr.Class = layout.ClassRegular
		}
		return m.applyTraits(tr)

	case key.Matches(msg, Keys.RowMode):
		mode := nextRowMode(m.Grid.RowMode())
		m.Grid.SetRowMode(mode)
		m.StatusMsg = "Row height: " + mode.String()
		return m, ClearStatusCmd(2 * time.Second)
	}

	// Let the grid handle remaining keys (navigation, filter)
	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// applyTraits pushes new traits into the grid and schedules the follow-up
// cache invalidation, same as a resize would.
func (m Model) applyTraits(tr layout.Traits) (tea.Model, tea.Cmd) {
	m.Grid.SetTraits(tr)
	m.notifier.Publish(m.Width)
	m.StatusMsg = fmt.Sprintf("Size: %s / %s", tr.Category, tr.Class)
	return m, ClearStatusCmd(2 * time.Second)
}

// nextRowMode cycles through the row height modes
func nextRowMode(mode layout.RowHeightMode) layout.RowHeightMode {
	switch mode {
	case layout.RowHeightNone:
		return layout.RowHeightFixed
	case layout.RowHeightFixed:
		return layout.RowHeightSquare
	case layout.RowHeightSquare:
		return layout.RowHeightLargest
	default:
		return layout.RowHeightNone
	}
}
