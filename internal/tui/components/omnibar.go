package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mosaicgrid/mosaic/internal/tui/styles"
)

// JumpResult is one omnibar match: the item's position in the grid plus the
// text shown in the result list.
type JumpResult struct {
	Index int
	Title string
	Badge string
}

// Omnibar is the jump-to-item modal component
type Omnibar struct {
	input     textinput.Model
	results   []JumpResult
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string // Track query changes for real-time ranking
}

// NewOmnibar creates a new omnibar component
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Jump to..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "❯ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{
		input: ti,
	}
}

// Show makes the omnibar visible and focuses the input
func (o *Omnibar) Show() {
	o.visible = true
	o.input.Focus()
	o.input.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetResults sets the ranked results
func (o *Omnibar) SetResults(results []JumpResult) {
	o.results = results
	o.cursor = 0
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = width - 10
}

// Query returns the current query
func (o Omnibar) Query() string {
	return o.input.Value()
}

// QueryChanged returns true if the query changed since last check and updates prevQuery
func (o *Omnibar) QueryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// SelectedResult returns the result under the cursor
func (o Omnibar) SelectedResult() *JumpResult {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor]
}

// Init initializes the component
func (o Omnibar) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. The bool result reports that the user accepted
// the highlighted match.
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, OmnibarKeys.Escape):
			o.Hide()
			return o, nil, false

		case key.Matches(keyMsg, OmnibarKeys.Enter):
			if len(o.results) > 0 {
				return o, nil, true
			}
			return o, nil, false

		case key.Matches(keyMsg, OmnibarKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false

		case key.Matches(keyMsg, OmnibarKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	o.input, cmd = o.input.Update(msg)
	return o, cmd, false
}

// View renders the component centered over the viewport
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := o.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 80 {
		modalWidth = 80
	}
	maxResults := 10

	var b strings.Builder
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	o.renderResults(&b, modalWidth, maxResults)

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(
		o.width,
		o.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

// renderResults renders the ranked match list
func (o Omnibar) renderResults(b *strings.Builder, modalWidth, maxResults int) {
	if len(o.results) == 0 {
		if o.input.Value() != "" {
			b.WriteString(styles.DimStyle.Render("No matches"))
		}
		return
	}

	displayCount := len(o.results)
	if displayCount > maxResults {
		displayCount = maxResults
	}

	for i := 0; i < displayCount; i++ {
		result := o.results[i]

		var line strings.Builder
		if result.Badge != "" {
			line.WriteString(styles.DimBadgeStyle.Render(result.Badge))
			line.WriteString(" ")
		}

		title := styles.Truncate(result.Title, modalWidth-15)
		if i == o.cursor {
			line.WriteString(styles.MatchHighlightSelectedStyle.Render(title))
		} else {
			line.WriteString(styles.SubtitleStyle.Render(title))
		}

		b.WriteString(line.String())
		b.WriteString("\n")
	}

	if len(o.results) > maxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.results)-maxResults)))
	}
}
