package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mosaicgrid/mosaic/internal/domain"
	"github.com/mosaicgrid/mosaic/internal/tui/components"
	"github.com/mosaicgrid/mosaic/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.Grid.View(),
		m.renderFooter(),
	)

	if m.Omnibar.IsVisible() {
		view = m.Omnibar.View()
	}

	return view
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(m.StatusMsg)
		}
		return styles.AccentStyle.Render(m.StatusMsg)
	}

	tr := m.Grid.Traits()
	res := m.Grid.Columns()
	left := styles.DimStyle.Render(fmt.Sprintf(
		"%d cols · %s · %s · %s rows",
		res.Columns, tr.Category, tr.Class, m.Grid.RowMode(),
	))
	right := styles.DimStyle.Render("? help · q quit")

	pad := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderHelp renders the full-screen help view
func (m Model) renderHelp() string {
	bindings := []key.Binding{
		Keys.Up, Keys.Down, Keys.Left, Keys.Right,
		Keys.Home, Keys.End,
		Keys.Filter, Keys.Jump,
		Keys.CategoryUp, Keys.CategoryDown,
		Keys.ToggleClass, Keys.RowMode,
		Keys.Help, Keys.Quit,
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, binding := range bindings {
		h := binding.Help()
		b.WriteString(styles.HelpKeyStyle.Render(fmt.Sprintf("%8s", h.Key)))
		b.WriteString("  ")
		b.WriteString(styles.HelpDescStyle.Render(h.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("esc to return"))

	return lipgloss.Place(
		m.Width,
		m.Height,
		lipgloss.Center,
		lipgloss.Center,
		b.String(),
	)
}

// CardBuilder is the default item renderer: a bordered card with title,
// badge, and word-wrapped body, sized to the cell it is given.
func CardBuilder(item domain.Item, cell components.Cell) string {
	border := styles.InactiveBorder
	if cell.Highlighted {
		border = styles.ActiveBorder
	}
	frameW, frameH := border.GetFrameSize()

	inner := cell.Width - frameW
	if inner < 1 {
		inner = 1
	}

	title := styles.Truncate(item.GetTitle(), inner)
	header := styles.TitleStyle.Render(title)

	var body, badge string
	if card, ok := item.(domain.Card); ok {
		body = card.Body
		badge = card.Badge
	}
	if badge != "" {
		badgeStr := styles.BadgeStyle.Render(badge)
		if lipgloss.Width(header)+lipgloss.Width(badgeStr)+1 <= inner {
			header += " " + badgeStr
		}
	}

	lines := []string{header}
	if body != "" {
		wrapped := wordWrap(body, inner)
		lines = append(lines, styles.SubtitleStyle.Render(wrapped))
	}
	content := strings.Join(lines, "\n")

	st := border.Width(inner)
	if cell.HeightKnown {
		innerH := cell.Height - frameH
		if innerH < 1 {
			innerH = 1
		}
		content = clampLines(content, innerH)
		st = st.Height(innerH)
	}
	return st.Render(content)
}

// clampLines truncates content to at most n lines
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// wordWrap wraps text at word boundaries to fit the given width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := len(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
