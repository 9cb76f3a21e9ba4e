package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mosaicgrid/mosaic/internal/domain"
	"github.com/mosaicgrid/mosaic/internal/layout"
	"github.com/mosaicgrid/mosaic/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the grid viewport
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Fallback row height estimate when no mode pins one, used only for
	// scroll window sizing
	DefaultCellHeight = 5
)

// Cell describes the slot handed to an ItemBuilder. Width and Height are the
// full outer dimensions the rendered string must fit; HeightKnown is false
// when the grid lets the builder pick its own height. Columns is the grid's
// column count, Span how many of those columns this cell covers.
type Cell struct {
	Width       int
	Height      int
	HeightKnown bool
	Columns     int
	Span        int
	Highlighted bool
}

// ItemBuilder renders one item into its cell
type ItemBuilder func(item domain.Item, cell Cell) string

// Grid arranges items into sized rows and handles cursor navigation and
// filtering over them.
type Grid struct {
	items   []domain.Item
	builder ItemBuilder

	sizing    layout.ColumnSizing
	rowMode   layout.RowHeightMode
	rowHeight int
	traits    layout.Traits

	placer     *layout.Placer
	rowHeights *layout.RowHeights
	cursor     layout.Cursor
	result     layout.Result

	width   int
	height  int
	scroll  int
	focused bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into original slice
}

// NewGrid creates a grid with the given sizing strategy and item renderer
func NewGrid(sizing layout.ColumnSizing, builder ItemBuilder) Grid {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return Grid{
		sizing:      sizing,
		builder:     builder,
		traits:      layout.DefaultTraits(),
		rowHeights:  layout.NewRowHeights(),
		placer:      layout.NewPlacer(nil, 1),
		filterInput: ti,
	}
}

// SetItems replaces the item collection
func (g *Grid) SetItems(items []domain.Item) {
	g.items = items
	g.cursor.Clear()
	g.scroll = 0
	g.clearFilter()
	g.rowHeights.Reset()
	g.rebuildPlacement()
}

// SetSizing swaps the column sizing strategy
func (g *Grid) SetSizing(sizing layout.ColumnSizing) {
	g.sizing = sizing
	g.refreshGeometry()
}

// SetTraits updates the sizing environment. Cached row heights are not
// dropped here; the caller follows up with InvalidateCaches once the new
// geometry has settled.
func (g *Grid) SetTraits(tr layout.Traits) {
	g.traits = tr
	g.refreshGeometry()
}

// Traits returns the current sizing environment
func (g Grid) Traits() layout.Traits {
	return g.traits
}

// SetRowMode sets the row height mode
func (g *Grid) SetRowMode(mode layout.RowHeightMode) {
	g.rowMode = mode
	g.rowHeights.Reset()
}

// RowMode returns the active row height mode
func (g Grid) RowMode() layout.RowHeightMode {
	return g.rowMode
}

// SetFixedRowHeight sets the outer cell height used by the fixed mode
func (g *Grid) SetFixedRowHeight(h int) {
	g.rowHeight = h
}

// SetSize updates the component dimensions and recomputes columns
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.refreshGeometry()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
	g.cursor.SetEnabled(focused)
}

// IsFocused returns the focus state
func (g Grid) IsFocused() bool {
	return g.focused
}

// Columns returns the most recent sizing result
func (g Grid) Columns() layout.Result {
	return g.result
}

// InvalidateCaches drops measured row heights that no longer match the
// current column count or size category. It runs on the invalidation
// message that follows a resize, not inside SetSize itself, so a burst of
// resizes settles before caches are rebuilt.
func (g *Grid) InvalidateCaches() {
	g.rowHeights.Sync(g.result.Columns, g.traits.Category)
}

// refreshGeometry recomputes the sizing result for the current width and
// re-places items when the column count changed.
func (g *Grid) refreshGeometry() {
	interior := g.width - BorderWidth
	res := g.sizing.Calculate(interior, g.traits)
	changed := res.Columns != g.result.Columns
	g.result = res
	if changed {
		g.placer.SetColumns(res.Columns)
		g.ensureVisible()
	}
}

// rebuildPlacement rebuilds the placer over the currently visible items
func (g *Grid) rebuildPlacement() {
	visible := g.visibleItems()
	sizes := make([]layout.Size, len(visible))
	for i, it := range visible {
		sizes[i] = it.LayoutSize()
	}
	cols := g.result.Columns
	if cols < 1 {
		cols = 1
	}
	g.placer = layout.NewPlacer(sizes, cols)
	g.cursor.Clamp(len(visible))
	g.ensureVisible()
}

// visibleItems returns the items after filtering
func (g Grid) visibleItems() []domain.Item {
	if g.filteredIdx == nil {
		return g.items
	}
	out := make([]domain.Item, len(g.filteredIdx))
	for i, idx := range g.filteredIdx {
		out[i] = g.items[idx]
	}
	return out
}

func (g Grid) itemCount() int {
	if g.filteredIdx != nil {
		return len(g.filteredIdx)
	}
	return len(g.items)
}

// mapIndex maps a cursor position to the index in the original slice
func (g Grid) mapIndex(i int) int {
	if g.filteredIdx != nil && i < len(g.filteredIdx) {
		return g.filteredIdx[i]
	}
	return i
}

// SelectedItem returns the item under the cursor, or nil
func (g Grid) SelectedItem() domain.Item {
	i, ok := g.cursor.Index()
	if !ok || i >= g.itemCount() {
		return nil
	}
	return g.items[g.mapIndex(i)]
}

// SelectedIndex returns the cursor position in the original slice
func (g Grid) SelectedIndex() (int, bool) {
	i, ok := g.cursor.Index()
	if !ok || i >= g.itemCount() {
		return 0, false
	}
	return g.mapIndex(i), true
}

// Select moves the cursor to the given position in the visible ordering
func (g *Grid) Select(i int) {
	g.cursor.Select(i, g.itemCount())
	g.ensureVisible()
}

// SelectByID moves the cursor to the item with the given ID. Returns false
// when no visible item matches.
func (g *Grid) SelectByID(id string) bool {
	for i, it := range g.visibleItems() {
		if it.GetID() == id {
			g.Select(i)
			return true
		}
	}
	return false
}

// IsEmpty returns true if there are no visible items
func (g Grid) IsEmpty() bool {
	return g.itemCount() == 0
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
}

// IsFiltering returns true if filter mode is active
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (g *Grid) ClearFilter() {
	g.clearFilter()
	g.rowHeights.Reset()
	g.rebuildPlacement()
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filteredIdx = nil
	g.filterInput.SetValue("")
	g.filterInput.Blur()
}

// applyFilter filters items based on the current query
func (g *Grid) applyFilter() {
	query := g.filterInput.Value()
	g.filterQuery = query

	if query == "" {
		g.filteredIdx = nil
	} else {
		lowerTitles := make([]string, len(g.items))
		for i, it := range g.items {
			lowerTitles[i] = strings.ToLower(it.GetTitle())
		}

		matches := fuzzy.Find(strings.ToLower(query), lowerTitles)
		g.filteredIdx = make([]int, len(matches))
		for i, match := range matches {
			g.filteredIdx[i] = match.Index
		}
	}

	g.cursor.Clear()
	g.scroll = 0
	g.rowHeights.Reset()
	g.rebuildPlacement()
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	// Typing mode: route everything to the filter input
	if g.filterActive && g.filterInput.Focused() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, GridKeys.Cancel):
				g.ClearFilter()
				return g, nil
			case key.Matches(keyMsg, GridKeys.Accept):
				g.filterInput.Blur()
				return g, nil
			}
			if keyMsg.String() == "backspace" && g.filterInput.Value() == "" {
				g.ClearFilter()
				return g, nil
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd
	}

	// Navigation mode with filter results still applied
	if g.filterActive {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, GridKeys.Cancel):
				g.ClearFilter()
				return g, nil
			case key.Matches(keyMsg, GridKeys.Filter):
				g.filterInput.Focus()
				return g, nil
			}
		}
	}

	count := g.itemCount()
	if count == 0 {
		return g, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		cols := g.result.Columns
		switch {
		case key.Matches(keyMsg, GridKeys.Filter):
			g.ToggleFilter()
		case key.Matches(keyMsg, GridKeys.Up):
			g.cursor.Move(layout.DirUp, cols, count)
			g.ensureVisible()
		case key.Matches(keyMsg, GridKeys.Down):
			g.cursor.Move(layout.DirDown, cols, count)
			g.ensureVisible()
		case key.Matches(keyMsg, GridKeys.Left):
			g.cursor.Move(layout.DirLeft, cols, count)
			g.ensureVisible()
		case key.Matches(keyMsg, GridKeys.Right):
			g.cursor.Move(layout.DirRight, cols, count)
			g.ensureVisible()
		case key.Matches(keyMsg, GridKeys.Home):
			g.cursor.Select(0, count)
			g.scroll = 0
		case key.Matches(keyMsg, GridKeys.End):
			g.cursor.Select(count-1, count)
			g.ensureVisible()
		}
	}

	return g, nil
}

// ensureVisible keeps the cursor's row inside the scroll window
func (g *Grid) ensureVisible() {
	i, ok := g.cursor.Index()
	if !ok {
		return
	}
	row := g.placer.RowOffset(i)
	maxRows := g.visibleRows()
	if row < g.scroll {
		g.scroll = row
	}
	if row >= g.scroll+maxRows {
		g.scroll = row - maxRows + 1
	}
	if g.scroll < 0 {
		g.scroll = 0
	}
}

// visibleRows estimates how many rows fit in the viewport
func (g Grid) visibleRows() int {
	interior := g.height - BorderHeight - ScrollIndicatorLines
	if g.filterActive {
		interior--
	}
	est := g.rowEstimate()
	rows := interior / est
	if rows < 1 {
		rows = 1
	}
	return rows
}

// rowEstimate returns the nominal outer height of one row
func (g Grid) rowEstimate() int {
	switch g.rowMode {
	case layout.RowHeightFixed:
		if g.rowHeight > 0 {
			return g.rowHeight
		}
	case layout.RowHeightSquare:
		if g.result.TileWidth > 0 {
			return g.result.TileWidth
		}
	}
	return DefaultCellHeight
}

// cellFor builds the Cell metadata for the item at visible position i
func (g Grid) cellFor(i, row int, highlighted bool) Cell {
	span := g.placer.Span(i)
	cell := Cell{
		Width:       span*g.result.TileWidth + (span-1)*g.result.Gutter,
		Columns:     g.result.Columns,
		Span:        span,
		Highlighted: highlighted,
	}

	switch g.rowMode {
	case layout.RowHeightFixed:
		cell.Height = g.rowHeight
		cell.HeightKnown = g.rowHeight > 0
	case layout.RowHeightSquare:
		cell.Height = g.result.TileWidth
		cell.HeightKnown = cell.Height > 0
	case layout.RowHeightLargest:
		// Single column behaves like the free mode: aligning one cell to
		// itself only pins stale heights.
		if g.result.Columns > 1 {
			if h, ok := g.rowHeights.Height(row); ok {
				cell.Height = h
				cell.HeightKnown = true
			}
		}
	}
	return cell
}

// View renders the component
func (g Grid) View() string {
	style := styles.InactiveBorder
	if g.focused {
		style = styles.ActiveBorder
	}

	content := g.renderGrid()

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(g.width - frameW).
		Height(g.height - frameH).
		Render(content)
}

// renderGrid renders the visible row window
func (g Grid) renderGrid() string {
	count := g.itemCount()
	if count == 0 || g.result.Columns < 1 || g.result.TileWidth < 1 {
		emptyMsg := styles.DimStyle.Render("No items")
		if g.filterActive && g.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		return emptyMsg
	}

	visible := g.visibleItems()
	cursorIdx := -1
	if i, ok := g.cursor.Index(); ok {
		cursorIdx = i
	}

	totalRows := g.placer.Rows()
	maxRows := g.visibleRows()
	start := g.scroll
	if start > totalRows-1 {
		start = totalRows - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + maxRows
	if end > totalRows {
		end = totalRows
	}

	var rows []string
	for row := start; row < end; row++ {
		rows = append(rows, g.renderRow(visible, row, cursorIdx))
	}

	header := " "
	if start > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < totalRows {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := header + "\n" + strings.Join(rows, "\n") + "\n" + footer
	if g.filterActive {
		content += "\n" + g.renderFilterBar()
	}
	return content
}

// renderRow renders the cells that start on the given row, padding the
// leading columns that a spanning item skipped over.
func (g Grid) renderRow(visible []domain.Item, row, cursorIdx int) string {
	gutter := strings.Repeat(" ", g.result.Gutter)

	// Snapshot cell metadata for the whole row first, so every cell in the
	// row sees the same pre-pass height regardless of render order.
	type slot struct {
		item int
		cell Cell
	}
	var slots []slot
	for i := range visible {
		if g.placer.RowOffset(i) == row {
			slots = append(slots, slot{item: i, cell: g.cellFor(i, row, i == cursorIdx)})
		}
	}

	var cells []string
	col := 0
	for _, s := range slots {
		startCol := g.placer.SpanIndex(s.item) % g.result.Columns
		if startCol > col {
			cells = append(cells, g.blankCell(startCol-col))
		}
		rendered := g.builder(visible[s.item], s.cell)
		if g.rowMode == layout.RowHeightLargest && g.result.Columns > 1 {
			g.rowHeights.Report(row, lipgloss.Height(rendered))
		}
		cells = append(cells, rendered)
		col = startCol + g.placer.Span(s.item)
	}

	if len(cells) == 0 {
		return ""
	}

	joined := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			joined = append(joined, gutter)
		}
		joined = append(joined, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

// blankCell renders an empty slot spanning the given number of columns
func (g Grid) blankCell(span int) string {
	w := span*g.result.TileWidth + (span-1)*g.result.Gutter
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}

// renderFilterBar renders the filter input bar
func (g Grid) renderFilterBar() string {
	input := g.filterInput.View()

	countStr := ""
	if g.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", g.itemCount(), len(g.items)))
	}

	return input + countStr
}
