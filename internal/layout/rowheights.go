package layout

import "strings"

// RowHeightMode selects how cells in a row agree on a height.
type RowHeightMode int

const (
	// RowHeightNone leaves every cell at its intrinsic height.
	RowHeightNone RowHeightMode = iota
	// RowHeightFixed forces a caller-supplied constant.
	RowHeightFixed
	// RowHeightSquare forces row height to the tile width.
	RowHeightSquare
	// RowHeightLargest aligns every cell to the tallest measured cell in
	// its row, via the RowHeights aggregator.
	RowHeightLargest
)

// String returns a human-readable name for the mode
func (m RowHeightMode) String() string {
	switch m {
	case RowHeightFixed:
		return "fixed"
	case RowHeightSquare:
		return "square"
	case RowHeightLargest:
		return "largest"
	default:
		return "none"
	}
}

// ParseRowHeightMode converts a config string to a RowHeightMode
func ParseRowHeightMode(s string) RowHeightMode {
	switch strings.ToLower(s) {
	case "fixed":
		return RowHeightFixed
	case "square":
		return RowHeightSquare
	case "largest":
		return RowHeightLargest
	default:
		return RowHeightNone
	}
}

// RowHeights accumulates measured cell heights per row and answers with the
// row maximum. The cache is valid for exactly one column-count/size-category
// epoch: when either changes, row membership itself has changed, so the
// whole map is discarded rather than corrected incrementally.
type RowHeights struct {
	heights  map[int]int
	columns  int
	category SizeCategory
}

// NewRowHeights creates an empty aggregator
func NewRowHeights() *RowHeights {
	return &RowHeights{heights: make(map[int]int)}
}

// Sync resets the cache if the column count or size category moved to a new
// epoch. Reporting and reading within one epoch are unaffected.
func (r *RowHeights) Sync(columns int, category SizeCategory) {
	if r.columns == columns && r.category == category {
		return
	}
	r.columns = columns
	r.category = category
	r.Reset()
}

// Report records a measured height for a row, keeping the maximum
func (r *RowHeights) Report(row, height int) {
	if row < 0 || height <= 0 {
		return
	}
	if height > r.heights[row] {
		r.heights[row] = height
	}
}

// Height returns the tallest reported height for a row, if any cell in that
// row has reported since the last reset.
func (r *RowHeights) Height(row int) (int, bool) {
	h, ok := r.heights[row]
	return h, ok
}

// Reset discards every reported height
func (r *RowHeights) Reset() {
	clear(r.heights)
}

// Len returns the number of rows with a reported height
func (r *RowHeights) Len() int {
	return len(r.heights)
}
