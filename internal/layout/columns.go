package layout

// Result holds the geometry computed by a ColumnSizing strategy for one
// layout pass. All dimensions are terminal cells.
type Result struct {
	Columns   int // number of columns, always >= 1
	TileWidth int // width of a single-span tile
	Gutter    int // spacing between adjacent tiles
}

// GridWidth returns the total width consumed by the grid
func (r Result) GridWidth() int {
	return r.Columns*r.TileWidth + (r.Columns-1)*r.Gutter
}

// ColumnSizing derives a column count and tile geometry from the available
// width and the current traits. Implementations are pure: degenerate inputs
// degrade to a single column rather than erroring.
type ColumnSizing interface {
	Calculate(width int, tr Traits) Result
}

// FixedColumns always lays out the same number of columns, splitting the
// available width between them.
type FixedColumns struct {
	Columns int
	Gutter  int
}

// Calculate implements ColumnSizing
func (f FixedColumns) Calculate(width int, _ Traits) Result {
	cols := f.Columns
	if cols < 1 {
		cols = 1
	}
	gutter := f.Gutter
	if gutter < 0 {
		gutter = 0
	}
	tile := (width - (cols-1)*gutter) / cols
	if tile < 1 {
		// Not even a one-cell tile per column: degrade to a single
		// column rather than overflowing the width with gutters.
		tile = width
		if tile < 0 {
			tile = 0
		}
		return Result{Columns: 1, TileWidth: tile, Gutter: gutter}
	}
	return Result{Columns: cols, TileWidth: tile, Gutter: gutter}
}

// DynamicColumns packs as many columns as the minimum tile width allows,
// then grows the tile into the leftover space up to the maximum.
type DynamicColumns struct {
	MinTileWidth  int
	MaxTileWidth  int
	GutterRegular int
	GutterCompact int
	MaxGridWidth  int // 0 = unbounded
}

// Calculate implements ColumnSizing. The content-size category widens the
// minimum tile before the column-count search, so larger categories settle
// on fewer, larger columns.
func (d DynamicColumns) Calculate(width int, tr Traits) Result {
	gutter := d.GutterRegular
	if tr.Class == ClassCompact {
		gutter = d.GutterCompact
	}
	if gutter < 0 {
		gutter = 0
	}

	minTile := d.MinTileWidth * tr.Category.scale() / 100
	if minTile < 1 {
		minTile = 1
	}
	maxTile := d.MaxTileWidth
	if maxTile < minTile {
		maxTile = minTile
	}

	usable := width
	if d.MaxGridWidth > 0 && usable > d.MaxGridWidth {
		usable = d.MaxGridWidth
	}

	// Even one column doesn't fit: take the whole width.
	if usable < minTile {
		w := width
		if w < 0 {
			w = 0
		}
		return Result{Columns: 1, TileWidth: w, Gutter: gutter}
	}

	// Largest c with c*minTile + (c-1)*gutter <= usable.
	cols := (usable + gutter) / (minTile + gutter)

	tile := (usable - (cols-1)*gutter) / cols
	if tile > maxTile {
		tile = maxTile
	}

	return Result{Columns: cols, TileWidth: tile, Gutter: gutter}
}
