package layout

// Size describes how many columns an item wants, given the column count the
// grid settled on. Items carry their own Size so the grid never needs to
// know item types.
type Size interface {
	Span(columns int) int
}

type singleSize struct{}

func (singleSize) Span(int) int { return 1 }

type fullRowSize struct{}

func (fullRowSize) Span(columns int) int { return columns }

// Single occupies one column.
var Single Size = singleSize{}

// FullRow occupies every column of its row. Collapses to a single column
// when the grid has only one.
var FullRow Size = fullRowSize{}

// Columns occupies a fixed number of columns, clamped to what the grid has.
type Columns int

// Span implements Size
func (n Columns) Span(int) int { return int(n) }

// SpanFor resolves a Size against a column count. The result is always in
// [1, columns]; a nil Size spans a single column.
func SpanFor(s Size, columns int) int {
	if columns < 1 {
		columns = 1
	}
	if s == nil {
		return 1
	}
	span := s.Span(columns)
	if span < 1 {
		return 1
	}
	if span > columns {
		return columns
	}
	return span
}
