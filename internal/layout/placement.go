package layout

// Prefix returns the number of blank filler cells inserted before an item so
// its span never straddles a row boundary. With a single column, or a
// single-cell span, overflow is impossible and the prefix is zero.
func Prefix(span, columns, spanIndex int) int {
	if columns <= 1 || span <= 1 {
		return 0
	}
	remaining := columns - spanIndex%columns
	if span > remaining {
		return remaining
	}
	return 0
}

// Placer assigns each item in an ordered sequence its absolute cell offset
// for a given column count. Placement is inherently sequential (each item
// depends on every predecessor's span and prefix), so the first query runs
// one O(n) pass and memoizes; later queries are O(1). Changing the column
// count starts a new epoch and discards all memoized offsets, since the
// prefixes they were built from are no longer valid.
type Placer struct {
	sizes   []Size
	columns int

	spans   []int
	indexes []int
	total   int
	built   bool
}

// NewPlacer creates a placer over the given ordered sizes
func NewPlacer(sizes []Size, columns int) *Placer {
	if columns < 1 {
		columns = 1
	}
	return &Placer{sizes: sizes, columns: columns}
}

// SetColumns switches the placer to a new column count, invalidating every
// memoized placement if the count actually changed.
func (p *Placer) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	if columns == p.columns {
		return
	}
	p.columns = columns
	p.built = false
}

// Columns returns the column count placements are computed against
func (p *Placer) Columns() int {
	return p.columns
}

// Len returns the number of items in the sequence
func (p *Placer) Len() int {
	return len(p.sizes)
}

func (p *Placer) build() {
	if cap(p.spans) < len(p.sizes) {
		p.spans = make([]int, len(p.sizes))
		p.indexes = make([]int, len(p.sizes))
	} else {
		p.spans = p.spans[:len(p.sizes)]
		p.indexes = p.indexes[:len(p.sizes)]
	}

	offset := 0
	for i, s := range p.sizes {
		span := SpanFor(s, p.columns)
		offset += Prefix(span, p.columns, offset)
		p.spans[i] = span
		p.indexes[i] = offset
		offset += span
	}
	p.total = offset
	p.built = true
}

// clampIndex saturates i into the valid item range
func (p *Placer) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(p.sizes) {
		return len(p.sizes) - 1
	}
	return i
}

// SpanIndex returns the absolute cell offset of item i's first cell,
// padding cells included.
func (p *Placer) SpanIndex(i int) int {
	if len(p.sizes) == 0 {
		return 0
	}
	if !p.built {
		p.build()
	}
	return p.indexes[p.clampIndex(i)]
}

// Span returns the resolved span of item i
func (p *Placer) Span(i int) int {
	if len(p.sizes) == 0 {
		return 1
	}
	if !p.built {
		p.build()
	}
	return p.spans[p.clampIndex(i)]
}

// RowOffset returns the zero-based row item i starts on
func (p *Placer) RowOffset(i int) int {
	return p.SpanIndex(i) / p.columns
}

// Rows returns the total number of rows the sequence occupies
func (p *Placer) Rows() int {
	if len(p.sizes) == 0 {
		return 0
	}
	if !p.built {
		p.build()
	}
	return (p.total + p.columns - 1) / p.columns
}
