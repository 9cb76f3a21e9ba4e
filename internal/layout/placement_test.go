package layout

import "testing"

func TestPrefixNeverSplitsRows(t *testing.T) {
	for columns := 1; columns <= 8; columns++ {
		for span := 1; span <= columns; span++ {
			for spanIndex := 0; spanIndex < columns*4; spanIndex++ {
				placed := spanIndex + Prefix(span, columns, spanIndex)
				if placed%columns+span > columns {
					t.Fatalf("columns=%d span=%d spanIndex=%d: span crosses row boundary at %d",
						columns, span, spanIndex, placed)
				}
			}
		}
	}
}

func TestPrefixSingleColumnAndSingleSpan(t *testing.T) {
	if Prefix(3, 1, 5) != 0 {
		t.Error("prefix must be 0 when columns == 1")
	}
	if Prefix(1, 4, 3) != 0 {
		t.Error("prefix must be 0 when span == 1")
	}
}

func TestPrefixPadsOutRow(t *testing.T) {
	// Offset 2 of a 3-column row leaves 1 cell; a 3-span item needs the
	// whole remainder padded.
	if got := Prefix(3, 3, 2); got != 1 {
		t.Errorf("prefix should be 1, got %d", got)
	}
	// A 2-span item at the start of a row needs no padding.
	if got := Prefix(2, 3, 3); got != 0 {
		t.Errorf("prefix should be 0, got %d", got)
	}
}

func TestPlacerSpanScenario(t *testing.T) {
	// Spans [1,1,3,1] in 3 columns: the full-row item at offset 2 can't
	// fit the 1 remaining cell, so one padding cell pushes it to 3; it
	// consumes the whole second row and the last item lands on 6.
	sizes := []Size{Single, Single, FullRow, Single}
	p := NewPlacer(sizes, 3)

	want := []int{0, 1, 3, 6}
	for i, w := range want {
		if got := p.SpanIndex(i); got != w {
			t.Errorf("item %d: spanIndex should be %d, got %d", i, w, got)
		}
	}
	if p.Rows() != 3 {
		t.Errorf("Rows should be 3, got %d", p.Rows())
	}
	if p.RowOffset(2) != 1 {
		t.Errorf("item 2 should start row 1, got %d", p.RowOffset(2))
	}
}

func TestPlacerSingleColumnCollapse(t *testing.T) {
	sizes := []Size{FullRow, Columns(3), Single, FullRow}
	p := NewPlacer(sizes, 1)

	for i := range sizes {
		if got := p.Span(i); got != 1 {
			t.Errorf("item %d: span should collapse to 1, got %d", i, got)
		}
		if got := p.SpanIndex(i); got != i {
			t.Errorf("item %d: spanIndex should equal cell index, got %d", i, got)
		}
	}
}

func TestPlacerMonotonicSpanIndex(t *testing.T) {
	sizes := []Size{Single, Columns(2), FullRow, Single, Columns(3), Single, Single, FullRow, Columns(2)}

	for columns := 1; columns <= 5; columns++ {
		p := NewPlacer(sizes, columns)
		prev := -1
		for i := range sizes {
			idx := p.SpanIndex(i)
			if idx <= prev {
				t.Fatalf("columns=%d: spanIndex not strictly increasing at item %d (%d <= %d)",
					columns, i, idx, prev)
			}
			prev = idx
		}
	}
}

func TestPlacerIdempotentWithinEpoch(t *testing.T) {
	sizes := []Size{Single, FullRow, Columns(2), Single}
	p := NewPlacer(sizes, 4)

	first := make([]int, len(sizes))
	for i := range sizes {
		first[i] = p.SpanIndex(i)
	}
	for i := range sizes {
		if got := p.SpanIndex(i); got != first[i] {
			t.Errorf("item %d: repeated query returned %d, first returned %d", i, got, first[i])
		}
	}
}

func TestPlacerSetColumnsStartsNewEpoch(t *testing.T) {
	sizes := []Size{Single, Single, FullRow, Single}
	p := NewPlacer(sizes, 3)

	if got := p.SpanIndex(2); got != 3 {
		t.Fatalf("3-column epoch: item 2 should be at 3, got %d", got)
	}

	p.SetColumns(2)
	// Spans [1,1,2,1] in 2 columns: item 2 at offset 2 starts a fresh
	// row, no padding needed.
	if got := p.SpanIndex(2); got != 2 {
		t.Errorf("2-column epoch: item 2 should be at 2, got %d", got)
	}
	if got := p.SpanIndex(3); got != 4 {
		t.Errorf("2-column epoch: item 3 should be at 4, got %d", got)
	}
}

func TestPlacerDegenerateInputs(t *testing.T) {
	empty := NewPlacer(nil, 3)
	if empty.SpanIndex(0) != 0 || empty.Rows() != 0 {
		t.Error("empty placer should report zero placement")
	}

	p := NewPlacer([]Size{Single, Single}, 0)
	if p.Columns() != 1 {
		t.Errorf("column count should clamp to 1, got %d", p.Columns())
	}

	// Out-of-range queries saturate instead of panicking.
	if p.SpanIndex(-1) != 0 {
		t.Error("negative index should saturate to first item")
	}
	if p.SpanIndex(99) != p.SpanIndex(1) {
		t.Error("overlarge index should saturate to last item")
	}
}

func TestSpanForClamps(t *testing.T) {
	if SpanFor(Columns(10), 4) != 4 {
		t.Error("span should clamp to column count")
	}
	if SpanFor(Columns(0), 4) != 1 {
		t.Error("span should clamp up to 1")
	}
	if SpanFor(nil, 4) != 1 {
		t.Error("nil size should span 1")
	}
	if SpanFor(FullRow, 1) != 1 {
		t.Error("full row should collapse to 1 in a single column")
	}
}
