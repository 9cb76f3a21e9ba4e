package layout

import "testing"

func TestFixedColumnsSplitsWidth(t *testing.T) {
	f := FixedColumns{Columns: 3, Gutter: 2}
	res := f.Calculate(100, DefaultTraits())

	if res.Columns != 3 {
		t.Errorf("Columns should be 3, got %d", res.Columns)
	}
	// (100 - 2*2) / 3 = 32
	if res.TileWidth != 32 {
		t.Errorf("TileWidth should be 32, got %d", res.TileWidth)
	}
	if res.GridWidth() > 100 {
		t.Errorf("grid width %d overflows available 100", res.GridWidth())
	}
}

func TestFixedColumnsDegenerateInputs(t *testing.T) {
	f := FixedColumns{Columns: 0, Gutter: -5}
	res := f.Calculate(-10, DefaultTraits())

	if res.Columns != 1 {
		t.Errorf("Columns should clamp to 1, got %d", res.Columns)
	}
	if res.TileWidth != 0 {
		t.Errorf("TileWidth should clamp to 0, got %d", res.TileWidth)
	}
	if res.Gutter != 0 {
		t.Errorf("Gutter should clamp to 0, got %d", res.Gutter)
	}
}

func TestDynamicColumnsPacksThenGrows(t *testing.T) {
	d := DynamicColumns{
		MinTileWidth:  100,
		MaxTileWidth:  160,
		GutterRegular: 8,
		GutterCompact: 4,
	}
	res := d.Calculate(320, DefaultTraits())

	// 3*100 + 2*8 = 316 <= 320, so three columns fit at the minimum.
	if res.Columns != 3 {
		t.Errorf("Columns should be 3, got %d", res.Columns)
	}
	// Leftover grows the tile: (320 - 16) / 3 = 101.
	if res.TileWidth != 101 {
		t.Errorf("TileWidth should be 101, got %d", res.TileWidth)
	}
	if res.GridWidth() > 320 {
		t.Errorf("grid width %d overflows available 320", res.GridWidth())
	}
}

func TestDynamicColumnsMaxTileCap(t *testing.T) {
	d := DynamicColumns{
		MinTileWidth:  20,
		MaxTileWidth:  25,
		GutterRegular: 2,
	}
	res := d.Calculate(50, DefaultTraits())

	// Two columns at minimum (2*20+2=42 <= 50), leftover would push the
	// tile to 24, under the cap.
	if res.Columns != 2 {
		t.Errorf("Columns should be 2, got %d", res.Columns)
	}
	if res.TileWidth != 24 {
		t.Errorf("TileWidth should be 24, got %d", res.TileWidth)
	}

	// A much wider single column is capped at MaxTileWidth.
	res = d.Calculate(30, DefaultTraits())
	if res.Columns != 1 {
		t.Errorf("Columns should be 1, got %d", res.Columns)
	}
	if res.TileWidth != 25 {
		t.Errorf("TileWidth should cap at 25, got %d", res.TileWidth)
	}
}

func TestDynamicColumnsSingleColumnFallback(t *testing.T) {
	d := DynamicColumns{MinTileWidth: 40, MaxTileWidth: 60, GutterRegular: 2}
	res := d.Calculate(25, DefaultTraits())

	if res.Columns != 1 {
		t.Errorf("Columns should be 1 when minimum doesn't fit, got %d", res.Columns)
	}
	if res.TileWidth != 25 {
		t.Errorf("TileWidth should take the full width 25, got %d", res.TileWidth)
	}
}

func TestDynamicColumnsCompactGutter(t *testing.T) {
	d := DynamicColumns{MinTileWidth: 10, MaxTileWidth: 10, GutterRegular: 6, GutterCompact: 1}

	regular := d.Calculate(60, Traits{Category: CategoryMedium, Class: ClassRegular})
	compact := d.Calculate(60, Traits{Category: CategoryMedium, Class: ClassCompact})

	if regular.Gutter != 6 {
		t.Errorf("regular gutter should be 6, got %d", regular.Gutter)
	}
	if compact.Gutter != 1 {
		t.Errorf("compact gutter should be 1, got %d", compact.Gutter)
	}
	if compact.Columns <= regular.Columns {
		t.Errorf("tighter gutter should fit more columns: compact=%d regular=%d",
			compact.Columns, regular.Columns)
	}
}

func TestDynamicColumnsCategoryScaling(t *testing.T) {
	d := DynamicColumns{MinTileWidth: 20, MaxTileWidth: 40, GutterRegular: 2}

	medium := d.Calculate(120, Traits{Category: CategoryMedium})
	access := d.Calculate(120, Traits{Category: CategoryAccessibilityLarge})

	if access.Columns >= medium.Columns {
		t.Errorf("larger category should produce fewer columns: medium=%d accessibility=%d",
			medium.Columns, access.Columns)
	}
	if access.TileWidth <= medium.TileWidth {
		t.Errorf("larger category should produce wider tiles: medium=%d accessibility=%d",
			medium.TileWidth, access.TileWidth)
	}
}

func TestDynamicColumnsMaxGridWidth(t *testing.T) {
	d := DynamicColumns{MinTileWidth: 10, MaxTileWidth: 10, GutterRegular: 0, MaxGridWidth: 40}
	res := d.Calculate(200, DefaultTraits())

	if res.Columns != 4 {
		t.Errorf("Columns should be bounded to 4 by MaxGridWidth, got %d", res.Columns)
	}
}

func TestColumnSizingNeverOverflows(t *testing.T) {
	strategies := []ColumnSizing{
		FixedColumns{Columns: 4, Gutter: 1},
		DynamicColumns{MinTileWidth: 12, MaxTileWidth: 30, GutterRegular: 2, GutterCompact: 1},
	}

	for _, s := range strategies {
		for width := 0; width <= 400; width++ {
			res := s.Calculate(width, DefaultTraits())
			if res.Columns < 1 {
				t.Fatalf("width=%d: Columns %d < 1", width, res.Columns)
			}
			if res.TileWidth < 0 {
				t.Fatalf("width=%d: TileWidth %d < 0", width, res.TileWidth)
			}
			if res.GridWidth() > width && res.Columns > 1 {
				t.Fatalf("width=%d: grid width %d overflows", width, res.GridWidth())
			}
		}
	}
}

func TestSizeCategoryCycle(t *testing.T) {
	if CategoryAccessibilityLarge.Larger() != CategoryAccessibilityLarge {
		t.Error("Larger should saturate at the top of the scale")
	}
	if CategorySmall.Smaller() != CategorySmall {
		t.Error("Smaller should saturate at the bottom of the scale")
	}
	if CategoryMedium.Larger() != CategoryLarge {
		t.Errorf("medium.Larger should be large, got %v", CategoryMedium.Larger())
	}
}

func TestParseTraits(t *testing.T) {
	if ParseSizeCategory("XLARGE") != CategoryExtraLarge {
		t.Error("ParseSizeCategory should be case-insensitive")
	}
	if ParseSizeCategory("bogus") != CategoryMedium {
		t.Error("ParseSizeCategory should default to medium")
	}
	if ParseSizeClass("Compact") != ClassCompact {
		t.Error("ParseSizeClass should be case-insensitive")
	}
	if ParseSizeClass("") != ClassRegular {
		t.Error("ParseSizeClass should default to regular")
	}
}
