package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mosaicgrid/mosaic/internal/domain"
	"github.com/mosaicgrid/mosaic/internal/layout"
	"github.com/mosaicgrid/mosaic/internal/tui/components"
)

func TestCardBuilderHonorsCellSize(t *testing.T) {
	card := domain.Card{
		ID:    "x",
		Title: "Fjord",
		Body:  "Field notes and a contact sheet from the morning session.",
		Size:  layout.Single,
	}
	cell := components.Cell{Width: 20, Height: 6, HeightKnown: true, Columns: 1, Span: 1}

	out := CardBuilder(card, cell)
	if w := lipgloss.Width(out); w != 20 {
		t.Errorf("width = %d, want 20", w)
	}
	if h := lipgloss.Height(out); h != 6 {
		t.Errorf("height = %d, want 6", h)
	}
	if !strings.Contains(out, "Fjord") {
		t.Error("missing title")
	}
}

func TestCardBuilderIntrinsicHeight(t *testing.T) {
	card := domain.Card{ID: "x", Title: "Gale", Body: "Short.", Size: layout.Single}
	cell := components.Cell{Width: 20, Columns: 1, Span: 1}

	out := CardBuilder(card, cell)
	if w := lipgloss.Width(out); w != 20 {
		t.Errorf("width = %d, want 20", w)
	}
	// Border, title line, one body line, border.
	if h := lipgloss.Height(out); h != 4 {
		t.Errorf("height = %d, want 4", h)
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("alpha beta gamma", 11)
	want := "alpha beta\ngamma"
	if got != want {
		t.Errorf("wordWrap = %q, want %q", got, want)
	}

	if got := wordWrap("short", 20); got != "short" {
		t.Errorf("wordWrap short = %q", got)
	}
}

func TestNextRowModeCycles(t *testing.T) {
	mode := layout.RowHeightNone
	seen := map[layout.RowHeightMode]bool{}
	for i := 0; i < 4; i++ {
		mode = nextRowMode(mode)
		seen[mode] = true
	}
	if len(seen) != 4 {
		t.Errorf("cycle visited %d modes, want 4", len(seen))
	}
	if mode != layout.RowHeightNone {
		t.Errorf("cycle did not return to start, ended at %v", mode)
	}
}
