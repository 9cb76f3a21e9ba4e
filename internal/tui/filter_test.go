package tui

import (
	"testing"

	"github.com/mosaicgrid/mosaic/internal/domain"
)

func rankingCards() []domain.Card {
	return []domain.Card{
		{ID: "a", Title: "Harbor"},
		{ID: "b", Title: "Lagoon", Badge: "NEW"},
		{ID: "c", Title: "Moraine"},
	}
}

func TestRankCardsEmptyQueryListsAll(t *testing.T) {
	results := rankCards("", rankingCards())
	if len(results) != 3 {
		t.Fatalf("len = %d, want 3", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d, want collection order", i, r.Index)
		}
	}
	if results[1].Badge != "NEW" {
		t.Errorf("badge not carried through: %q", results[1].Badge)
	}
}

func TestRankCardsMatchesFold(t *testing.T) {
	results := rankCards("LAGOON", rankingCards())
	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}
	if results[0].Index != 1 || results[0].Title != "Lagoon" {
		t.Errorf("got %+v, want Lagoon at index 1", results[0])
	}
}

func TestRankCardsNoMatches(t *testing.T) {
	if results := rankCards("zzzz", rankingCards()); len(results) != 0 {
		t.Errorf("len = %d, want 0", len(results))
	}
}
