package tui

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mosaicgrid/mosaic/internal/domain"
	"github.com/mosaicgrid/mosaic/internal/tui/components"
)

// rankCards ranks the card collection against an omnibar query. An empty
// query lists everything in collection order so the omnibar doubles as a
// table of contents.
func rankCards(query string, cards []domain.Card) []components.JumpResult {
	if strings.TrimSpace(query) == "" {
		results := make([]components.JumpResult, len(cards))
		for i, c := range cards {
			results[i] = components.JumpResult{Index: i, Title: c.Title, Badge: c.Badge}
		}
		return results
	}

	titles := make([]string, len(cards))
	for i, c := range cards {
		titles[i] = c.Title
	}

	matches := fuzzy.RankFindFold(query, titles)
	sort.Sort(matches)

	results := make([]components.JumpResult, 0, len(matches))
	for _, match := range matches {
		c := cards[match.OriginalIndex]
		results = append(results, components.JumpResult{
			Index: match.OriginalIndex,
			Title: c.Title,
			Badge: c.Badge,
		})
	}
	return results
}
