package domain

import "github.com/mosaicgrid/mosaic/internal/layout"

// Item is anything the grid can place: an identity plus a self-describing
// layout size. The grid never inspects the concrete type.
type Item interface {
	GetID() string
	GetTitle() string
	LayoutSize() layout.Size
}

// Card is a gallery entry shown as one grid tile.
type Card struct {
	ID    string
	Title string
	Body  string
	Badge string
	Size  layout.Size
}

// GetID returns the card's unique ID
func (c Card) GetID() string {
	return c.ID
}

// GetTitle returns the card's display title
func (c Card) GetTitle() string {
	return c.Title
}

// LayoutSize returns how many columns the card wants
func (c Card) LayoutSize() layout.Size {
	if c.Size == nil {
		return layout.Single
	}
	return c.Size
}

// Items converts a card slice to the interface slice the grid consumes
func Items(cards []Card) []Item {
	items := make([]Item, len(cards))
	for i, c := range cards {
		items[i] = c
	}
	return items
}
