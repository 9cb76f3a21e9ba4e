package gallery

import (
	"fmt"
	"log/slog"

	"github.com/mosaicgrid/mosaic/internal/domain"
	"github.com/mosaicgrid/mosaic/internal/layout"
)

// Service supplies the demo card collection. It stands in for whatever data
// source a real embedder would wire behind the grid.
type Service struct {
	logger *slog.Logger
}

// NewService creates a gallery service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Cards returns the demo collection: section headers spanning the full row,
// a few double-width features, and a run of single tiles with uneven body
// lengths so row alignment has something to do.
func (s *Service) Cards() []domain.Card {
	cards := []domain.Card{
		{ID: "hdr-featured", Title: "Featured", Body: "Hand-picked this week", Size: layout.FullRow},
		{ID: "feat-aurora", Title: "Aurora", Body: "Northern lights time-lapse over the Lofoten wall, shot across three nights of clear skies.", Badge: "4K", Size: layout.Columns(2)},
		{ID: "feat-tides", Title: "Tides", Body: "Slack water at the narrows.", Badge: "NEW", Size: layout.Columns(2)},
		{ID: "hdr-library", Title: "Library", Body: "Everything else, newest first", Size: layout.FullRow},
	}

	titles := []string{
		"Basalt", "Cinder", "Drift", "Ember", "Fjord", "Gale",
		"Harbor", "Islet", "Juniper", "Karst", "Lagoon", "Moraine",
		"Nimbus", "Osprey", "Pumice", "Quarry", "Rookery", "Scree",
	}
	for i, title := range titles {
		body := "Field notes."
		switch i % 3 {
		case 1:
			body = "Field notes and a contact sheet from the morning session."
		case 2:
			body = "Field notes, route sketches, and the full set of bracketed exposures worth keeping."
		}
		cards = append(cards, domain.Card{
			ID:    fmt.Sprintf("card-%03d", i+1),
			Title: title,
			Body:  body,
			Size:  layout.Single,
		})
	}

	s.logger.Debug("gallery loaded", "cards", len(cards))
	return cards
}
