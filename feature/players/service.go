package players

import (
	"context"

	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	"github.com/ThomasBonnelye/invader-comparator/feature/comparison"

	"go.uber.org/zap"
)

// Summary is the cleaned-up view of one player's gallery.
type Summary struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	// InvaderCount is the number of distinct invaders after normalization.
	InvaderCount int `json:"invader_count"`
	// Invaders is the normalized, deduplicated, sorted collection.
	Invaders []string `json:"invaders"`
}

// Service resolves player gallery summaries.
type Service struct {
	source gallery.Source
	logger *zap.Logger
}

// NewService creates a new players service.
func NewService(source gallery.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// GetPlayer fetches one player's gallery and returns its summary.
func (s *Service) GetPlayer(ctx context.Context, uid string) (*Summary, error) {
	g, err := s.source.FetchGallery(ctx, uid)
	if err != nil {
		return nil, err
	}

	// Comparing against an empty reference yields exactly the normalized,
	// deduplicated, sorted collection.
	invaders := comparison.Compare(nil, map[string][]string{uid: g.Invaders})[uid]

	name := comparison.Normalize(g.Name)
	if name == "" {
		name = uid
	}

	return &Summary{
		UID:          uid,
		Name:         name,
		Points:       g.Points,
		InvaderCount: len(invaders),
		Invaders:     invaders,
	}, nil
}
