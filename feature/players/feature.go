package players

import (
	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	"github.com/ThomasBonnelye/invader-comparator/core/loader"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the player lookup endpoints into the application.
type Feature struct {
	source gallery.Source
	logger *zap.Logger
}

// NewFeature creates the players feature.
func NewFeature(source gallery.Source, logger *zap.Logger) loader.Feature {
	return &Feature{source: source, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "players"
}

// IsEnabled reports whether the feature should load.
func (f *Feature) IsEnabled() bool {
	return f.source != nil
}

// Load registers the player routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(NewService(f.source, f.logger)).RegisterRoutes(app)
	return nil
}
