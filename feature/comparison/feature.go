package comparison

import (
	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	"github.com/ThomasBonnelye/invader-comparator/core/loader"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the comparison endpoints into the application.
type Feature struct {
	source   gallery.Source
	provider UIDProvider
	logger   *zap.Logger
}

// NewFeature creates the comparison feature. provider may be nil when the
// registry is unavailable; ad hoc comparisons keep working.
func NewFeature(source gallery.Source, provider UIDProvider, logger *zap.Logger) loader.Feature {
	return &Feature{
		source:   source,
		provider: provider,
		logger:   logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "comparison"
}

// IsEnabled reports whether the feature should load.
func (f *Feature) IsEnabled() bool {
	return f.source != nil
}

// Load registers the comparison routes.
func (f *Feature) Load(app fiber.Router) error {
	service := NewService(f.source, f.provider, f.logger)
	NewHandler(service).RegisterRoutes(app)
	return nil
}
