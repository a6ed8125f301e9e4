package registry

import (
	"github.com/ThomasBonnelye/invader-comparator/core/loader"

	"github.com/gofiber/fiber/v2"
)

// Feature wires the registry endpoints into the application.
type Feature struct {
	service *Service
}

// NewFeature creates the registry feature around an existing service.
func NewFeature(service *Service) loader.Feature {
	return &Feature{service: service}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "registry"
}

// IsEnabled reports whether the feature should load. Without a database
// connection there is no registry.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load migrates the schema and registers the registry routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
