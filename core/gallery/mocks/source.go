package mocks

import (
	"context"

	"github.com/ThomasBonnelye/invader-comparator/core/gallery"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of gallery.Source
type Source struct {
	mock.Mock
}

func (m *Source) FetchGallery(ctx context.Context, uid string) (*gallery.Gallery, error) {
	args := m.Called(ctx, uid)
	if g, ok := args.Get(0).(*gallery.Gallery); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}
