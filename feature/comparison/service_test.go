package comparison_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	"github.com/ThomasBonnelye/invader-comparator/core/gallery/mocks"
	"github.com/ThomasBonnelye/invader-comparator/feature/comparison"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// stubProvider is a fixed-answer UIDProvider.
type stubProvider struct {
	reference string
	targets   []string
	err       error
}

func (s *stubProvider) UIDs(ctx context.Context, account string) (string, []string, error) {
	return s.reference, s.targets, s.err
}

func TestCompareUIDs(t *testing.T) {
	source := new(mocks.Source)
	source.On("FetchGallery", mock.Anything, "ref").
		Return(&gallery.Gallery{UID: "ref", Name: "Me", Invaders: []string{"PA_01", "PA_02"}}, nil)
	source.On("FetchGallery", mock.Anything, "t1").
		Return(&gallery.Gallery{UID: "t1", Name: "Jace", Invaders: []string{"PA_01", "PA_99"}}, nil)
	source.On("FetchGallery", mock.Anything, "t2").
		Return(&gallery.Gallery{UID: "t2", Name: "Vraska", Invaders: []string{"PA_02"}}, nil)

	svc := comparison.NewService(source, nil, zap.NewNop())

	report, err := svc.CompareUIDs(context.Background(), "ref", []string{"t1", "t2"})
	assert.NoError(t, err)
	assert.Equal(t, "ref", report.ReferenceUID)
	assert.Equal(t, "Me", report.ReferenceName)
	assert.Equal(t, map[string][]string{
		"Jace":   {"PA_99"},
		"Vraska": {},
	}, report.Exclusive)
}

func TestCompareUIDs_FailedGalleryDegradesToEmpty(t *testing.T) {
	source := new(mocks.Source)
	source.On("FetchGallery", mock.Anything, "ref").
		Return(&gallery.Gallery{UID: "ref", Name: "Me", Invaders: []string{"PA_01"}}, nil)
	source.On("FetchGallery", mock.Anything, "dead").
		Return(nil, errors.New("api unreachable"))

	svc := comparison.NewService(source, nil, zap.NewNop())

	report, err := svc.CompareUIDs(context.Background(), "ref", []string{"dead"})
	assert.NoError(t, err)
	// The failed target appears under its UID with an empty list
	assert.Equal(t, map[string][]string{"dead": {}}, report.Exclusive)
}

func TestCompareUIDs_FailedReferenceDegradesToEmpty(t *testing.T) {
	source := new(mocks.Source)
	source.On("FetchGallery", mock.Anything, "ref").
		Return(nil, errors.New("api unreachable"))
	source.On("FetchGallery", mock.Anything, "t1").
		Return(&gallery.Gallery{UID: "t1", Name: "Jace", Invaders: []string{"Z", "A"}}, nil)

	svc := comparison.NewService(source, nil, zap.NewNop())

	report, err := svc.CompareUIDs(context.Background(), "ref", []string{"t1"})
	assert.NoError(t, err)
	assert.Equal(t, "ref", report.ReferenceName)
	// Empty reference: everything the target owns is exclusive, sorted
	assert.Equal(t, map[string][]string{"Jace": {"A", "Z"}}, report.Exclusive)
}

func TestCompareUIDs_NameCollisionsFallBackToUID(t *testing.T) {
	source := new(mocks.Source)
	source.On("FetchGallery", mock.Anything, "ref").
		Return(&gallery.Gallery{UID: "ref", Name: "Me", Invaders: []string{}}, nil)
	source.On("FetchGallery", mock.Anything, "t1").
		Return(&gallery.Gallery{UID: "t1", Name: "Jace", Invaders: []string{"A"}}, nil)
	source.On("FetchGallery", mock.Anything, "t2").
		Return(&gallery.Gallery{UID: "t2", Name: "Jace", Invaders: []string{"B"}}, nil)
	source.On("FetchGallery", mock.Anything, "t3").
		Return(&gallery.Gallery{UID: "t3", Name: "  ", Invaders: []string{"C"}}, nil)

	svc := comparison.NewService(source, nil, zap.NewNop())

	report, err := svc.CompareUIDs(context.Background(), "ref", []string{"t1", "t2", "t3"})
	assert.NoError(t, err)
	assert.Len(t, report.Exclusive, 3)
	assert.Equal(t, []string{"A"}, report.Exclusive["Jace"])
	assert.Equal(t, []string{"B"}, report.Exclusive["t2"])
	assert.Equal(t, []string{"C"}, report.Exclusive["t3"])
}

func TestCompareUIDs_DedupesTargets(t *testing.T) {
	source := new(mocks.Source)
	source.On("FetchGallery", mock.Anything, "ref").
		Return(&gallery.Gallery{UID: "ref", Name: "Me", Invaders: []string{}}, nil)
	source.On("FetchGallery", mock.Anything, "t1").
		Return(&gallery.Gallery{UID: "t1", Name: "Jace", Invaders: []string{"A"}}, nil).Once()

	svc := comparison.NewService(source, nil, zap.NewNop())

	report, err := svc.CompareUIDs(context.Background(), "ref", []string{"t1", " t1 ", "", "t1"})
	assert.NoError(t, err)
	assert.Len(t, report.Exclusive, 1)
	source.AssertNumberOfCalls(t, "FetchGallery", 2)
}

func TestCompareAccount(t *testing.T) {
	t.Run("HappyPath", func(t *testing.T) {
		source := new(mocks.Source)
		source.On("FetchGallery", mock.Anything, "ref").
			Return(&gallery.Gallery{UID: "ref", Name: "Me", Invaders: []string{"PA_01"}}, nil)
		source.On("FetchGallery", mock.Anything, "t1").
			Return(&gallery.Gallery{UID: "t1", Name: "Jace", Invaders: []string{"PA_02"}}, nil)

		provider := &stubProvider{reference: "ref", targets: []string{"t1"}}
		svc := comparison.NewService(source, provider, zap.NewNop())

		report, err := svc.CompareAccount(context.Background(), "thomas")
		assert.NoError(t, err)
		assert.Equal(t, map[string][]string{"Jace": {"PA_02"}}, report.Exclusive)
	})

	t.Run("NoReferenceStored", func(t *testing.T) {
		provider := &stubProvider{reference: "", targets: []string{"t1"}}
		svc := comparison.NewService(new(mocks.Source), provider, zap.NewNop())

		report, err := svc.CompareAccount(context.Background(), "thomas")
		assert.ErrorIs(t, err, comparison.ErrNoReference)
		assert.Nil(t, report)
	})

	t.Run("ProviderError", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("db down")}
		svc := comparison.NewService(new(mocks.Source), provider, zap.NewNop())

		_, err := svc.CompareAccount(context.Background(), "thomas")
		assert.Error(t, err)
	})

	t.Run("NoProvider", func(t *testing.T) {
		svc := comparison.NewService(new(mocks.Source), nil, zap.NewNop())

		_, err := svc.CompareAccount(context.Background(), "thomas")
		assert.Error(t, err)
	})
}
