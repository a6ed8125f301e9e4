package registry_test

import (
	"context"
	"testing"

	"github.com/ThomasBonnelye/invader-comparator/core/database"
	"github.com/ThomasBonnelye/invader-comparator/feature/registry"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *registry.Service {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)

	svc := registry.NewService(db, zap.NewNop())
	assert.NoError(t, svc.Migrate())
	return svc
}

func TestService_GetUnknownAccount(t *testing.T) {
	svc := newTestService(t)

	uids, err := svc.Get(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Equal(t, "", uids.Reference)
	assert.Empty(t, uids.Targets)
	assert.NotNil(t, uids.Targets)
}

func TestService_SetReference(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.SetReference(ctx, "thomas", "ref-1"))

	uids, err := svc.Get(ctx, "thomas")
	assert.NoError(t, err)
	assert.Equal(t, "ref-1", uids.Reference)

	// Replacing the reference keeps a single reference row
	assert.NoError(t, svc.SetReference(ctx, "thomas", "ref-2"))
	uids, err = svc.Get(ctx, "thomas")
	assert.NoError(t, err)
	assert.Equal(t, "ref-2", uids.Reference)
	assert.Empty(t, uids.Targets)

	// Whitespace is trimmed, blank rejected
	assert.NoError(t, svc.SetReference(ctx, "thomas", "  ref-3  "))
	uids, _ = svc.Get(ctx, "thomas")
	assert.Equal(t, "ref-3", uids.Reference)
	assert.ErrorIs(t, svc.SetReference(ctx, "thomas", "   "), registry.ErrEmptyUID)
}

func TestService_SetReferencePromotesTarget(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.AddTarget(ctx, "thomas", "uid-1"))
	assert.NoError(t, svc.SetReference(ctx, "thomas", "uid-1"))

	uids, err := svc.Get(ctx, "thomas")
	assert.NoError(t, err)
	assert.Equal(t, "uid-1", uids.Reference)
	assert.Empty(t, uids.Targets)
}

func TestService_AddTarget(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.AddTarget(ctx, "thomas", "t1"))
	assert.NoError(t, svc.AddTarget(ctx, "thomas", "t2"))
	// Idempotent
	assert.NoError(t, svc.AddTarget(ctx, "thomas", "t1"))
	assert.ErrorIs(t, svc.AddTarget(ctx, "thomas", ""), registry.ErrEmptyUID)

	uids, err := svc.Get(ctx, "thomas")
	assert.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, uids.Targets)

	// Accounts are isolated
	other, err := svc.Get(ctx, "someone-else")
	assert.NoError(t, err)
	assert.Empty(t, other.Targets)
}

func TestService_RemoveTarget(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.AddTarget(ctx, "thomas", "t1"))
	assert.NoError(t, svc.RemoveTarget(ctx, "thomas", "t1"))
	assert.ErrorIs(t, svc.RemoveTarget(ctx, "thomas", "t1"), registry.ErrNotFound)

	uids, err := svc.Get(ctx, "thomas")
	assert.NoError(t, err)
	assert.Empty(t, uids.Targets)
}

func TestService_UIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.SetReference(ctx, "thomas", "ref"))
	assert.NoError(t, svc.AddTarget(ctx, "thomas", "t1"))

	reference, targets, err := svc.UIDs(ctx, "thomas")
	assert.NoError(t, err)
	assert.Equal(t, "ref", reference)
	assert.Equal(t, []string{"t1"}, targets)
}
