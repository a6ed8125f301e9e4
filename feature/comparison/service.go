package comparison

import (
	"context"
	"errors"
	"sync"

	"github.com/ThomasBonnelye/invader-comparator/core/gallery"

	"go.uber.org/zap"
)

// ErrNoReference is returned when an account has no reference UID stored.
var ErrNoReference = errors.New("no reference uid configured for account")

// UIDProvider supplies the stored reference and target UIDs for an account.
// The registry feature implements it.
type UIDProvider interface {
	UIDs(ctx context.Context, account string) (reference string, targets []string, err error)
}

// Report is the outcome of one comparison run.
type Report struct {
	// ReferenceUID is the UID the comparison was made against.
	ReferenceUID string `json:"reference_uid"`
	// ReferenceName is the display name of the reference player, or the UID
	// if the gallery could not be fetched.
	ReferenceName string `json:"reference_name"`
	// Exclusive maps each target's display name to the sorted list of
	// invaders that player has and the reference player is missing.
	Exclusive map[string][]string `json:"exclusive"`
}

// Service orchestrates gallery fetches and the comparison engine.
type Service struct {
	source   gallery.Source
	provider UIDProvider
	logger   *zap.Logger
}

// NewService creates a new comparison service. provider may be nil when no
// registry is available; only ad hoc comparisons work then.
func NewService(source gallery.Source, provider UIDProvider, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		provider: provider,
		logger:   logger,
	}
}

// HasRegistry reports whether account-driven comparisons are available.
func (s *Service) HasRegistry() bool {
	return s.provider != nil
}

// CompareAccount runs a comparison for the UIDs stored for account.
func (s *Service) CompareAccount(ctx context.Context, account string) (*Report, error) {
	if s.provider == nil {
		return nil, errors.New("uid registry is not available")
	}

	reference, targets, err := s.provider.UIDs(ctx, account)
	if err != nil {
		return nil, err
	}
	if reference == "" {
		return nil, ErrNoReference
	}

	return s.CompareUIDs(ctx, reference, targets)
}

// CompareUIDs fetches the reference gallery and every target gallery, then
// computes per target the invaders missing from the reference collection.
// A gallery that cannot be fetched is treated as empty, with the UID standing
// in for the display name, so one dead UID never fails the whole run.
func (s *Service) CompareUIDs(ctx context.Context, referenceUID string, targetUIDs []string) (*Report, error) {
	targetUIDs = dedupeUIDs(targetUIDs)

	galleries := make([]*gallery.Gallery, len(targetUIDs))
	var reference *gallery.Gallery

	var wg sync.WaitGroup
	wg.Add(len(targetUIDs) + 1)

	go func() {
		defer wg.Done()
		reference = s.fetchOrEmpty(ctx, referenceUID)
	}()

	for i, uid := range targetUIDs {
		go func(i int, uid string) {
			defer wg.Done()
			galleries[i] = s.fetchOrEmpty(ctx, uid)
		}(i, uid)
	}

	wg.Wait()

	// Display names key the result, so blank or colliding names fall back to
	// the UID to keep one entry per target.
	others := make(map[string][]string, len(galleries))
	for _, g := range galleries {
		name := Normalize(g.Name)
		if name == "" {
			name = g.UID
		}
		if _, taken := others[name]; taken {
			name = g.UID
		}
		others[name] = g.Invaders
	}

	return &Report{
		ReferenceUID:  referenceUID,
		ReferenceName: displayName(reference),
		Exclusive:     Compare(reference.Invaders, others),
	}, nil
}

// fetchOrEmpty absorbs gallery failures into an empty collection named after
// the UID.
func (s *Service) fetchOrEmpty(ctx context.Context, uid string) *gallery.Gallery {
	g, err := s.source.FetchGallery(ctx, uid)
	if err != nil {
		s.logger.Warn("Gallery fetch failed, treating as empty",
			zap.String("uid", uid), zap.Error(err))
		return &gallery.Gallery{UID: uid, Invaders: []string{}}
	}
	return g
}

func displayName(g *gallery.Gallery) string {
	if name := Normalize(g.Name); name != "" {
		return name
	}
	return g.UID
}

// dedupeUIDs removes blank and repeated UIDs, preserving first-seen order.
func dedupeUIDs(uids []string) []string {
	seen := make(map[string]struct{}, len(uids))
	out := make([]string, 0, len(uids))
	for _, uid := range uids {
		uid = Normalize(uid)
		if uid == "" {
			continue
		}
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}
		out = append(out, uid)
	}
	return out
}
