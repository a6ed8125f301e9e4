package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrEmptyUID is returned when a blank UID is submitted.
var ErrEmptyUID = errors.New("uid must not be empty")

// ErrNotFound is returned when a target UID is not stored for the account.
var ErrNotFound = errors.New("uid not found for account")

// Service stores and resolves per-account player UIDs.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new registry service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates or updates the registry schema.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&Entry{})
}

// Get returns the stored UIDs for an account. An unknown account yields an
// empty result, not an error.
func (s *Service) Get(ctx context.Context, account string) (*AccountUIDs, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).
		Where("account = ?", account).
		Order("id asc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load registry for account %s: %w", account, err)
	}

	out := &AccountUIDs{Targets: []string{}}
	for _, e := range entries {
		if e.Role == RoleReference {
			out.Reference = e.UID
		} else {
			out.Targets = append(out.Targets, e.UID)
		}
	}
	return out, nil
}

// UIDs resolves the reference and target UIDs for an account. It implements
// the comparison feature's UIDProvider.
func (s *Service) UIDs(ctx context.Context, account string) (string, []string, error) {
	uids, err := s.Get(ctx, account)
	if err != nil {
		return "", nil, err
	}
	return uids.Reference, uids.Targets, nil
}

// SetReference stores uid as the account's reference, replacing any previous
// reference. If the UID was stored as a target it is promoted.
func (s *Service) SetReference(ctx context.Context, account, uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ErrEmptyUID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Drop the previous reference and any row already holding this UID
		if err := tx.Where("account = ? AND (role = ? OR uid = ?)", account, RoleReference, uid).
			Delete(&Entry{}).Error; err != nil {
			return err
		}
		return tx.Create(&Entry{Account: account, UID: uid, Role: RoleReference}).Error
	})
}

// AddTarget stores uid as a comparison target for the account. Adding a UID
// that is already stored (as target or reference) is a no-op.
func (s *Service) AddTarget(ctx context.Context, account, uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ErrEmptyUID
	}

	var existing Entry
	err := s.db.WithContext(ctx).
		Where("account = ? AND uid = ?", account, uid).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing uid: %w", err)
	}

	return s.db.WithContext(ctx).
		Create(&Entry{Account: account, UID: uid, Role: RoleTarget}).Error
}

// RemoveTarget deletes a stored target UID.
func (s *Service) RemoveTarget(ctx context.Context, account, uid string) error {
	res := s.db.WithContext(ctx).
		Where("account = ? AND uid = ? AND role = ?", account, strings.TrimSpace(uid), RoleTarget).
		Delete(&Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
