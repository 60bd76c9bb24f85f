package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskman/internal/apperr"
	"taskman/internal/identity"
	"taskman/internal/model"
)

// AdminService holds the role-gated account management operations. Every
// method verifies the acting account holds the Admin role and fails with
// ErrUnauthorized otherwise; this is the one place ownership problems are
// reported loudly instead of dissolving into empty results.
type AdminService struct {
	ids *identity.Manager
}

func NewAdminService(ids *identity.Manager) *AdminService {
	return &AdminService{ids: ids}
}

func (s *AdminService) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return apperr.ErrUnauthorized
	}
	isAdmin, err := s.ids.IsInRole(ctx, actor.ID, model.RoleAdmin)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperr.ErrUnauthorized
	}
	return nil
}

// ListAccounts returns all non-deleted accounts ordered by email.
func (s *AdminService) ListAccounts(ctx context.Context, actorID string) ([]model.Account, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.ids.ListActive(ctx)
}

// SetRole assigns exactly one role to the target account. Calling it with
// the role the account already holds is a no-op.
func (s *AdminService) SetRole(ctx context.Context, actorID, accountID, role string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if !model.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", apperr.ErrInvalidOperation, role)
	}

	target, err := s.ids.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperr.ErrNotFound
	}
	return s.ids.SetRole(ctx, accountID, role)
}

// Block locks the target account out indefinitely.
func (s *AdminService) Block(ctx context.Context, actorID, accountID string) error {
	return s.setLockout(ctx, actorID, accountID, &identity.LockoutForever)
}

// Unblock clears the target account's lockout.
func (s *AdminService) Unblock(ctx context.Context, actorID, accountID string) error {
	return s.setLockout(ctx, actorID, accountID, nil)
}

func (s *AdminService) setLockout(ctx context.Context, actorID, accountID string, until *time.Time) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	err := s.ids.SetLockoutUntil(ctx, accountID, until)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}

// SoftDeleteAccount marks the target account deleted and blocks it.
// Admins cannot delete their own account.
func (s *AdminService) SoftDeleteAccount(ctx context.Context, actorID, accountID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if accountID == actorID {
		return fmt.Errorf("%w: cannot delete your own account", apperr.ErrInvalidOperation)
	}

	err := s.ids.SoftDelete(ctx, accountID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
