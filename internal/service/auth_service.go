package service

import (
	"context"
	"fmt"
	"time"

	"taskman/internal/apperr"
	"taskman/internal/identity"
	"taskman/internal/model"
)

// AuthService implements registration and the authentication gate.
type AuthService struct {
	ids        *identity.Manager
	categories *CategoryService
}

func NewAuthService(ids *identity.Manager, categories *CategoryService) *AuthService {
	return &AuthService{ids: ids, categories: categories}
}

// Register creates a new account with the User role and seeds its default
// categories.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*model.Account, error) {
	existing, err := s.ids.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrInvalidOperation)
	}

	account, err := s.ids.CreateAccount(ctx, email, password, displayName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidOperation, err)
	}

	if err := s.ids.SetRole(ctx, account.ID, model.RoleUser); err != nil {
		return nil, err
	}

	if err := s.categories.EnsureDefaults(ctx, account.ID); err != nil {
		return nil, err
	}

	return account, nil
}

// Authenticate checks credentials and returns the account with its roles.
// The lockout check runs before the password check, so a locked account
// reports ErrAccountLocked even when the password is correct. A deleted
// account is always locked per SoftDelete, but is rejected here as well.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.Account, []string, error) {
	account, err := s.ids.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	if account.IsDeleted || account.Locked(time.Now()) {
		return nil, nil, apperr.ErrAccountLocked
	}

	if !s.ids.CheckPassword(account, password) {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	roles, err := s.ids.Roles(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}
	return account, roles, nil
}
