// Package identity provides the credential and role-membership store for
// accounts: creation, password checks, lockout, and role assignment.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskman/internal/model"
)

// MinPasswordLength is the shortest password CreateAccount accepts.
const MinPasswordLength = 6

// LockoutForever is the sentinel used to block an account indefinitely.
var LockoutForever = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// Manager owns the account and role tables. It is the only code that
// touches password hashes.
type Manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// CreateAccount registers a new account. Emails are stored lower-cased so
// lookups are case-insensitive.
func (m *Manager) CreateAccount(ctx context.Context, email, password, displayName string) (*model.Account, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if displayName == "" {
		displayName = email
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := model.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := m.db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &account, nil
}

// FindByEmail looks an account up by email, case-insensitively. Returns
// nil without error when no account matches.
func (m *Manager) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	err := m.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(email)).
		First(&account).Error
	switch {
	case err == nil:
		return &account, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find account: %w", err)
	}
}

// FindByID returns the account regardless of its deleted flag, or nil
// when absent.
func (m *Manager) FindByID(ctx context.Context, id string) (*model.Account, error) {
	var account model.Account
	err := m.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	switch {
	case err == nil:
		return &account, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find account: %w", err)
	}
}

// FindActive returns the account only when it exists and is not
// soft-deleted. Callers use it to resolve the acting account before any
// owner-scoped query; nil means default-deny.
func (m *Manager) FindActive(ctx context.Context, id string) (*model.Account, error) {
	account, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil || account.IsDeleted {
		return nil, nil
	}
	return account, nil
}

// ListActive returns all non-deleted accounts ordered by email.
func (m *Manager) ListActive(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := m.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("email ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (m *Manager) CheckPassword(account *model.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

// SetLockoutUntil sets or clears the lockout timestamp. Pass
// LockoutForever to block indefinitely, nil to unblock.
func (m *Manager) SetLockoutUntil(ctx context.Context, accountID string, until *time.Time) error {
	res := m.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", accountID).
		Update("lockout_until", until)
	if res.Error != nil {
		return fmt.Errorf("set lockout: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks the account deleted and forces a permanent lockout in
// the same update, so a deleted account stays unable to authenticate even
// if its lockout is later cleared by mistake.
func (m *Manager) SoftDelete(ctx context.Context, accountID string) error {
	res := m.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"is_deleted":    true,
			"lockout_until": LockoutForever,
		})
	if res.Error != nil {
		return fmt.Errorf("delete account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetRole assigns exactly one role to the account: membership in every
// other role is dropped and the target role added, all in one
// transaction. Idempotent; the account always ends up with exactly one
// role, never zero or two.
func (m *Manager) SetRole(ctx context.Context, accountID, role string) error {
	if !model.ValidRole(role) {
		return fmt.Errorf("unknown role %q", role)
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ? AND role <> ?", accountID, role).
			Delete(&model.AccountRole{}).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&model.AccountRole{}).
			Where("account_id = ? AND role = ?", accountID, role).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		return tx.Create(&model.AccountRole{AccountID: accountID, Role: role}).Error
	})
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}

// Roles returns the role names held by the account.
func (m *Manager) Roles(ctx context.Context, accountID string) ([]string, error) {
	var roles []string
	if err := m.db.WithContext(ctx).Model(&model.AccountRole{}).
		Where("account_id = ?", accountID).
		Order("role ASC").
		Pluck("role", &roles).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// IsInRole reports whether the account holds the given role.
func (m *Manager) IsInRole(ctx context.Context, accountID, role string) (bool, error) {
	var n int64
	if err := m.db.WithContext(ctx).Model(&model.AccountRole{}).
		Where("account_id = ? AND role = ?", accountID, role).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return n > 0, nil
}

// NormalizeEmail canonicalizes an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
