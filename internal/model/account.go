package model

import "time"

// Role names. An account holds exactly one of these at a time; the
// invariant is enforced by the admin service, not by the schema.
const (
	RoleAdmin     = "Admin"
	RolePowerUser = "PowerUser"
	RoleUser      = "User"
)

// Roles lists all known role names.
var Roles = []string{RoleAdmin, RolePowerUser, RoleUser}

// ValidRole reports whether name is one of the three known roles.
func ValidRole(name string) bool {
	for _, r := range Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Account is a registered login. Accounts are never hard-deleted:
// IsDeleted hides them from listings and a forced lockout keeps them
// from authenticating.
type Account struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	DisplayName  string
	IsDeleted    bool       `gorm:"default:false"`
	LockoutUntil *time.Time // nil or past = not locked
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Locked reports whether the account is locked out at the given moment.
func (a *Account) Locked(now time.Time) bool {
	return a.LockoutUntil != nil && a.LockoutUntil.After(now)
}

// AccountRole is one role membership row.
type AccountRole struct {
	AccountID string `gorm:"primaryKey;size:36"`
	Role      string `gorm:"primaryKey;size:16"`
}
