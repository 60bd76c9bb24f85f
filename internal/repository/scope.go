package repository

import "gorm.io/gorm"

// OwnedBy scopes a query to rows owned by the given account and hides
// soft-deleted rows. Every default domain query goes through this scope;
// the Unfiltered variants on the repositories exist only for seeding
// checks and never reach end users.
func OwnedBy(accountID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ? AND is_deleted = ?", accountID, false)
	}
}
