package model

import "time"

// Category groups tasks by area (general, work, etc.). Each category is
// owned by exactly one account.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	AccountID string `gorm:"index;size:36"`
	Name      string
	IsDeleted bool `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []TaskItem `gorm:"foreignKey:CategoryID"`
}
