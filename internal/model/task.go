package model

import "time"

// TaskItem is a single to-do entry under a category.
type TaskItem struct {
	ID          uint   `gorm:"primaryKey"`
	AccountID   string `gorm:"index;size:36"`
	CategoryID  uint   `gorm:"index"`
	Title       string
	Description string
	IsCompleted bool `gorm:"default:false"`
	IsDeleted   bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
