package model

import "time"

// AgendaItem plans a task for a specific day. Only the date matters;
// PlannedDate is always normalized to midnight UTC via DateOnly.
type AgendaItem struct {
	ID          uint   `gorm:"primaryKey"`
	AccountID   string `gorm:"index;size:36"`
	TaskItemID  uint   `gorm:"index"`
	PlannedDate time.Time
	IsDeleted   bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Task        TaskItem `gorm:"foreignKey:TaskItemID"`
}

// DateOnly strips the time-of-day component, keeping the calendar date
// in UTC.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
