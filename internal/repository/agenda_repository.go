package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"taskman/internal/apperr"
	"taskman/internal/model"
)

// AgendaRepository handles CRUD for agenda entries.
type AgendaRepository struct {
	db *gorm.DB
}

func NewAgendaRepository(db *gorm.DB) *AgendaRepository {
	return &AgendaRepository{db: db}
}

func (r *AgendaRepository) Create(ctx context.Context, item *model.AgendaItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return apperr.Storage("create agenda item", err)
	}
	return nil
}

// ListForDate returns the account's agenda entries for one calendar day,
// with the referenced task preloaded for display.
func (r *AgendaRepository) ListForDate(ctx context.Context, accountID string, day time.Time) ([]model.AgendaItem, error) {
	start := model.DateOnly(day)
	end := start.AddDate(0, 0, 1)

	var items []model.AgendaItem
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(accountID)).
		Where("planned_date >= ? AND planned_date < ?", start, end).
		Order("id ASC").
		Preload("Task").
		Find(&items).Error; err != nil {
		return nil, apperr.Storage("list agenda", err)
	}
	return items, nil
}

// FindOwned returns the agenda entry only when it belongs to the account
// and is not deleted.
func (r *AgendaRepository) FindOwned(ctx context.Context, accountID string, id uint) (*model.AgendaItem, error) {
	var item model.AgendaItem
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(accountID)).
		First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *AgendaRepository) Save(ctx context.Context, item *model.AgendaItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return apperr.Storage("save agenda item", err)
	}
	return nil
}

// SoftDelete marks a single agenda entry deleted. Nothing cascades below
// the agenda level.
func (r *AgendaRepository) SoftDelete(ctx context.Context, accountID string, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.AgendaItem{}).
		Where("id = ?", id).
		Scopes(OwnedBy(accountID)).
		Update("is_deleted", true)
	if res.Error != nil {
		return false, apperr.Storage("delete agenda item", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CountForRange counts non-deleted agenda entries with a planned date in
// [from, to] inclusive, by calendar day.
func (r *AgendaRepository) CountForRange(ctx context.Context, accountID string, from, to time.Time) (int64, error) {
	start := model.DateOnly(from)
	end := model.DateOnly(to).AddDate(0, 0, 1)

	var n int64
	if err := r.db.WithContext(ctx).Model(&model.AgendaItem{}).
		Scopes(OwnedBy(accountID)).
		Where("planned_date >= ? AND planned_date < ?", start, end).
		Count(&n).Error; err != nil {
		return 0, apperr.Storage("count agenda", err)
	}
	return n, nil
}

// HasAnyForTaskUnfiltered reports whether any agenda entry references the
// task, including soft-deleted entries. Seeding only.
func (r *AgendaRepository) HasAnyForTaskUnfiltered(ctx context.Context, taskID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.AgendaItem{}).
		Where("task_item_id = ?", taskID).
		Count(&n).Error; err != nil {
		return false, apperr.Storage("count agenda for task", err)
	}
	return n > 0, nil
}
