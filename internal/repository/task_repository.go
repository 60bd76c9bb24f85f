package repository

import (
	"context"

	"gorm.io/gorm"

	"taskman/internal/apperr"
	"taskman/internal/model"
)

// StatusFilter narrows task listings by completion state.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusOpen
	StatusCompleted
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.TaskItem) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return apperr.Storage("create task", err)
	}
	return nil
}

func (r *TaskRepository) ListByCategory(ctx context.Context, accountID string, categoryID uint, filter StatusFilter) ([]model.TaskItem, error) {
	q := r.db.WithContext(ctx).Scopes(OwnedBy(accountID)).
		Where("category_id = ?", categoryID)

	switch filter {
	case StatusOpen:
		q = q.Where("is_completed = ?", false)
	case StatusCompleted:
		q = q.Where("is_completed = ?", true)
	}

	var tasks []model.TaskItem
	if err := q.Order("is_completed ASC, title ASC").Find(&tasks).Error; err != nil {
		return nil, apperr.Storage("list tasks", err)
	}
	return tasks, nil
}

// FindOwned returns the task only when it belongs to the account and is
// not deleted.
func (r *TaskRepository) FindOwned(ctx context.Context, accountID string, taskID uint) (*model.TaskItem, error) {
	var task model.TaskItem
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(accountID)).
		First(&task, taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.TaskItem) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return apperr.Storage("save task", err)
	}
	return nil
}

// CountByOwner counts non-deleted tasks; completed narrows to one
// completion state when non-nil.
func (r *TaskRepository) CountByOwner(ctx context.Context, accountID string, completed *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.TaskItem{}).Scopes(OwnedBy(accountID))
	if completed != nil {
		q = q.Where("is_completed = ?", *completed)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, apperr.Storage("count tasks", err)
	}
	return n, nil
}

// FirstUnfiltered returns the oldest task for the account including
// soft-deleted rows. Seeding only.
func (r *TaskRepository) FirstUnfiltered(ctx context.Context, accountID string) (*model.TaskItem, error) {
	var task model.TaskItem
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		First(&task).Error
	switch {
	case err == nil:
		return &task, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, apperr.Storage("find task", err)
	}
}

// SoftDeleteCascade marks the task and its agenda entries deleted in one
// transaction. Returns false when the task is missing or not owned.
func (r *TaskRepository) SoftDeleteCascade(ctx context.Context, accountID string, taskID uint) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.TaskItem{}).
			Where("id = ?", taskID).
			Scopes(OwnedBy(accountID)).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		return tx.Model(&model.AgendaItem{}).
			Where("task_item_id = ?", taskID).
			Scopes(OwnedBy(accountID)).
			Update("is_deleted", true).Error
	})
	if err != nil {
		return false, apperr.Storage("delete task", err)
	}
	return found, nil
}
