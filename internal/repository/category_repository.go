package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskman/internal/apperr"
	"taskman/internal/model"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return apperr.Storage("create category", err)
	}
	return nil
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, accountID string) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(accountID)).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperr.Storage("list categories", err)
	}
	return categories, nil
}

// FindOwned returns the category only when it belongs to the account and
// is not deleted. A miss for any reason is gorm.ErrRecordNotFound.
func (r *CategoryRepository) FindOwned(ctx context.Context, accountID string, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Scopes(OwnedBy(accountID)).
		First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return apperr.Storage("save category", err)
	}
	return nil
}

func (r *CategoryRepository) CountByOwner(ctx context.Context, accountID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).
		Scopes(OwnedBy(accountID)).
		Count(&n).Error; err != nil {
		return 0, apperr.Storage("count categories", err)
	}
	return n, nil
}

// FirstUnfiltered returns the oldest category for the account including
// soft-deleted rows. Seeding only.
func (r *CategoryRepository) FirstUnfiltered(ctx context.Context, accountID string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, apperr.Storage("find category", err)
	}
}

// SoftDeleteCascade marks the category and everything under it deleted:
// the category, its non-deleted tasks, and the agenda entries referencing
// those tasks. All rows commit in one transaction; a crash mid-cascade
// never leaves the category deleted with its tasks still visible.
// Returns false when the category does not exist or is not owned by the
// account (the two cases are indistinguishable).
func (r *CategoryRepository) SoftDeleteCascade(ctx context.Context, accountID string, categoryID uint) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Category{}).
			Where("id = ?", categoryID).
			Scopes(OwnedBy(accountID)).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		var taskIDs []uint
		if err := tx.Model(&model.TaskItem{}).
			Where("category_id = ?", categoryID).
			Scopes(OwnedBy(accountID)).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) == 0 {
			return nil
		}

		if err := tx.Model(&model.TaskItem{}).
			Where("id IN ?", taskIDs).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		return tx.Model(&model.AgendaItem{}).
			Where("task_item_id IN ?", taskIDs).
			Scopes(OwnedBy(accountID)).
			Update("is_deleted", true).Error
	})
	if err != nil {
		return false, apperr.Storage("delete category", err)
	}
	return found, nil
}
