package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskman/internal/apperr"
	"taskman/internal/identity"
	"taskman/internal/model"
	"taskman/internal/repository"
)

// Default category names created for every fresh account.
var defaultCategoryNames = []string{"General", "Work"}

// CategoryService wraps category business rules: owner scoping, default
// seeding, and the soft-delete cascade down to tasks and agenda entries.
type CategoryService struct {
	repo *repository.CategoryRepository
	ids  *identity.Manager
}

func NewCategoryService(repo *repository.CategoryRepository, ids *identity.Manager) *CategoryService {
	return &CategoryService{repo: repo, ids: ids}
}

// List returns the actor's categories ordered by name. A deleted or
// unknown actor gets an empty list, not an error.
func (s *CategoryService) List(ctx context.Context, actorID string) ([]model.Category, error) {
	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return []model.Category{}, nil
	}
	return s.repo.ListByOwner(ctx, actorID)
}

// Create adds a category owned by the actor.
func (s *CategoryService) Create(ctx context.Context, actorID, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperr.ErrInvalidOperation)
	}

	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.ErrNotFound
	}

	category := model.Category{AccountID: actorID, Name: name}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Rename changes a category's name. A category that is missing or owned
// by another account is reported as not found.
func (s *CategoryService) Rename(ctx context.Context, actorID string, categoryID uint, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: category name is required", apperr.ErrInvalidOperation)
	}

	category, err := s.repo.FindOwned(ctx, actorID, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}

	category.Name = newName
	return s.repo.Save(ctx, category)
}

// SoftDelete marks the category, its tasks, and their agenda entries
// deleted in a single commit.
func (s *CategoryService) SoftDelete(ctx context.Context, actorID string, categoryID uint) error {
	found, err := s.repo.SoftDeleteCascade(ctx, actorID, categoryID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrNotFound
	}
	return nil
}

// EnsureDefaults creates the default categories for an account that owns
// none. Idempotent: an account with any non-deleted category, including a
// user-created one, is left alone.
func (s *CategoryService) EnsureDefaults(ctx context.Context, actorID string) error {
	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return apperr.ErrNotFound
	}

	n, err := s.repo.CountByOwner(ctx, actorID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, name := range defaultCategoryNames {
		if err := s.repo.Create(ctx, &model.Category{AccountID: actorID, Name: name}); err != nil {
			return err
		}
	}
	return nil
}
