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

// TaskService wraps task business rules. Every operation is scoped to the
// acting account; tasks belonging to other accounts are indistinguishable
// from missing ones.
type TaskService struct {
	tasks      *repository.TaskRepository
	categories *repository.CategoryRepository
	ids        *identity.Manager
}

func NewTaskService(tasks *repository.TaskRepository, categories *repository.CategoryRepository, ids *identity.Manager) *TaskService {
	return &TaskService{tasks: tasks, categories: categories, ids: ids}
}

// Create adds a task under one of the actor's categories. The category
// lookup is owner-scoped, which also guarantees the task's owner equals
// its category's owner.
func (s *TaskService) Create(ctx context.Context, actorID string, categoryID uint, title, description string) (*model.TaskItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", apperr.ErrInvalidOperation)
	}

	category, err := s.categories.FindOwned(ctx, actorID, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}

	task := model.TaskItem{
		AccountID:   actorID,
		CategoryID:  category.ID,
		Title:       title,
		Description: strings.TrimSpace(description),
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the actor's tasks in a category, optionally narrowed to
// open or completed ones. A deleted or unknown actor gets an empty list.
func (s *TaskService) List(ctx context.Context, actorID string, categoryID uint, filter repository.StatusFilter) ([]model.TaskItem, error) {
	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return []model.TaskItem{}, nil
	}
	return s.tasks.ListByCategory(ctx, actorID, categoryID, filter)
}

// Get returns one of the actor's tasks.
func (s *TaskService) Get(ctx context.Context, actorID string, taskID uint) (*model.TaskItem, error) {
	task, err := s.tasks.FindOwned(ctx, actorID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

// Update edits a task's title and description.
func (s *TaskService) Update(ctx context.Context, actorID string, taskID uint, title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: task title is required", apperr.ErrInvalidOperation)
	}

	task, err := s.Get(ctx, actorID, taskID)
	if err != nil {
		return err
	}
	task.Title = title
	task.Description = strings.TrimSpace(description)
	return s.tasks.Save(ctx, task)
}

// SetCompleted toggles a task's completion flag.
func (s *TaskService) SetCompleted(ctx context.Context, actorID string, taskID uint, done bool) error {
	task, err := s.Get(ctx, actorID, taskID)
	if err != nil {
		return err
	}
	task.IsCompleted = done
	return s.tasks.Save(ctx, task)
}

// SoftDelete marks the task and its agenda entries deleted in a single
// commit.
func (s *TaskService) SoftDelete(ctx context.Context, actorID string, taskID uint) error {
	found, err := s.tasks.SoftDeleteCascade(ctx, actorID, taskID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrNotFound
	}
	return nil
}
