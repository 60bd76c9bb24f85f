package service

import (
	"context"
	"log"
	"time"

	"taskman/internal/identity"
	"taskman/internal/model"
	"taskman/internal/repository"
)

// SeedService bootstraps the administrator account and its demo data on
// startup. Every step is idempotent; presence checks deliberately include
// soft-deleted rows so a deleted demo row is never recreated.
type SeedService struct {
	ids        *identity.Manager
	categories *repository.CategoryRepository
	tasks      *repository.TaskRepository
	agenda     *repository.AgendaRepository
}

func NewSeedService(ids *identity.Manager, categories *repository.CategoryRepository, tasks *repository.TaskRepository, agenda *repository.AgendaRepository) *SeedService {
	return &SeedService{ids: ids, categories: categories, tasks: tasks, agenda: agenda}
}

// EnsureSeeded creates the admin account named by the config, assigns it
// the Admin role, and seeds demo data. A blank email or password skips
// seeding entirely.
func (s *SeedService) EnsureSeeded(ctx context.Context, adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	admin, err := s.ids.FindByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if admin == nil {
		admin, err = s.ids.CreateAccount(ctx, adminEmail, adminPassword, "Admin")
		if err != nil {
			return err
		}
		log.Printf("[info] seeded admin account %s", admin.Email)
	}

	if err := s.ids.SetRole(ctx, admin.ID, model.RoleAdmin); err != nil {
		return err
	}

	category, err := s.categories.FirstUnfiltered(ctx, admin.ID)
	if err != nil {
		return err
	}
	if category == nil {
		category = &model.Category{AccountID: admin.ID, Name: defaultCategoryNames[0]}
		if err := s.categories.Create(ctx, category); err != nil {
			return err
		}
		if err := s.categories.Create(ctx, &model.Category{AccountID: admin.ID, Name: defaultCategoryNames[1]}); err != nil {
			return err
		}
	}

	task, err := s.tasks.FirstUnfiltered(ctx, admin.ID)
	if err != nil {
		return err
	}
	if task == nil {
		task = &model.TaskItem{
			AccountID:   admin.ID,
			CategoryID:  category.ID,
			Title:       "Demo task",
			Description: "Seeded example task.",
		}
		if err := s.tasks.Create(ctx, task); err != nil {
			return err
		}
	}

	hasAgenda, err := s.agenda.HasAnyForTaskUnfiltered(ctx, task.ID)
	if err != nil {
		return err
	}
	if !hasAgenda {
		item := model.AgendaItem{
			AccountID:   admin.ID,
			TaskItemID:  task.ID,
			PlannedDate: model.DateOnly(time.Now()),
		}
		if err := s.agenda.Create(ctx, &item); err != nil {
			return err
		}
	}

	return nil
}
