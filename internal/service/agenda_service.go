package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskman/internal/apperr"
	"taskman/internal/identity"
	"taskman/internal/model"
	"taskman/internal/repository"
)

// AgendaService plans tasks onto calendar days. Planned dates carry
// date-only semantics; any time-of-day on input is discarded.
type AgendaService struct {
	agenda *repository.AgendaRepository
	tasks  *repository.TaskRepository
	ids    *identity.Manager
}

func NewAgendaService(agenda *repository.AgendaRepository, tasks *repository.TaskRepository, ids *identity.Manager) *AgendaService {
	return &AgendaService{agenda: agenda, tasks: tasks, ids: ids}
}

// Plan creates an agenda entry for one of the actor's tasks. The
// owner-scoped task lookup guarantees the entry's owner equals the
// referenced task's owner.
func (s *AgendaService) Plan(ctx context.Context, actorID string, taskID uint, date time.Time) (*model.AgendaItem, error) {
	task, err := s.tasks.FindOwned(ctx, actorID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}

	item := model.AgendaItem{
		AccountID:   actorID,
		TaskItemID:  task.ID,
		PlannedDate: model.DateOnly(date),
	}
	if err := s.agenda.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListForDate returns the actor's agenda for one calendar day with the
// referenced tasks loaded. A deleted or unknown actor gets an empty list.
func (s *AgendaService) ListForDate(ctx context.Context, actorID string, date time.Time) ([]model.AgendaItem, error) {
	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return []model.AgendaItem{}, nil
	}
	return s.agenda.ListForDate(ctx, actorID, date)
}

// Reschedule moves an agenda entry to another day.
func (s *AgendaService) Reschedule(ctx context.Context, actorID string, agendaID uint, newDate time.Time) error {
	item, err := s.agenda.FindOwned(ctx, actorID, agendaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find agenda item: %w", err)
	}

	item.PlannedDate = model.DateOnly(newDate)
	return s.agenda.Save(ctx, item)
}

// SoftDelete marks a single agenda entry deleted.
func (s *AgendaService) SoftDelete(ctx context.Context, actorID string, agendaID uint) error {
	found, err := s.agenda.SoftDelete(ctx, actorID, agendaID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrNotFound
	}
	return nil
}
