package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskman/internal/apperr"
	"taskman/internal/identity"
	"taskman/internal/model"
	"taskman/internal/repository"
)

// Report holds the KPI counters shown to admins and power users. All
// counts exclude soft-deleted rows.
type Report struct {
	TotalTasks      int64
	OpenTasks       int64
	CompletedTasks  int64
	AgendaToday     int64
	AgendaNext7Days int64
}

// ReportService builds KPI reports and human-readable daily summaries.
type ReportService struct {
	tasks  *repository.TaskRepository
	agenda *repository.AgendaRepository
	ids    *identity.Manager
}

func NewReportService(tasks *repository.TaskRepository, agenda *repository.AgendaRepository, ids *identity.Manager) *ReportService {
	return &ReportService{tasks: tasks, agenda: agenda, ids: ids}
}

// KPIs computes the actor's task and agenda counters. Only Admin and
// PowerUser accounts may see them.
func (s *ReportService) KPIs(ctx context.Context, actorID string, now time.Time) (*Report, error) {
	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, apperr.ErrUnauthorized
	}

	allowed := false
	for _, role := range []string{model.RoleAdmin, model.RolePowerUser} {
		ok, err := s.ids.IsInRole(ctx, actor.ID, role)
		if err != nil {
			return nil, err
		}
		if ok {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperr.ErrUnauthorized
	}

	report := &Report{}
	if report.TotalTasks, err = s.tasks.CountByOwner(ctx, actorID, nil); err != nil {
		return nil, err
	}
	open, done := false, true
	if report.OpenTasks, err = s.tasks.CountByOwner(ctx, actorID, &open); err != nil {
		return nil, err
	}
	if report.CompletedTasks, err = s.tasks.CountByOwner(ctx, actorID, &done); err != nil {
		return nil, err
	}

	today := model.DateOnly(now)
	if report.AgendaToday, err = s.agenda.CountForRange(ctx, actorID, today, today); err != nil {
		return nil, err
	}
	if report.AgendaNext7Days, err = s.agenda.CountForRange(ctx, actorID, today, today.AddDate(0, 0, 7)); err != nil {
		return nil, err
	}

	return report, nil
}

// DailySummary renders the actor's agenda for the given day as plain
// text, for the remind loop and the agenda command.
func (s *ReportService) DailySummary(ctx context.Context, actorID string, now time.Time) (string, error) {
	actor, err := s.ids.FindActive(ctx, actorID)
	if err != nil {
		return "", err
	}
	if actor == nil {
		return "", apperr.ErrNotFound
	}

	day := model.DateOnly(now)
	items, err := s.agenda.ListForDate(ctx, actorID, day)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Agenda for %s\n", day.Format("2006-01-02")))

	if len(items) == 0 {
		builder.WriteString("  nothing planned\n")
		return strings.TrimRight(builder.String(), "\n"), nil
	}

	for _, item := range items {
		mark := " "
		if item.Task.IsCompleted {
			mark = "x"
		}
		builder.WriteString(fmt.Sprintf("  [%s] %s", mark, strings.TrimSpace(item.Task.Title)))
		if desc := strings.TrimSpace(item.Task.Description); desc != "" {
			builder.WriteString(" - " + desc)
		}
		builder.WriteByte('\n')
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}
