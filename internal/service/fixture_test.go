package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"taskman/internal/identity"
	"taskman/internal/model"
	"taskman/internal/repository"
	"taskman/internal/service"
)

type fixture struct {
	ids        *identity.Manager
	auth       *service.AuthService
	admin      *service.AdminService
	categories *service.CategoryService
	tasks      *service.TaskService
	agenda     *service.AgendaService
	reports    *service.ReportService
	seed       *service.SeedService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	ids := identity.NewManager(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	agendaRepo := repository.NewAgendaRepository(db)

	categories := service.NewCategoryService(categoryRepo, ids)

	return &fixture{
		ids:        ids,
		auth:       service.NewAuthService(ids, categories),
		admin:      service.NewAdminService(ids),
		categories: categories,
		tasks:      service.NewTaskService(taskRepo, categoryRepo, ids),
		agenda:     service.NewAgendaService(agendaRepo, taskRepo, ids),
		reports:    service.NewReportService(taskRepo, agendaRepo, ids),
		seed:       service.NewSeedService(ids, categoryRepo, taskRepo, agendaRepo),
	}
}

// register creates an account through the normal registration flow.
func (f *fixture) register(t *testing.T, email string) *model.Account {
	t.Helper()
	account, err := f.auth.Register(context.Background(), email, "secret1", "")
	require.NoError(t, err)
	return account
}

// registerAdmin creates an account and promotes it to Admin directly.
func (f *fixture) registerAdmin(t *testing.T, email string) *model.Account {
	t.Helper()
	account := f.register(t, email)
	require.NoError(t, f.ids.SetRole(context.Background(), account.ID, model.RoleAdmin))
	return account
}
