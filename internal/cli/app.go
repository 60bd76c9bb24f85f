// Package cli is the presentation layer: thin cobra commands over the
// service operations. One logged-in account at a time; the session file
// carries the acting account ID between invocations.
package cli

import (
	"context"
	"fmt"

	"taskman/internal/config"
	"taskman/internal/identity"
	"taskman/internal/service"
)

// App bundles the wired services handed to every command.
type App struct {
	Config     config.Config
	Identity   *identity.Manager
	Auth       *service.AuthService
	Admin      *service.AdminService
	Categories *service.CategoryService
	Tasks      *service.TaskService
	Agenda     *service.AgendaService
	Reports    *service.ReportService
}

// currentAccountID resolves the logged-in account from the session file
// and verifies it still exists and is not deleted.
func (a *App) currentAccountID(ctx context.Context) (string, error) {
	id, err := LoadSession(a.Config.SessionFile)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("not logged in (run 'taskman login' first)")
	}

	account, err := a.Identity.FindActive(ctx, id)
	if err != nil {
		return "", err
	}
	if account == nil {
		// Stale session for a deleted account; drop it.
		_ = ClearSession(a.Config.SessionFile)
		return "", fmt.Errorf("session expired, log in again")
	}
	return account.ID, nil
}
