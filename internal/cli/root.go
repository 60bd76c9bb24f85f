package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// NewRootCommand builds the taskman command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskman",
		Short:         "Single-session task manager with categories and a daily agenda",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRegisterCommand(app),
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newCategoryCommand(app),
		newTaskCommand(app),
		newAgendaCommand(app),
		newAdminCommand(app),
		newReportCommand(app),
		newRemindCommand(app),
	)

	return root
}

// parseDate reads a YYYY-MM-DD flag value, defaulting to today.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}
