package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"taskman/internal/service"
)

// newScheduler builds the remind scheduler: a fixed daily time when
// configured, otherwise a repeating interval.
func newScheduler(app *App, job func()) *service.SchedulerService {
	scheduler := service.NewSchedulerService(time.Local)
	if app.Config.RemindAt != "" {
		if _, err := scheduler.ScheduleDaily(app.Config.RemindAt, job); err == nil {
			return scheduler
		}
		log.Printf("[warn] invalid TASKMAN_REMIND_AT %q, falling back to interval", app.Config.RemindAt)
	}
	if _, err := scheduler.ScheduleInterval(app.Config.RemindInterval, job); err != nil {
		log.Printf("[warn] schedule remind: %v", err)
	}
	return scheduler
}

func newReportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show task and agenda KPIs (Admin or PowerUser)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			report, err := app.Reports.KPIs(ctx, actorID, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total tasks:       %d\n", report.TotalTasks)
			fmt.Fprintf(out, "Open tasks:        %d\n", report.OpenTasks)
			fmt.Fprintf(out, "Completed tasks:   %d\n", report.CompletedTasks)
			fmt.Fprintf(out, "Agenda today:      %d\n", report.AgendaToday)
			fmt.Fprintf(out, "Agenda next 7 days: %d\n", report.AgendaNext7Days)
			return nil
		},
	}
}

func newRemindCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the daily agenda summary loop until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}

			printSummary := func() {
				jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				summary, err := app.Reports.DailySummary(jobCtx, actorID, time.Now())
				if err != nil {
					log.Printf("[warn] summary: %v", err)
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), summary)
			}

			scheduler := newScheduler(app, printSummary)
			scheduler.Start()
			defer scheduler.Stop()

			// Print one summary immediately so the loop is visible.
			printSummary()

			<-ctx.Done()
			return nil
		},
	}
}
