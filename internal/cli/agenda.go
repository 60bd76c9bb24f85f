package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAgendaCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Plan tasks on calendar days",
	}

	cmd.AddCommand(
		newAgendaShowCommand(app),
		newAgendaPlanCommand(app),
		newAgendaRescheduleCommand(app),
		newAgendaRemoveCommand(app),
	)
	return cmd
}

func newAgendaShowCommand(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the agenda for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			items, err := app.Agenda.ListForDate(ctx, actorID, date)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing planned.")
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\ttask %d\t%s", item.ID, item.TaskItemID, item.Task.Title)
				if item.Task.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " - %s", item.Task.Description)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "day to show, YYYY-MM-DD (defaults to today)")
	return cmd
}

func newAgendaPlanCommand(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "plan <task-id>",
		Short: "Plan a task for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			item, err := app.Agenda.Plan(ctx, actorID, taskID, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned as agenda entry %d for %s.\n",
				item.ID, item.PlannedDate.Format(dateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "day to plan, YYYY-MM-DD (defaults to today)")
	return cmd
}

func newAgendaRescheduleCommand(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "reschedule <id>",
		Short: "Move an agenda entry to another day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			if err := app.Agenda.Reschedule(ctx, actorID, id, date); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Agenda entry rescheduled.")
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "new day, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newAgendaRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an agenda entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Agenda.SoftDelete(ctx, actorID, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Agenda entry deleted.")
			return nil
		},
	}
}
