package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/repository"
)

func newTaskCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskListCommand(app),
		newTaskAddCommand(app),
		newTaskEditCommand(app),
		newTaskDoneCommand(app, true),
		newTaskDoneCommand(app, false),
		newTaskRemoveCommand(app),
	)
	return cmd
}

func parseStatusFilter(raw string) (repository.StatusFilter, error) {
	switch raw {
	case "", "all":
		return repository.StatusAll, nil
	case "open":
		return repository.StatusOpen, nil
	case "completed":
		return repository.StatusCompleted, nil
	default:
		return repository.StatusAll, fmt.Errorf("invalid status %q, expected all, open or completed", raw)
	}
}

func newTaskListCommand(app *App) *cobra.Command {
	var categoryID uint
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			filter, err := parseStatusFilter(status)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.List(ctx, actorID, categoryID, filter)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
				return nil
			}
			for _, t := range tasks {
				mark := " "
				if t.IsCompleted {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t[%s] %s", t.ID, mark, t.Title)
				if t.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " - %s", t.Description)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&categoryID, "category", 0, "category id (required)")
	cmd.Flags().StringVar(&status, "status", "all", "filter: all, open or completed")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newTaskAddCommand(app *App) *cobra.Command {
	var categoryID uint
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task under a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			task, err := app.Tasks.Create(ctx, actorID, categoryID, args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d created.\n", task.ID)
			return nil
		},
	}

	cmd.Flags().UintVar(&categoryID, "category", 0, "category id (required)")
	cmd.Flags().StringVar(&description, "desc", "", "optional description")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newTaskEditCommand(app *App) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's title and description",
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
			if err := app.Tasks.Update(ctx, actorID, id, title, description); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title (required)")
	cmd.Flags().StringVar(&description, "desc", "", "new description")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskDoneCommand(app *App, done bool) *cobra.Command {
	use, short := "done <id>", "Mark a task completed"
	if !done {
		use, short = "undone <id>", "Mark a task open again"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
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
			if err := app.Tasks.SetCompleted(ctx, actorID, id, done); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task updated.")
			return nil
		},
	}
}

func newTaskRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task and its agenda entries",
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
			if err := app.Tasks.SoftDelete(ctx, actorID, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task deleted, along with its agenda entries.")
			return nil
		},
	}
}
