package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCategoryCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage task categories",
	}

	cmd.AddCommand(
		newCategoryListCommand(app),
		newCategoryAddCommand(app),
		newCategoryRenameCommand(app),
		newCategoryRemoveCommand(app),
	)
	return cmd
}

func newCategoryListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			categories, err := app.Categories.List(ctx, actorID)
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories.")
				return nil
			}
			for _, c := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}

func newCategoryAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			category, err := app.Categories.Create(ctx, actorID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %d (%s) created.\n", category.ID, category.Name)
			return nil
		},
	}
}

func newCategoryRenameCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <new-name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
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
			if err := app.Categories.Rename(ctx, actorID, id, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category renamed.")
			return nil
		},
	}
}

func newCategoryRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category and everything under it",
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
			if err := app.Categories.SoftDelete(ctx, actorID, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category deleted, along with its tasks and agenda entries.")
			return nil
		},
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
