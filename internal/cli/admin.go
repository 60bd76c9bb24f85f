package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAdminCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Account administration (Admin role required)",
	}

	cmd.AddCommand(
		newAdminUsersCommand(app),
		newAdminSetRoleCommand(app),
		newAdminBlockCommand(app, true),
		newAdminBlockCommand(app, false),
		newAdminRemoveCommand(app),
	)
	return cmd
}

func newAdminUsersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			accounts, err := app.Admin.ListAccounts(ctx, actorID)
			if err != nil {
				return err
			}
			for _, account := range accounts {
				roles, err := app.Identity.Roles(ctx, account.ID)
				if err != nil {
					return err
				}
				status := ""
				if account.Locked(time.Now()) {
					status = "\t[blocked]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%v%s\n", account.ID, account.Email, roles, status)
			}
			return nil
		},
	}
}

func newAdminSetRoleCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <account-id> <role>",
		Short: "Assign an account's single role (Admin, PowerUser or User)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			if err := app.Admin.SetRole(ctx, actorID, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account is now %s.\n", args[1])
			return nil
		},
	}
}

func newAdminBlockCommand(app *App, block bool) *cobra.Command {
	use, short := "block <account-id>", "Block an account indefinitely"
	if !block {
		use, short = "unblock <account-id>", "Clear an account's lockout"
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
			if block {
				err = app.Admin.Block(ctx, actorID, args[0])
			} else {
				err = app.Admin.Unblock(ctx, actorID, args[0])
			}
			if err != nil {
				return err
			}
			if block {
				fmt.Fprintln(cmd.OutOrStdout(), "Account blocked.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Account unblocked.")
			}
			return nil
		},
	}
}

func newAdminRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <account-id>",
		Short: "Soft-delete an account (kept in storage, blocked forever)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			if err := app.Admin.SoftDeleteAccount(ctx, actorID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account deleted (soft) and blocked.")
			return nil
		},
	}
}
