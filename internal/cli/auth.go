package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRegisterCommand(app *App) *cobra.Command {
	var password, displayName string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := app.Auth.Register(cmd.Context(), args[0], password, displayName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created. You can now log in.\n", account.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (required)")
	cmd.Flags().StringVar(&displayName, "name", "", "display name (defaults to the email)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Authenticate and start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, roles, err := app.Auth.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := SaveSession(app.Config.SessionFile, account.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", account.Email, strings.Join(roles, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ClearSession(app.Config.SessionFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actorID, err := app.currentAccountID(ctx)
			if err != nil {
				return err
			}
			account, err := app.Identity.FindActive(ctx, actorID)
			if err != nil {
				return err
			}
			roles, err := app.Identity.Roles(ctx, actorID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", account.Email, strings.Join(roles, ", "))
			return nil
		},
	}
}
