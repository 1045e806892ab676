package cli

import (
	"fmt"

	"assetdesk/apperrors"
	"assetdesk/models"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLoginCmd(r *runner) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			user, err := app.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(r *runner) *cobra.Command {
	var req models.RegisterReq
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (does not sign in)",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			if err := app.Session.Register(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registration successful. You can now sign in.")
			return nil
		}),
	}
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Account password")
	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department")
	cmd.Flags().StringVar(&req.ContactNumber, "contact", "", "Contact number")
	cmd.Flags().StringVar(&req.Address, "address", "", "Address")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "Gender")
	return cmd
}

func newLogoutCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		}),
	}
}

func newWhoamiCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			user := app.Session.CurrentUser()
			if user == nil {
				return errors.Wrap(apperrors.ErrUnauthorized, "not signed in")
			}
			return printJSON(cmd.OutOrStdout(), user)
		}),
	}
}

func newRefreshCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the session token for a fresh one",
		RunE: r.run(func(cmd *cobra.Command, app *App, args []string) error {
			if _, err := app.Session.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token refreshed")
			return nil
		}),
	}
}
