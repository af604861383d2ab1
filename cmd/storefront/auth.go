package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commercekit/storefront/internal/client"
)

func (a *app) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the user service and store the credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.client.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			user, err := a.client.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			a.logger.Info().Str("username", user.Username).Msg("logged in")
			return printJSON(user)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Logout(); err != nil {
				return err
			}
			a.logger.Info().Msg("logged out")
			return nil
		},
	}
}

func (a *app) registerCmd() *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  `Create a new account. Registration does not log in - run login afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "full name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently-credentialed user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.client.Session()
			if !sess.IsAuthenticated() {
				return fmt.Errorf("not logged in")
			}

			user, ok := a.client.RestoreSession(cmd.Context())
			if !ok {
				return fmt.Errorf("session is no longer valid (token status: %s)", sess.Status())
			}

			return printJSON(user)
		},
	}
}
