package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAuthCommand(opts *RootOptions, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Log in and out of the storefront backend",
	}

	cmd.AddCommand(newLoginCommand(opts, app))
	cmd.AddCommand(newLogoutCommand(opts, app))

	return cmd
}

func newLoginCommand(opts *RootOptions, app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <identifier>",
		Short: "Authenticate and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			sess, err := app.Auth.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", sess.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func newLogoutCommand(opts *RootOptions, app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and drop the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
