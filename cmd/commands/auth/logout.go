package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/cfzone/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long: `Remove all stored Cloudflare credentials from the local keychain.

Example:
  cfzone auth logout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := auth.Clear(auth.DefaultStore())
			if errors.Is(err, auth.ErrCredentialsNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No credentials stored.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed stored credentials.")
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
