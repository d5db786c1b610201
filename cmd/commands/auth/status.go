package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/cfzone/internal/cfclient"
	"nathanbeddoewebdev/cfzone/internal/config"
	"nathanbeddoewebdev/cfzone/internal/services/auth"
	"nathanbeddoewebdev/cfzone/internal/styles"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show stored credential status",
		Long: `Show which credential variant is stored.

With --verify the credential is checked against the API.

Example:
  cfzone auth status --verify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			creds, err := auth.Load(store)
			if errors.Is(err, auth.ErrCredentialsNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("auth status failed: %w", err)
			}

			switch creds.Method() {
			case "token":
				fmt.Fprintln(cmd.OutOrStdout(), "Logged in with an API token.")
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in with a Global API Key for %s.\n", creds.Email)
			}

			if !verify {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.SkipVerify = false
			client, err := cfclient.New(store, cfg, logr.Discard())
			if err != nil {
				return err
			}
			if err := client.Open(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), styles.ErrorText.Render("Credential rejected: ")+err.Error())
				return nil
			}
			defer client.Close()

			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render("Credential verified."))
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check the credential against the API")

	return cmd
}
