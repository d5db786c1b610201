package auth

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/cfzone/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Cloudflare credentials",
		Long: `Store Cloudflare credentials in the local keychain.

By default an API token is stored. Pass --email to store a legacy
email + Global API Key pair instead; storing one variant clears the
other.

Examples:
  cfzone auth login                          # Prompt for an API token
  cfzone auth login --token <token>
  cfzone auth login --email you@example.com  # Prompt for the global key`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			email, err := cmd.Flags().GetString("email")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			email = strings.TrimSpace(email)

			store := auth.DefaultStore()

			if email != "" {
				key, err := cmd.Flags().GetString("key")
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				key = strings.TrimSpace(key)
				if key == "" {
					key = promptSecret("Enter Global API Key: ")
				}
				if key == "" {
					fmt.Fprintln(os.Stderr, "global key cannot be empty")
					return
				}

				if err := auth.SaveGlobalKey(store, email, key); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				fmt.Fprintf(os.Stdout, "Saved Global API Key for %s\n", email)
				return
			}

			token, err := cmd.Flags().GetString("token")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			token = strings.TrimSpace(token)
			if token == "" {
				token = promptSecret("Enter API token: ")
			}
			if token == "" {
				fmt.Fprintln(os.Stderr, "token cannot be empty")
				return
			}

			if err := auth.SaveToken(store, token); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Fprintln(os.Stdout, "Saved API token")
		},
	}

	cmd.Flags().String("token", "", "API token (optional, overrides prompt)")
	cmd.Flags().String("email", "", "Account email, switches to Global API Key auth")
	cmd.Flags().String("key", "", "Global API Key (optional, overrides prompt)")

	return cmd
}

func promptSecret(prompt string) string {
	fmt.Fprint(os.Stdout, prompt)
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ""
	}
	return strings.TrimSpace(string(bytes))
}
