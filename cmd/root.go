package cmd

import (
	"os"

	"nathanbeddoewebdev/cfzone/cmd/commands/audit"
	"nathanbeddoewebdev/cfzone/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/cfzone/cmd/commands/config"
	"nathanbeddoewebdev/cfzone/cmd/commands/record"
	"nathanbeddoewebdev/cfzone/cmd/commands/zone"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "cfzone",
		Short: "A CLI tool for onboarding domains onto Cloudflare DNS",
		Long: `cfzone is a command-line tool for onboarding domains onto Cloudflare.
It registers domains as zones, creates DNS records, and waits for
nameserver delegation to activate a zone.

Quick start:
  cfzone auth login                            # Store your API token
  cfzone zone register example.com             # Register a domain
  cfzone record add example.com --type A --name www --content 1.2.3.4
  cfzone zone wait example.com                 # Block until active`,
	}

	cmd.PersistentFlags().Bool("verbose", false, "Log API requests and responses to stderr")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(zone.NewCommand())
	cmd.AddCommand(record.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
