package config

import (
	"nathanbeddoewebdev/cfzone/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cfzone configuration",
		Long: "View and modify persistent cfzone settings.\n\n" +
			"Configuration is stored at ~/.config/cfzone/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
