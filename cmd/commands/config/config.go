package config

import (
	"fleetworks/fleetenv/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage fleetenv configuration",
		Long: "View and modify persistent fleetenv defaults.\n\n" +
			"Configuration is stored at ~/.config/fleetenv/config.json. Profiles and\n" +
			"generate flags override these values.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
