// Package history provides the "history" command group over the local record
// of generate runs.
package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage generation history",
		Long: "View a local record of \"fleetenv generate\" runs and prune old entries.\n\n" +
			"History is stored locally in ~/.config/fleetenv/fleetenv.db. Keys are never recorded.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
