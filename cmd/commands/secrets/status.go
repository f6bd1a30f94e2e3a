package secrets

import (
	"errors"
	"fmt"

	"fleetworks/fleetenv/internal/secrets"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which keys are stored",
		Long: `Show which keys are present in the OS keychain. Values are not printed.

Example:
  fleetenv secrets status`,
		Args:         cobra.NoArgs,
		RunE:         runStatus,
		SilenceUsage: true,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	store := storeFactory()
	for _, name := range Names() {
		_, err := store.Get(name)
		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: stored\n", name)
		case errors.Is(err, secrets.ErrNotFound):
			fmt.Fprintf(cmd.OutOrStdout(), "%s: not stored\n", name)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", name, err)
		}
	}
	return nil
}
