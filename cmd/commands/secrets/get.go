package secrets

import (
	"errors"
	"fmt"

	"fleetworks/fleetenv/internal/secrets"

	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print a stored key",
		Long: `Print a key saved in the OS keychain.

Examples:
  fleetenv secrets get operator
  fleetenv secrets get app-secret`,
		Args:         cobra.ExactArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	name, err := resolveName(args[0])
	if err != nil {
		return err
	}

	value, err := storeFactory().Get(name)
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return fmt.Errorf("no %s key stored; run \"fleetenv generate --store-keys\"", name)
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
