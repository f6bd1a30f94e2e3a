package secrets

import (
	"errors"
	"fmt"

	"fleetworks/fleetenv/internal/secrets"
	"fleetworks/fleetenv/internal/ui"

	"github.com/spf13/cobra"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>...",
		Short: "Remove stored keys",
		Long: `Remove keys from the OS keychain. Use --all to remove every entry.

Examples:
  fleetenv secrets delete admin
  fleetenv secrets delete --all`,
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("all", false, "Remove every stored key")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	var names []string
	switch {
	case all && len(args) > 0:
		return fmt.Errorf("--all cannot be combined with names")
	case all:
		names = Names()
	case len(args) == 0:
		return fmt.Errorf("a name or --all is required")
	default:
		for _, raw := range args {
			name, err := resolveName(raw)
			if err != nil {
				return err
			}
			names = append(names, name)
		}
	}

	store := storeFactory()
	for _, name := range names {
		err := store.Delete(name)
		switch {
		case err == nil:
			ui.Success(cmd.OutOrStdout(), "Removed "+name)
		case errors.Is(err, secrets.ErrNotFound):
			if !all {
				return fmt.Errorf("no %s key stored", name)
			}
		default:
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}
