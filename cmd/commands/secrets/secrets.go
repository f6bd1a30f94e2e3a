// Package secrets provides the "secrets" command group for keys saved to the
// OS keychain by "fleetenv generate --store-keys".
package secrets

import (
	"fmt"
	"strings"

	"fleetworks/fleetenv/internal/deploy/domain"
	"fleetworks/fleetenv/internal/secrets"

	"github.com/spf13/cobra"
)

// storeFactory returns the store used by every subcommand. Tests override it.
var storeFactory = secrets.DefaultStore

// NewCommand returns the "secrets" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Read or remove keys saved in the OS keychain",
		Long: "Read or remove keys saved by \"fleetenv generate --store-keys\".\n\n" +
			"Names: " + strings.Join(Names(), ", "),
		SilenceUsage: true,
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}

// Names lists every keychain entry generate can write.
func Names() []string {
	names := make([]string, 0, len(domain.Roles)+1)
	for _, r := range domain.Roles {
		names = append(names, string(r))
	}
	return append(names, secrets.AppSecretName)
}

// resolveName maps user input to a known entry name.
func resolveName(raw string) (string, error) {
	name := secrets.Normalize(raw)
	if name == secrets.AppSecretName {
		return name, nil
	}
	if role, ok := domain.ParseRole(name); ok {
		return string(role), nil
	}
	return "", fmt.Errorf("unknown secret %q (valid: %s)", raw, strings.Join(Names(), ", "))
}
