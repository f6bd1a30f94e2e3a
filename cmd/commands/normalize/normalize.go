// Package normalize provides the "normalize" command.
package normalize

import (
	"fmt"

	"fleetworks/fleetenv/internal/envgen"

	"github.com/spf13/cobra"
)

// NewCommand returns the "normalize" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <url>...",
		Short: "Print URLs the way generate writes them",
		Long: `Trim whitespace and remove one trailing slash from each argument,
printing one result per line. This is the exact transformation applied to
every URL written by "fleetenv generate".

Examples:
  fleetenv normalize "https://api.example.com/"
  fleetenv normalize " http://127.0.0.1:9001 " https://fleet.example.com/`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runNormalize,
		SilenceUsage: true,
	}
}

func runNormalize(cmd *cobra.Command, args []string) error {
	for _, raw := range args {
		fmt.Fprintln(cmd.OutOrStdout(), envgen.NormalizeURL(raw))
	}
	return nil
}
