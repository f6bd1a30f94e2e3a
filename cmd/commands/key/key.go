// Package key provides the "key" command, which prints random keys drawn from
// the same alphabet used for generated API keys.
package key

import (
	"fmt"

	"fleetworks/fleetenv/internal/envgen"

	"github.com/spf13/cobra"
)

// NewCommand returns the "key" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print random keys",
		Long: `Print one or more random keys, one per line.

Keys are read from the operating system's secure random source and use the
URL-safe alphabet a-z A-Z 0-9 - _. The command fails if the secure source
is unavailable.

Examples:
  fleetenv key
  fleetenv key --length 64 --count 3`,
		Args:         cobra.NoArgs,
		RunE:         runKey,
		SilenceUsage: true,
	}

	cmd.Flags().IntP("length", "l", envgen.DefaultKeyLength, "Number of characters per key")
	cmd.Flags().IntP("count", "n", 1, "Number of keys to print")

	return cmd
}

func runKey(cmd *cobra.Command, args []string) error {
	length, _ := cmd.Flags().GetInt("length")
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("count must be greater than 0")
	}

	for range count {
		k, err := envgen.GenerateKey(length)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}
