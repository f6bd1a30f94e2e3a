// Package show provides the "show" command, which prints a generated env file
// with credential values masked.
package show

import (
	"encoding/json"
	"fmt"

	"fleetworks/fleetenv/internal/envfile"

	"github.com/spf13/cobra"
)

// NewCommand returns the "show" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print an env file with secrets masked",
		Long: `Print the variables of an env file. Values of variables whose names
contain SECRET, KEY, TOKEN or PASSWORD are masked unless --reveal is set.

Examples:
  fleetenv show deploy/backend.env
  fleetenv show deploy/frontend.env --reveal
  fleetenv show deploy/backend.env -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("reveal", false, "Print secret values in full")
	cmd.Flags().StringP("output", "o", "env", "Output format: env or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	reveal, _ := cmd.Flags().GetBool("reveal")
	output, _ := cmd.Flags().GetString("output")

	entries, err := envfile.ParseFile(args[0])
	if err != nil {
		return err
	}
	if !reveal {
		for i := range entries {
			if envfile.IsSecret(entries[i].Key) {
				entries[i].Value = envfile.Mask(entries[i].Value)
			}
		}
	}

	switch output {
	case "env", "":
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", e.Key, e.Value)
		}
		return nil
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(envfile.ToMap(entries))
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}
