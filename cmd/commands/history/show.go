package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fleetworks/fleetenv/internal/history"
	"fleetworks/fleetenv/internal/tui/styles"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one generate run",
		Long: `Show the details of one generate run. A unique ID prefix is enough.

Examples:
  fleetenv history show 3f2a9c1e
  fleetenv history show 3f2a -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	run, err := repo.Get(strings.TrimSpace(args[0]))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("no generate run matches %q", args[0])
		}
		return err
	}

	switch output {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(run)
	case "table", "":
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}

	fields := []styles.Field{
		{Label: "ID", Value: run.ID},
		{Label: "Time", Value: run.Timestamp.Local().Format("2006-01-02 15:04:05")},
		{Label: "Outcome", Value: run.Outcome},
		{Label: "Duration", Value: formatDuration(run.DurationMs)},
		{Label: "Output", Value: orDash(run.OutputDir)},
		{Label: "Backend", Value: orDash(run.BackendURL)},
		{Label: "Frontend", Value: orDash(run.FrontendURL)},
		{Label: "CORS", Value: orDash(run.CORSOrigins)},
		{Label: "Key length", Value: strconv.Itoa(run.KeyLength)},
		{Label: "Keychain", Value: strconv.FormatBool(run.StoredKeys)},
	}
	if len(run.Files) > 0 {
		fields = append(fields, styles.Field{Label: "Files", Value: strings.Join(run.Files, ", ")})
	}
	if run.Detail != "" {
		fields = append(fields, styles.Field{Label: "Detail", Value: run.Detail})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.Fields(fields, 0))
	return nil
}
