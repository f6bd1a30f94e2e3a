package history

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"fleetworks/fleetenv/internal/history"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

const maxURLWidth = 40

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generate runs",
		Long: `List recent generate runs stored locally, newest first.

Examples:
  fleetenv history list
  fleetenv history list --limit 50
  fleetenv history list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of runs to display")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	runs, err := repo.List(limit)
	if err != nil {
		return err
	}

	if output == "json" {
		if runs == nil {
			runs = []history.Run{}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No generate runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tOUTCOME\tDURATION\tOUTPUT\tBACKEND")
	fmt.Fprintln(w, "--\t----\t-------\t--------\t------\t-------")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(run.ID),
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.Outcome,
			formatDuration(run.DurationMs),
			orDash(run.OutputDir),
			orDash(ansi.Truncate(run.BackendURL, maxURLWidth, "…")),
		)
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}
