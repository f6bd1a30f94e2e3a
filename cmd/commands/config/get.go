package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fleetworks/fleetenv/internal/config"
	"fleetworks/fleetenv/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal reports whether stdout is interactive. Tests override it.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// notSet is printed for keys without a stored value; generate then falls
// back to its built-in default.
const notSet = "(not set)"

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Show the defaults used by generate",
		Long: "Show the stored defaults that \"fleetenv generate\" starts from.\n\n" +
			"With a key, prints only that value (empty output means generate uses its\n" +
			"built-in default). Without a key, a terminal opens the config editor and a\n" +
			"pipe receives every key as \"name: value\".\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  fleetenv config get                  # editor, or all keys when piped\n" +
			"  fleetenv config get simulator-url\n" +
			"  fleetenv config get --key key-length",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "Key to print (same as the positional argument)")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	name, err := requestedKey(cmd, args)
	if err != nil {
		return err
	}

	if name == "" && isTerminal() {
		if err := tui.RunConfigView(); err != nil {
			return fmt.Errorf("config editor failed: %w", err)
		}
		return nil
	}

	var spec *config.KeySpec
	if name != "" {
		if spec = config.Lookup(name); spec == nil {
			return fmt.Errorf("unknown configuration key %q (valid: %s)", name, strings.Join(config.KeyNames(), ", "))
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if spec == nil {
		printAll(cmd.OutOrStdout(), cfg)
		return nil
	}
	if v := spec.Get(cfg); v != "" {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), notSet)
	}
	return nil
}

// requestedKey returns the key named by the positional argument or --key.
// Naming two different keys is an error.
func requestedKey(cmd *cobra.Command, args []string) (string, error) {
	flagKey, _ := cmd.Flags().GetString("key")
	flagKey = strings.TrimSpace(flagKey)
	if len(args) == 0 {
		return flagKey, nil
	}

	argKey := strings.TrimSpace(args[0])
	if flagKey != "" && config.Lookup(flagKey) != config.Lookup(argKey) {
		return "", fmt.Errorf("conflicting keys %q and --key %q", argKey, flagKey)
	}
	return argKey, nil
}

func printAll(w io.Writer, cfg *config.Config) {
	for _, spec := range config.Keys {
		v := spec.Get(cfg)
		if v == "" {
			v = notSet
		}
		fmt.Fprintf(w, "%s: %s\n", spec.Name, v)
	}
}
