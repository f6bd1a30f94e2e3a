package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := rootCmd()

	want := []string{"generate", "key", "normalize", "show", "secrets", "config", "history"}
	for _, name := range want {
		found, _, err := root.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestRootCmd_VerboseInstallsLogger(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := rootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--verbose", "normalize", "https://api.example.com/"})

	var debugEnabled bool
	normalize, _, _ := root.Find([]string{"normalize"})
	run := normalize.RunE
	normalize.RunE = func(c *cobra.Command, args []string) error {
		debugEnabled = zap.L().Core().Enabled(zap.DebugLevel)
		return run(c, args)
	}

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !debugEnabled {
		t.Error("expected --verbose to enable debug logging")
	}
	if strings.TrimSpace(stdout.String()) != "https://api.example.com" {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if zap.L().Core().Enabled(zap.DebugLevel) {
		t.Error("expected the previous logger to be restored")
	}
}
