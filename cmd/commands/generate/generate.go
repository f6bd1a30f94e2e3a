// Package generate provides the "generate" command, which writes the backend,
// simulator and frontend env files for a fleet deployment.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fleetworks/fleetenv/internal/config"
	"fleetworks/fleetenv/internal/deploy"
	"fleetworks/fleetenv/internal/deploy/domain"
	deploytui "fleetworks/fleetenv/internal/deploy/tui"
	"fleetworks/fleetenv/internal/history"
	"fleetworks/fleetenv/internal/profile"
	"fleetworks/fleetenv/internal/secrets"
	"fleetworks/fleetenv/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// isTerminal reports whether stdout is interactive. Tests override it.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// NewCommand returns the "generate" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate env files for the backend, simulator and frontend",
		Long: `Generate the environment files for a fleet deployment.

Three files are written to the output directory:

  backend.env     AutoX credentials, API key → role map, CORS origins
  simulator.env   the matching simulator credentials
  frontend.env    API base URL, websocket URL and the operator API key

One API key is generated per role (monitor, operator, admin), plus the
simulator app secret unless --app-secret is given. URLs are trimmed and a
trailing slash is removed.

Values are resolved in order: built-in defaults, "fleetenv config",
--profile, then flags. When --backend-url or --frontend-url is missing and
stdout is a terminal, an interactive wizard asks for the rest.

Examples:
  # Interactive wizard
  fleetenv generate

  # Fully specified
  fleetenv generate \
    --backend-url   https://api.example.com \
    --frontend-url  https://fleet.example.com \
    --simulator-url http://10.0.0.5:9001 \
    --cors-origin   https://staging.example.com

  # From a profile, keeping the keys in the OS keychain
  fleetenv generate --profile deploy.yaml --store-keys`,
		Args:         cobra.NoArgs,
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	cmd.Flags().String("backend-url", "", "Public URL of the backend API")
	cmd.Flags().String("frontend-url", "", "Public URL of the frontend dashboard")
	cmd.Flags().String("simulator-url", "", "URL of the AutoX simulator (default "+domain.DefaultSimulatorURL+")")
	cmd.Flags().StringArray("cors-origin", nil, "Extra CORS origin, or * for any (repeatable)")
	cmd.Flags().String("app-id", "", "Simulator app ID (default "+domain.DefaultAppID+")")
	cmd.Flags().String("app-code", "", "Simulator app code (default "+domain.DefaultAppCode+")")
	cmd.Flags().String("app-secret", "", "Simulator app secret (generated when empty)")
	cmd.Flags().Int("key-length", 0, "Length of generated keys (default 48)")
	cmd.Flags().Int("token-ttl", 0, "AutoX token TTL in seconds (default 3000)")
	cmd.Flags().Bool("auto-reassign", false, "Reassign tasks when a robot goes offline")
	cmd.Flags().StringP("out", "o", "", "Output directory (default "+domain.DefaultOutputDir+")")
	cmd.Flags().Bool("force", false, "Overwrite existing env files")
	cmd.Flags().String("profile", "", "YAML profile with deployment options")
	cmd.Flags().String("save-profile", "", "Write the resolved options to a YAML profile")
	cmd.Flags().Bool("store-keys", false, "Save the generated keys in the OS keychain")
	cmd.Flags().Bool("print-keys", false, "Print the generated keys after writing the files")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	var repo history.Repository
	if r, err := history.Open(); err != nil {
		zap.L().Warn("generation history unavailable", zap.Error(err))
	} else {
		repo = r
	}
	svc := deploy.NewService(secrets.DefaultStore(), repo)
	defer svc.Close()

	start := time.Now()
	var plan *deploy.Plan
	if strings.TrimSpace(opts.BackendURL) == "" || strings.TrimSpace(opts.FrontendURL) == "" {
		if !isTerminal() {
			return fmt.Errorf("--backend-url and --frontend-url are required in non-interactive mode")
		}
		plan, err = deploytui.RunGenerateWizard(svc, opts)
		if errors.Is(err, deploytui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
	} else {
		plan, err = svc.Plan(opts)
	}
	if err != nil {
		svc.RecordFailure(opts, err, time.Since(start))
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	storeKeys, _ := cmd.Flags().GetBool("store-keys")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := svc.Apply(ctx, plan, deploy.ApplyOptions{Force: force, StoreKeys: storeKeys})
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save-profile"); path != "" {
		if err := profile.Save(path, plan.Options); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), "Saved profile "+path)
	}

	printResult(cmd, plan, result, storeKeys)
	return nil
}

// resolveOptions layers defaults, user config, the optional profile and
// explicitly set flags, in that order. URLs are left raw; Plan normalizes
// them exactly once.
func resolveOptions(cmd *cobra.Command) (domain.Options, error) {
	opts := domain.DefaultOptions()

	cfg, err := config.Load()
	if err != nil {
		return opts, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyTo(&opts)

	if path, _ := cmd.Flags().GetString("profile"); strings.TrimSpace(path) != "" {
		opts, err = profile.Load(path, opts)
		if err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	stringFlags := map[string]*string{
		"backend-url":   &opts.BackendURL,
		"frontend-url":  &opts.FrontendURL,
		"simulator-url": &opts.SimulatorURL,
		"app-id":        &opts.AppID,
		"app-code":      &opts.AppCode,
		"app-secret":    &opts.AppSecret,
		"out":           &opts.OutputDir,
	}
	for name, dst := range stringFlags {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	if flags.Changed("cors-origin") {
		origins, _ := flags.GetStringArray("cors-origin")
		opts.ExtraOrigins = append(opts.ExtraOrigins, origins...)
	}
	if flags.Changed("key-length") {
		opts.KeyLength, _ = flags.GetInt("key-length")
	}
	if flags.Changed("token-ttl") {
		opts.TokenTTLSeconds, _ = flags.GetInt("token-ttl")
	}
	if flags.Changed("auto-reassign") {
		opts.AutoReassign, _ = flags.GetBool("auto-reassign")
	}

	return opts, nil
}

func printResult(cmd *cobra.Command, plan *deploy.Plan, result *deploy.Result, stored bool) {
	out := cmd.OutOrStdout()

	ui.Header(out, "Env files written")
	for _, p := range result.Paths {
		ui.Success(out, p)
	}

	fmt.Fprintf(out, "\n  CORS origins: %s\n", plan.CORSOrigins)
	if result.RunID != "" {
		fmt.Fprintf(out, "  Run ID:       %s\n", result.RunID)
	}

	if stored {
		ui.Success(out, "Keys saved to the OS keychain (fleetenv secrets get <role>)")
	} else {
		ui.Warn(out, "Keys exist only in the env files; pass --store-keys to keep a copy in the keychain")
	}

	if printKeys, _ := cmd.Flags().GetBool("print-keys"); printKeys {
		ui.Header(out, "Generated keys (shown only once)")
		for _, role := range domain.Roles {
			fmt.Fprintf(out, "  %-10s %s\n", role, plan.Keys.APIKey(role))
		}
		fmt.Fprintf(out, "  %-10s %s\n", secrets.AppSecretName, plan.Keys.AppSecret)
	}
}
