package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	cfgcmd "fleetworks/fleetenv/cmd/commands/config"
	"fleetworks/fleetenv/cmd/commands/generate"
	historycmd "fleetworks/fleetenv/cmd/commands/history"
	"fleetworks/fleetenv/cmd/commands/key"
	"fleetworks/fleetenv/cmd/commands/normalize"
	secretscmd "fleetworks/fleetenv/cmd/commands/secrets"
	"fleetworks/fleetenv/cmd/commands/show"
	"fleetworks/fleetenv/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var (
		verbose bool
		restore func()
	)

	var cmd = &cobra.Command{
		Use:   "fleetenv",
		Short: "Generate deployment env files for the fleet backend, simulator and frontend",
		Long: `fleetenv generates the environment files needed to deploy the fleet
stack: the backend API, the AutoX simulator and the frontend dashboard.
It generates API keys and app secrets, normalizes service URLs and
assembles the CORS origin list.

Quick start:
  fleetenv generate                                  # Interactive wizard
  fleetenv generate --backend-url https://api.example.com \
                    --frontend-url https://fleet.example.com
  fleetenv key --count 3                             # Print random keys
  fleetenv show deploy/backend.env                   # Inspect a file, secrets masked`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			restore = logging.Install(logging.New(cmd.ErrOrStderr(), verbose))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if restore != nil {
				restore()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(generate.NewCommand())
	cmd.AddCommand(key.NewCommand())
	cmd.AddCommand(normalize.NewCommand())
	cmd.AddCommand(show.NewCommand())
	cmd.AddCommand(secretscmd.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(historycmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var root = rootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
