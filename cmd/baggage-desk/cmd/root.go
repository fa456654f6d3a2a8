package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/baggage-desk/internal/config"
	"github.com/oshokin/baggage-desk/internal/repository/report"
	"github.com/oshokin/baggage-desk/internal/service/desk"
	"github.com/oshokin/baggage-desk/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from the configuration.
	serverAddress string

	// rootCmd represents the base command of the desk client.
	rootCmd = &cobra.Command{
		Use:   "baggage-desk",
		Short: "Operate the baggage registry: passengers, bags, movements and claims.",
		Long: `Client for the baggage registry server.

Register passengers and bags, record checkpoint movements, change bag statuses,
raise loss or damage claims and settle every open claim. Loss claims are paid
in full, damage claims at 50% of the claimed amount.`,
		SilenceUsage: true,
	}
)

// Execute runs the baggage-desk CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runAction runs a desk action with the global flags.
func runAction(cmd *cobra.Command, action desk.Action) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return desk.Run(ctx, &desk.Options{
		ConfigPath:    cfgPath,
		ServerAddress: serverAddress,
		Out:           cmd.OutOrStdout(),
	}, action)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "server address, overrides the configuration")

	rootCmd.AddCommand(
		newPassengerCommand(),
		newBagCommand(),
		newClaimCommand(),
		&cobra.Command{
			Use:   "journal",
			Short: "Print the registry event journal.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAction(cmd, desk.Journal())
			},
		},
		&cobra.Command{
			Use:   "report [file]",
			Short: "Save a JSON report of the whole registry (default " + config.DefaultReportFilename + ").",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := config.DefaultReportFilename
				if len(args) > 0 {
					path = args[0]
				}

				return runAction(cmd, desk.Report(report.NewFileRepository(path)))
			},
		},
	)
}
