package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/baggage-desk/internal/config"
	"github.com/oshokin/baggage-desk/internal/service/server"
	"github.com/oshokin/baggage-desk/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// reportFile overrides the report written on shutdown.
	reportFile string

	// rootCmd represents the base command for running the registry server.
	rootCmd = &cobra.Command{
		Use:   "baggage-server [listen-address]",
		Short: "Run the baggage registry gRPC server.",
		Long: `Starts the gRPC server that owns the baggage registry: passengers, bags,
checkpoint movements and loss/damage claims.

Only the port of server_addr from the configuration is used for listening
(e.g. :50061). A listen address argument overrides it (e.g. 0.0.0.0:9090).
The registry lives in memory; when a report file is configured, a JSON
report of the final registry is written on shutdown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return server.Run(ctx, &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				ReportFile:    reportFile,
			})
		},
	}
)

// Execute runs the baggage-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&reportFile, "report", "r", "", "path of the registry report written on shutdown")
}
