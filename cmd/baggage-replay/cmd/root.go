package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/baggage-desk/internal/service/replay"
	"github.com/oshokin/baggage-desk/internal/version"
)

var (
	// reportFile receives the final registry report when set.
	reportFile string
	// quiet hides registry narration.
	quiet bool

	// rootCmd represents the base command for replaying scenarios.
	rootCmd = &cobra.Command{
		Use:   "baggage-replay [scenario.yaml]",
		Short: "Replay a baggage scenario offline and print the claim summary.",
		Long: `Applies a YAML scenario (passengers, bags, movements, status changes, claims)
to a fresh in-memory registry, settles open claims and prints bags, routes and
claims. Without a scenario file the built-in two-passenger demo is replayed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var scenarioPath string
			if len(args) > 0 {
				scenarioPath = args[0]
			}

			return replay.Run(ctx, &replay.Options{
				ScenarioPath: scenarioPath,
				ReportFile:   reportFile,
				Quiet:        quiet,
				Out:          cmd.OutOrStdout(),
			})
		},
	}
)

// Execute runs the baggage-replay CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&reportFile, "report", "r", "", "write the final registry report to this file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide registry narration")
}
