package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	api "github.com/oshokin/baggage-desk/internal/api/grpc/baggage"
	"github.com/oshokin/baggage-desk/internal/config"
	"github.com/oshokin/baggage-desk/internal/logger"
	"github.com/oshokin/baggage-desk/internal/repository/report"
	"github.com/oshokin/baggage-desk/internal/service/registry"
)

// Options controls the baggage-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress overrides the listen address derived from the config.
	ListenAddress string
	// ReportFile overrides the report written on shutdown.
	ReportFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run serves the registry over gRPC until ctx is canceled.
// On shutdown the registry report is written if a report file is configured.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "baggage-server")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings.ApplyLogLevel()

	reportFile := settings.ReportFile
	if opts.ReportFile != "" {
		reportFile = opts.ReportFile
	}

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	reg := registry.New()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(ctx)))
	api.RegisterBaggageDeskServer(grpcServer, api.NewServer(reg))

	logger.InfoKV(ctx, "Baggage server listening", "listen_address", listenAddress, "report_file", reportFile)

	// done is closed after GracefulStop returns so Run only exits once the
	// server has fully stopped.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done

	if reportFile != "" {
		// ctx is already canceled here, but the file repository ignores it.
		if err := report.Write(ctx, report.NewFileRepository(reportFile), reg.Snapshot(ctx)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress returns override when set, otherwise ":port" taken
// from the configured server address so the server binds on all interfaces.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
