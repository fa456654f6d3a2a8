package desk

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/baggage-desk/internal/config"
	"github.com/oshokin/baggage-desk/internal/logger"
	"github.com/oshokin/baggage-desk/internal/service/common"
)

// Options configures a desk invocation.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides the server address from config when specified.
	ServerAddress string
	// Out receives the printed result; defaults to stdout.
	Out io.Writer
}

// Action is one desk operation run with a connected client.
type Action func(ctx context.Context, client *common.Client, out io.Writer) error

// Run connects to the registry server and runs the action.
func Run(ctx context.Context, opts *Options, action Action) error {
	ctx = logger.WithName(ctx, "baggage-desk")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cfg.ApplyLogLevel()

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	clientOptions := []common.Option{common.WithCallTimeout(cfg.Timeout)}

	// Calls are still served without an operator, the server logs them as unknown.
	if operator, err := common.DetectOperator(); err == nil {
		clientOptions = append(clientOptions, common.WithOperator(operator))
	} else {
		logger.WarnKV(ctx, "Operator detection failed", "error", err)
	}

	client, err := common.Dial(ctx, serverAddress, clientOptions...)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected to baggage server", "server_address", serverAddress)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return action(ctx, client, out)
}
