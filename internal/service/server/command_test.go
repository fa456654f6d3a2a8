package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oshokin/baggage-desk/internal/logger"
	"github.com/oshokin/baggage-desk/internal/service/common"
)

// TestResolveListenAddress covers override, port extraction and errors.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("desk.example.com:50061", "")
	require.NoError(t, err)
	require.Equal(t, ":50061", addr)

	addr, err = resolveListenAddress("desk.example.com:50061", "127.0.0.1:9000")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}

// TestRun_MissingConfig fails fast when settings cannot be loaded.
func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{ConfigPath: t.TempDir() + "/missing.yaml"})
	require.Error(t, err)
}

// TestLoggingInterceptor checks the operator and method reach handler logs.
func TestLoggingInterceptor(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	base := logger.ToContext(context.Background(), zap.New(core).Sugar())
	interceptor := loggingInterceptor(base)

	info := &grpc.UnaryServerInfo{FullMethod: "/baggage.v1.BaggageDesk/LocateBag"}
	ctx := metadata.NewIncomingContext(
		context.Background(),
		metadata.Pairs(common.OperatorMetadataKey, "agent@desk-2"),
	)

	_, err := interceptor(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		logger.Info(ctx, "inside handler")

		return nil, status.Error(codes.NotFound, "bag")
	})
	require.Equal(t, codes.NotFound, status.Code(err))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "agent@desk-2", entries[0].ContextMap()["operator"])
	require.Equal(t, info.FullMethod, entries[0].ContextMap()["method"])
	require.Equal(t, "Call failed", entries[1].Message)
	require.Equal(t, "NotFound", entries[1].ContextMap()["code"])
}
