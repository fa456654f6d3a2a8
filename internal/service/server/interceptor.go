package server

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/oshokin/baggage-desk/internal/logger"
	"github.com/oshokin/baggage-desk/internal/service/common"
)

// unknownOperator is logged for calls without operator metadata.
const unknownOperator = "<unknown>"

// loggingInterceptor scopes the request logger with the method and the desk
// operator, so registry narration names who triggered it, and logs the outcome.
func loggingInterceptor(base context.Context) grpc.UnaryServerInterceptor {
	baseLogger := logger.FromContext(base)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		operator, ok := common.OperatorFromContext(ctx)
		if !ok {
			operator = unknownOperator
		}

		ctx = logger.ToContext(ctx, baseLogger)
		ctx = logger.WithKV(ctx, "method", info.FullMethod, "operator", operator)

		started := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			logger.WarnKV(ctx, "Call failed", "code", status.Code(err).String(), "error", err, "took", time.Since(started))
		} else {
			logger.DebugKV(ctx, "Call served", "took", time.Since(started))
		}

		return resp, err
	}
}
