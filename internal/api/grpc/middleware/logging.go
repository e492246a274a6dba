package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pandey-i/note-taking-app/internal/logger"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
// Health probes arrive often, so successes are logged at debug level.
func (l *Logging) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{
		"method", info.FullMethod,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", code.String(),
	}

	if err != nil {
		if code == codes.Internal || code == codes.Unknown {
			l.logger.Error("gRPC request failed", append(args, "error", err.Error())...)
		} else {
			l.logger.Info("gRPC request rejected", append(args, "error", err.Error())...)
		}
		return resp, err
	}

	l.logger.Debug("gRPC request completed", args...)
	return resp, nil
}
