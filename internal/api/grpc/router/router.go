package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/pandey-i/note-taking-app/internal/api/grpc/middleware"
	"github.com/pandey-i/note-taking-app/internal/logger"
)

// Router builds the gRPC server exposing the standard health service.
type Router struct {
	healthServer *health.Server
	logger       *logger.Logger
}

// New creates a Router around healthServer.
func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{healthServer: healthServer, logger: logger}
}

// Register creates the gRPC server with recovery and logging interceptors and
// registers the health and reflection services.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(r.recover)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			logging.HandleGRPC,
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.healthServer)
	reflection.Register(s)

	return s
}

func (r *Router) recover(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", p)
	return status.Error(codes.Internal, "internal server error")
}
