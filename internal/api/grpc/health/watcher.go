package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

const defaultInterval = 15 * time.Second

// Watcher mirrors store reachability into a gRPC health server.
type Watcher struct {
	pinger   model.Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

// NewWatcher creates a Watcher probing pinger every interval. A non-positive
// interval uses 15s.
func NewWatcher(pinger model.Pinger, server *health.Server, interval time.Duration, logger *logger.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Watcher{pinger: pinger, server: server, interval: interval, logger: logger}
}

// Run probes immediately and then on every tick until ctx is done, when it
// marks every service NOT_SERVING.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			w.server.Shutdown()
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check runs a single probe and updates the overall serving status.
func (w *Watcher) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := w.pinger.Ping(pingCtx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		w.logger.Warn("Health watcher: store ping failed",
			"error", err.Error())
	}

	w.server.SetServingStatus("", status)
	return status
}
