package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pandey-i/note-taking-app/internal/mocks"
	"github.com/pandey-i/note-taking-app/internal/testutil"
)

func overall(t *testing.T, s *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := s.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestWatcher_Check(t *testing.T) {
	pinger := mocks.NewPinger(t)
	server := health.NewServer()
	w := NewWatcher(pinger, server, time.Second, testutil.MakeNoopLogger())

	pinger.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, w.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, overall(t, server))

	pinger.On("Ping", mock.Anything).Return(nil).Once()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, w.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, overall(t, server))
}

func TestWatcher_DefaultInterval(t *testing.T) {
	w := NewWatcher(mocks.NewPinger(t), health.NewServer(), 0, testutil.MakeNoopLogger())
	assert.Equal(t, defaultInterval, w.interval)
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	pinger := mocks.NewPinger(t)
	pinger.On("Ping", mock.Anything).Return(nil)
	server := health.NewServer()
	w := NewWatcher(pinger, server, 5*time.Millisecond, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return overall(t, server) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, overall(t, server))
}
