package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/handler"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)

	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)

	return handlers
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.Server{}, nil, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandler(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, nil, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, s)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: 3 * time.Second, ShutdownTimeout: time.Second}

	s, err := NewServer(newTestHandlers(t), cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.Equal(t, ":8080", srv.httpServer.server.Addr)
	assert.Equal(t, 3*time.Second, srv.httpServer.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, srv.httpServer.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
	assert.Equal(t, time.Second, srv.shutdownTimeout)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second, ShutdownTimeout: 5 * time.Second}
	s, err := NewServer(newTestHandlers(t), cfg, nil, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.(*server).serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"version":"1.2.3"}`, string(body))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

type countingWorker struct {
	runs    atomic.Int32
	stopped atomic.Bool
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
	c.stopped.Store(true)
}

func TestServer_RunsWorkersUntilShutdown(t *testing.T) {
	worker := &countingWorker{}
	ws := workers.NewWorkersOf(worker)

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t), cfg, ws, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.(*server).serve(ctx, ln) }()

	assert.Eventually(t, func() bool { return worker.runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)
	assert.True(t, worker.stopped.Load())
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String(), ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t), cfg, nil, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}
