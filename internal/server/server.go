package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/handler"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, workers *workers.Workers, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         workers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	return s.serve(ctx, ln)
}

// serve runs the HTTP server and the workers on ln until ctx is done or one
// of them fails, then drains in-flight requests within the shutdown timeout.
func (s *server) serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(ln)
	})

	if s.workers != nil && s.workers.Len() > 0 {
		g.Go(func() error {
			s.workers.Run(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		return s.httpServer.shutdown(shutdownCtx)
	})

	return g.Wait()
}
