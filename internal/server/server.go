package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/teller-rehab/teller-api/internal/config"
	"github.com/teller-rehab/teller-api/internal/handler"
	"github.com/teller-rehab/teller-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.shutdownTimeout = cfg.ShutdownTimeout
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.listen(); err != nil {
		return err
	}

	// launch all created servers
	serveErrs := make(chan error, 2)
	if s.httpServer != nil {
		go func() { serveErrs <- s.httpServer.serve() }()
	}
	if s.gRPCServer != nil {
		go func() { serveErrs <- s.gRPCServer.serve() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErrs:
	}

	if err := s.shutdown(); err != nil {
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return runErr
}

// listen binds every configured listener. Already bound listeners are
// released when a later one fails.
func (s *server) listen() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				s.httpServer.close()
			}
			return err
		}
	}
	return nil
}

// shutdown stops all started servers within shutdownTimeout. A zero timeout
// waits for in-flight requests without a deadline.
func (s *server) shutdown() error {
	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if s.shutdownTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
	}
	defer cancel()

	var errs []error

	// finish HTTP server
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.shutdown(ctx))
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.shutdown(ctx))
	}

	return errors.Join(errs...)
}
