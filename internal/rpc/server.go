package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// DefaultShutdownTimeout bounds how long Serve waits for in-flight calls
// after its context ends
const DefaultShutdownTimeout = 30 * time.Second

// Server hosts the BotGameManager gRPC API and its health service
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// ServerOption customises a Server
type ServerOption func(*Server)

// WithShutdownTimeout sets how long Serve waits for in-flight calls before
// forcing the server closed. Non-positive values keep the default.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// NewServer listens on addr and registers the services. The controller's
// registry is already loaded, so health reports SERVING immediately.
func NewServer(addr string, gameController *game.Controller, logger *slog.Logger, opts ...ServerOption) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	logger = logger.With(slog.String("component", "grpc"))

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			RequestIDInterceptor(),
			RecoveryInterceptor(logger),
			LoggingInterceptor(logger),
		),
	)
	healthServer := health.NewServer()
	RegisterBotGameManagerServer(grpcServer, NewService(gameController))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	s := &Server{
		listener:        listener,
		grpcServer:      grpcServer,
		health:          healthServer,
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Addr returns the listener address for the server
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve runs the gRPC server until ctx is cancelled. In-flight calls then get
// up to the shutdown timeout to finish before the server is closed.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	defer s.Close()

	s.logger.Info("starting gRPC server", slog.String("addr", s.Addr()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.gracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			s.logger.Info("gRPC server stopped")
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

func (s *Server) gracefulStop() {
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-stopped:
	case <-timer.C:
		s.logger.Warn("graceful stop timed out, closing open calls",
			slog.Duration("timeout", s.shutdownTimeout))
		s.grpcServer.Stop()
		<-stopped
	}
}

// Close stops the server immediately
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
}
