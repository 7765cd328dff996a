package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/api"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/config"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/factory"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/rpc"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/opponent"
	redisstorage "github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage/redis"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run starts both servers and blocks until they have shut down. It returns
// the process exit code so deferred cleanup runs before main exits.
func run() int {
	// Load configuration from the environment
	cfg, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return 1
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		logger.Error("failed to set up telemetry", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn("telemetry shutdown error", slog.String("error", err.Error()))
		}
	}()

	// Build factory config
	factoryCfg := factory.Config{
		Logger:          logger,
		SourceType:      cfg.ChallengersSource,
		ChallengersFile: cfg.ChallengersFile,
		OpponentMode:    opponent.Mode(cfg.OpponentMode),
		OpponentTimeout: cfg.OpponentTimeout,
	}

	// Configure Redis if the challenger source is redis
	if cfg.ChallengersSource == config.SourceRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		if cfg.RedisKey != "" {
			redisCfg.ChallengersKey = cfg.RedisKey
		}
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application. A bad challenger configuration stops us here,
	// before anything listens.
	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return 1
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.HTTPHost
	serverConfig.Port = cfg.HTTPPort
	serverConfig.ShutdownTimeout = cfg.ShutdownTimeout
	server := api.NewServer(apiRouter, serverConfig, logger)

	grpcServer, err := rpc.NewServer(cfg.GRPCAddr, app.GameController, logger,
		rpc.WithShutdownTimeout(cfg.ShutdownTimeout))
	if err != nil {
		logger.Error("failed to create gRPC server", slog.String("error", err.Error()))
		return 1
	}

	// Start servers in goroutines. The gRPC server drains its own in-flight
	// calls once ctx ends.
	httpErr := make(chan error, 1)
	grpcErr := make(chan error, 1)
	go func() {
		httpErr <- server.Start()
	}()
	go func() {
		grpcErr <- grpcServer.Serve(ctx)
	}()

	logger.Info("server started",
		slog.String("http_addr", server.Addr()),
		slog.String("grpc_addr", grpcServer.Addr()),
	)

	// Wait for shutdown or error
	exitCode := 0
	grpcDone := false
	select {
	case err := <-httpErr:
		if err != nil {
			logger.Error("HTTP server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case err := <-grpcErr:
		grpcDone = true
		if err != nil {
			logger.Error("gRPC server error", slog.String("error", err.Error()))
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}
	stop()

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
		exitCode = 1
	}
	if !grpcDone {
		if err := <-grpcErr; err != nil {
			logger.Error("gRPC shutdown error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	logger.Info("server stopped")
	return exitCode
}
