package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/opponent"
)

// Challenger source types
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// ServerConfig is the environment configuration of cmd/server
type ServerConfig struct {
	HTTPHost string `env:"RPSLS_HTTP_HOST"`
	HTTPPort int    `env:"RPSLS_HTTP_PORT" envDefault:"8080"`
	GRPCAddr string `env:"RPSLS_GRPC_ADDR" envDefault:":50051"`

	// ShutdownTimeout bounds how long in-flight HTTP requests and gRPC calls
	// may run after a shutdown signal
	ShutdownTimeout time.Duration `env:"RPSLS_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	ChallengersSource string `env:"RPSLS_CHALLENGERS_SOURCE" envDefault:"file"`
	ChallengersFile   string `env:"RPSLS_CHALLENGERS_FILE" envDefault:"config/challengers.yaml"`
	RedisURL          string `env:"RPSLS_REDIS_URL"`
	RedisKey          string `env:"RPSLS_REDIS_CHALLENGERS_KEY"`

	OpponentMode    string        `env:"RPSLS_OPPONENT_MODE" envDefault:"http"`
	OpponentTimeout time.Duration `env:"RPSLS_OPPONENT_TIMEOUT" envDefault:"5s"`

	LogLevel     string `env:"RPSLS_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string `env:"RPSLS_OTEL_ENDPOINT"`
}

// LoadServerConfig parses and validates the server environment
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks values the env parser cannot
func (c ServerConfig) Validate() error {
	var errs []error

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("RPSLS_HTTP_PORT out of range: %d", c.HTTPPort))
	}
	if strings.TrimSpace(c.GRPCAddr) == "" {
		errs = append(errs, errors.New("RPSLS_GRPC_ADDR is required"))
	}

	switch c.ChallengersSource {
	case SourceFile:
		if strings.TrimSpace(c.ChallengersFile) == "" {
			errs = append(errs, errors.New("RPSLS_CHALLENGERS_FILE required when RPSLS_CHALLENGERS_SOURCE=file"))
		}
	case SourceRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			errs = append(errs, errors.New("RPSLS_REDIS_URL required when RPSLS_CHALLENGERS_SOURCE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid RPSLS_CHALLENGERS_SOURCE %q: must be 'file' or 'redis'", c.ChallengersSource))
	}

	if !slices.Contains(opponent.ValidModes(), opponent.Mode(c.OpponentMode)) {
		errs = append(errs, fmt.Errorf("invalid RPSLS_OPPONENT_MODE %q: must be 'http' or 'random'", c.OpponentMode))
	}
	if c.OpponentTimeout < 0 {
		errs = append(errs, errors.New("RPSLS_OPPONENT_TIMEOUT must not be negative"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("RPSLS_SHUTDOWN_TIMEOUT must be positive"))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseLogLevel maps debug|info|warn|error to a slog level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid RPSLS_LOG_LEVEL %q", s)
	}
	return level, nil
}
