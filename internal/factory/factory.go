package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/dependencies/random"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/challenger"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/opponent"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage/file"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage/memory"
	redisstorage "github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage/redis"
)

// Challenger source type constants
const (
	SourceTypeMemory = "memory"
	SourceTypeFile   = "file"
	SourceTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Random random.Random
	Picker opponent.Picker

	// Services
	Registry       *challenger.Registry
	GameController *game.Controller

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// SourceType selects where challenger definitions are read from
	// ("memory", "file" or "redis"). If empty, defaults to "memory"
	SourceType string
	// Challengers is the definition list for the memory source
	Challengers []model.ChallengerDefinition
	// ChallengersFile is the YAML path for the file source
	ChallengersFile string
	// RedisConfig holds Redis connection settings (required if SourceType is "redis")
	RedisConfig *redisstorage.Config
	// OpponentMode selects how challenger picks are obtained. If empty,
	// defaults to "http"
	OpponentMode opponent.Mode
	// OpponentTimeout bounds each call to a challenger service
	OpponentTimeout time.Duration
}

// New creates a new application with all dependencies wired. The challenger
// registry is loaded and validated here, so a returned App is ready to serve.
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	source, closer, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	registry, err := challenger.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	rnd := random.New()

	var picker opponent.Picker
	switch cfg.OpponentMode {
	case "", opponent.ModeHTTP:
		if err := requireEndpoints(registry); err != nil {
			return nil, err
		}
		picker = opponent.NewHTTPPicker(&http.Client{}, cfg.OpponentTimeout, logger)
	case opponent.ModeRandom:
		picker = opponent.NewRandomPicker(rnd)
	default:
		return nil, errors.New("invalid OpponentMode: must be 'http' or 'random'")
	}

	logger.Info("challengers loaded",
		slog.Int("count", registry.Len()),
		slog.String("source", sourceType(cfg)),
		slog.String("opponent_mode", string(cfg.OpponentMode)),
	)

	return newWithDependencies(registry, rnd, picker, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(registry *challenger.Registry, rnd random.Random, picker opponent.Picker, logger *slog.Logger) *App {
	return &App{
		Random:         rnd,
		Picker:         picker,
		Registry:       registry,
		GameController: game.NewController(registry, picker, logger),
	}
}

func sourceType(cfg Config) string {
	if cfg.SourceType == "" {
		return SourceTypeMemory
	}
	return cfg.SourceType
}

func newSource(cfg Config) (storage.ChallengerSource, io.Closer, error) {
	switch sourceType(cfg) {
	case SourceTypeMemory:
		return memory.New(cfg.Challengers...), nil, nil
	case SourceTypeFile:
		if cfg.ChallengersFile == "" {
			return nil, nil, errors.New("ChallengersFile required when SourceType is file")
		}
		return file.New(cfg.ChallengersFile), nil, nil
	case SourceTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when SourceType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, &model.ConfigurationError{Index: -1, Reason: "connect to redis", Err: err}
		}
		return store, store, nil
	default:
		return nil, nil, errors.New("invalid SourceType: must be 'memory', 'file' or 'redis'")
	}
}

// requireEndpoints rejects challengers that cannot be called in http mode
func requireEndpoints(registry *challenger.Registry) error {
	for i, c := range registry.List() {
		if c.Endpoint == "" {
			return &model.ConfigurationError{Index: i, Reason: "endpoint is empty for challenger " + c.Name}
		}
	}
	return nil
}
