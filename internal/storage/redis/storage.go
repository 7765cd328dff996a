package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage"
)

// Storage is a Redis-backed challenger source
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.ChallengersKey == "" {
		cfg.ChallengersKey = challengersKey()
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.ChallengerSource = (*Storage)(nil)

func (s *Storage) ListChallengerDefinitions(ctx context.Context) ([]model.ChallengerDefinition, error) {
	items, err := s.client.LRange(ctx, s.cfg.ChallengersKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	defs := make([]model.ChallengerDefinition, 0, len(items))
	for i, item := range items {
		var def model.ChallengerDefinition
		if err := json.Unmarshal([]byte(item), &def); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", s.cfg.ChallengersKey, i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// SaveChallengerDefinitions atomically replaces the stored definitions
func (s *Storage) SaveChallengerDefinitions(ctx context.Context, defs []model.ChallengerDefinition) error {
	values := make([]any, 0, len(defs))
	for _, def := range defs {
		data, err := json.Marshal(def)
		if err != nil {
			return err
		}
		values = append(values, data)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.cfg.ChallengersKey)
	if len(values) > 0 {
		pipe.RPush(ctx, s.cfg.ChallengersKey, values...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
