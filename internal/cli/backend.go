package cli

import (
	"context"
	"log/slog"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/rpc"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// Backend is the server surface the commands talk to, over either transport
type Backend interface {
	Challengers(ctx context.Context) (ChallengersResult, error)
	Play(ctx context.Context, args PlayArgs) (PlayResult, error)
	Rules(ctx context.Context) (RulesResult, error)
	Health(ctx context.Context) (HealthResult, error)
	Close() error
}

// PlayArgs are the inputs to one round
type PlayArgs struct {
	Challenger string `json:"challenger"`
	Username   string `json:"username,omitempty"`
	Pick       int    `json:"pick"`
}

// httpBackend talks to the REST API
type httpBackend struct {
	client *Client
}

func newHTTPBackend(c *Config) *httpBackend {
	return &httpBackend{client: NewClient(c.ServerURL, c.Timeout)}
}

func (b *httpBackend) Challengers(ctx context.Context) (ChallengersResult, error) {
	var result ChallengersResult
	err := b.client.Get(ctx, "/api/v1/challengers", &result)
	return result, err
}

func (b *httpBackend) Play(ctx context.Context, args PlayArgs) (PlayResult, error) {
	var result PlayResult
	err := b.client.Post(ctx, "/api/v1/play", args, &result)
	return result, err
}

func (b *httpBackend) Rules(ctx context.Context) (RulesResult, error) {
	var result RulesResult
	err := b.client.Get(ctx, "/api/v1/rules", &result)
	return result, err
}

func (b *httpBackend) Health(ctx context.Context) (HealthResult, error) {
	var result HealthResult
	err := b.client.Get(ctx, "/api/v1/health", &result)
	return result, err
}

func (b *httpBackend) Close() error {
	return nil
}

// grpcBackend talks to the BotGameManager service
type grpcBackend struct {
	client *rpc.Client
}

func newGRPCBackend(ctx context.Context, c *Config, logger *slog.Logger) (*grpcBackend, error) {
	client, err := rpc.Dial(ctx, c.GRPCAddr, logger)
	if err != nil {
		return nil, err
	}
	return &grpcBackend{client: client}, nil
}

func (b *grpcBackend) Challengers(ctx context.Context) (ChallengersResult, error) {
	list, err := b.client.GetChallengers(ctx)
	if err != nil {
		return ChallengersResult{}, err
	}
	result := ChallengersResult{Count: list.Count, Challengers: make([]Challenger, len(list.Challengers))}
	for i, c := range list.Challengers {
		result.Challengers[i] = Challenger{Name: c.Name, DisplayName: c.DisplayName}
	}
	return result, nil
}

func (b *grpcBackend) Play(ctx context.Context, args PlayArgs) (PlayResult, error) {
	resp, err := b.client.DoPlay(ctx, &rpc.GameRequest{
		Challenger: args.Challenger,
		Username:   args.Username,
		Pick:       args.Pick,
	})
	if err != nil {
		return PlayResult{}, err
	}
	return PlayResult{
		Challenger:     resp.Challenger,
		User:           resp.User,
		UserPick:       resp.UserPick,
		ChallengerPick: resp.ChallengerPick,
		IsValid:        resp.IsValid,
		Result:         resp.Result,
	}, nil
}

// Rules are not served over gRPC; the table is the same one the server uses
func (b *grpcBackend) Rules(_ context.Context) (RulesResult, error) {
	return rulesFromGame(game.Rules()), nil
}

func (b *grpcBackend) Health(ctx context.Context) (HealthResult, error) {
	state, err := b.client.Health(ctx)
	if err != nil {
		return HealthResult{}, err
	}
	return HealthResult{Status: state}, nil
}

func (b *grpcBackend) Close() error {
	return b.client.Close()
}
