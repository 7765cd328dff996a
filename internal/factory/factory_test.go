package factory_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/factory"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/opponent"
	redisstorage "github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage/redis"
)

type FactorySuite struct {
	suite.Suite
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FactorySuite) TestMemorySourceRandomMode() {
	app, err := factory.New(s.ctx, factory.Config{
		Challengers:  []model.ChallengerDefinition{{Name: "go", DisplayName: "Go"}},
		OpponentMode: opponent.ModeRandom,
	})
	s.Require().NoError(err)
	s.Equal(1, app.Registry.Len())
	s.IsType(&opponent.RandomPicker{}, app.Picker)

	outcome, err := app.GameController.Play(s.ctx, model.PlayRequest{ChallengerName: "go", PlayerPick: 3})
	s.Require().NoError(err)
	s.Equal(model.Lizard, outcome.PlayerPick)
	s.True(outcome.ChallengerPick.Valid())
}

func (s *FactorySuite) TestFileSource() {
	app, err := factory.New(s.ctx, factory.Config{
		SourceType:      factory.SourceTypeFile,
		ChallengersFile: "../../config/challengers.yaml",
	})
	s.Require().NoError(err)
	s.Equal(5, app.Registry.Len())
	s.IsType(&opponent.HTTPPicker{}, app.Picker)
}

func (s *FactorySuite) TestRedisSource() {
	mini := miniredis.RunT(s.T())

	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	store, err := redisstorage.New(cfg)
	s.Require().NoError(err)
	s.Require().NoError(store.SaveChallengerDefinitions(s.ctx, []model.ChallengerDefinition{
		{Name: "rust", DisplayName: "Rust", Endpoint: "http://rust-player"},
	}))
	s.Require().NoError(store.Close())

	app, err := factory.New(s.ctx, factory.Config{
		SourceType:  factory.SourceTypeRedis,
		RedisConfig: &cfg,
	})
	s.Require().NoError(err)

	c, err := app.Registry.Resolve("rust")
	s.Require().NoError(err)
	s.Equal("Rust", c.DisplayName)
}

func (s *FactorySuite) TestEmptyConfigurationIsFatal() {
	_, err := factory.New(s.ctx, factory.Config{OpponentMode: opponent.ModeRandom})
	s.ErrorIs(err, model.ErrConfiguration)
}

func (s *FactorySuite) TestHTTPModeRequiresEndpoints() {
	_, err := factory.New(s.ctx, factory.Config{
		Challengers: []model.ChallengerDefinition{{Name: "go"}},
	})
	s.ErrorIs(err, model.ErrConfiguration)
}

func (s *FactorySuite) TestMissingFileIsConfigurationError() {
	_, err := factory.New(s.ctx, factory.Config{
		SourceType:      factory.SourceTypeFile,
		ChallengersFile: "does-not-exist.yaml",
	})
	s.ErrorIs(err, model.ErrConfiguration)
}

func (s *FactorySuite) TestInvalidSettings() {
	_, err := factory.New(s.ctx, factory.Config{SourceType: "postgres"})
	s.Error(err)

	_, err = factory.New(s.ctx, factory.Config{SourceType: factory.SourceTypeRedis})
	s.Error(err)

	_, err = factory.New(s.ctx, factory.Config{
		Challengers:  []model.ChallengerDefinition{{Name: "go"}},
		OpponentMode: "psychic",
	})
	s.Error(err)
}

func (s *FactorySuite) TestTestApp() {
	app := factory.NewTestApp()
	app.MockPicker.QueuePicks(int(model.Spock))

	outcome, err := app.GameController.Play(s.ctx, model.PlayRequest{ChallengerName: "dotnet", PlayerPick: int(model.Lizard)})
	s.Require().NoError(err)
	s.Equal(model.ResultPlayer, outcome.Result)
	s.Equal(1, app.MockPicker.CallCount())
}
