package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndListPreservesOrder() {
	defs := []model.ChallengerDefinition{
		{Name: "dotnet", DisplayName: ".NET", Endpoint: "http://dotnet"},
		{Name: "python", DisplayName: "Python", Endpoint: "http://python"},
		{Name: "java", DisplayName: "Java", Endpoint: "http://java"},
	}
	s.Require().NoError(s.storage.SaveChallengerDefinitions(s.ctx, defs))

	got, err := s.storage.ListChallengerDefinitions(s.ctx)
	s.Require().NoError(err)
	s.Equal(defs, got)
}

func (s *StorageSuite) TestSaveReplacesExisting() {
	s.Require().NoError(s.storage.SaveChallengerDefinitions(s.ctx, []model.ChallengerDefinition{{Name: "a"}, {Name: "b"}}))
	s.Require().NoError(s.storage.SaveChallengerDefinitions(s.ctx, []model.ChallengerDefinition{{Name: "c"}}))

	got, err := s.storage.ListChallengerDefinitions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("c", got[0].Name)
}

func (s *StorageSuite) TestListMissingKeyIsEmpty() {
	got, err := s.storage.ListChallengerDefinitions(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *StorageSuite) TestListUsesKnownKey() {
	s.Require().NoError(s.storage.SaveChallengerDefinitions(s.ctx, []model.ChallengerDefinition{{Name: "dotnet"}}))
	s.True(s.mini.Exists("rpsls:challengers"))
}

func (s *StorageSuite) TestListRejectsCorruptEntry() {
	_, err := s.mini.Push("rpsls:challengers", "{not json")
	s.Require().NoError(err)

	_, err = s.storage.ListChallengerDefinitions(s.ctx)
	s.Require().Error(err)
	s.Contains(err.Error(), "rpsls:challengers[0]")
}

func (s *StorageSuite) TestCustomKey() {
	cfg := DefaultConfig()
	cfg.ChallengersKey = "custom:list"
	store := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer func() { _ = store.Close() }()

	s.Require().NoError(store.SaveChallengerDefinitions(s.ctx, []model.ChallengerDefinition{{Name: "php"}}))
	s.True(s.mini.Exists("custom:list"))
	s.False(s.mini.Exists("rpsls:challengers"))
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url://"
	_, err := New(cfg)
	s.Error(err)
}

func (s *StorageSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()
	store, err := New(cfg)
	s.Require().NoError(err)
	s.NoError(store.Close())
}
