package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/paddleclub/ladder/internal/model"
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

func (s *StorageSuite) newPlayer(name string) *model.Player {
	return model.NewPlayer(name, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	alice := s.newPlayer("Alice")
	rec, err := model.NewGameRecord("Alice", "Bob", 7, time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	alice.AddGame(rec)

	s.Require().NoError(s.storage.SavePlayer(s.ctx, alice))

	got, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("Alice", got.Name)
	s.Require().Len(got.Games, 1)
	s.Equal(7, got.Games[0].PointDiff)
}

func (s *StorageSuite) TestGetMissingPlayer() {
	_, err := s.storage.GetPlayer(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveMaintainsRosterIndex() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("Alice")))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("Bob")))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Alice", players[0].Name)
	s.Equal("Bob", players[1].Name)
}

func (s *StorageSuite) TestFindPlayersSubstring() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("Aryan Jain")))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("Ryan Smith")))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("Bob")))

	found, err := s.storage.FindPlayers(s.ctx, "ryan")
	s.Require().NoError(err)
	s.Len(found, 2)
}

func (s *StorageSuite) TestDeletePlayerRemovesRecordAndIndex() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("Alice")))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "alice"))

	_, err := s.storage.GetPlayer(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestReplaceAllSwapsRoster() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("Old")))

	fresh := []*model.Player{s.newPlayer("Alice"), s.newPlayer("Bob")}
	s.Require().NoError(s.storage.ReplaceAll(s.ctx, fresh))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Alice", players[0].Name)
	s.Equal("Bob", players[1].Name)
}
