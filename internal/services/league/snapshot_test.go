package league

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/paddleclub/ladder/internal/dependencies/mocks"
	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/storage/memory"
	"github.com/paddleclub/ladder/internal/testutil"
)

type SnapshotSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}

func (s *SnapshotSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local))
	s.service = New(s.storage, clk, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *SnapshotSuite) populate() {
	now := time.Date(2024, 3, 8, 18, 30, 0, 0, time.Local)
	alice := model.NewPlayer("Alice", now)
	bob := model.NewPlayer("Bob", now)

	rec, err := model.NewGameRecord("Alice", "Bob", 5, now)
	s.Require().NoError(err)
	alice.AddGame(rec)
	bob.AddGame(rec)
	alice.Rating += 8.96
	alice.Wins++
	bob.Rating -= 8.96
	bob.Losses++
	bob.AddGame(model.NewDecayRecord(now.AddDate(0, 0, 8)))

	s.Require().NoError(s.storage.SavePlayer(s.ctx, alice))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, bob))
}

func (s *SnapshotSuite) TestRoundTrip() {
	s.populate()

	snapshot, err := s.service.Snapshot(s.ctx)
	s.Require().NoError(err)

	// Restore into a fresh leaderboard and snapshot again: bytes must match
	otherStorage := memory.New()
	other := New(otherStorage, mocks.NewMockClock(time.Now()), testutil.NopLogger())
	s.Require().NoError(other.Restore(s.ctx, snapshot))

	again, err := other.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(string(snapshot), string(again))

	alice, err := otherStorage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(1, alice.Wins)
	s.Len(alice.Games, 1)
}

func (s *SnapshotSuite) TestRestoreReplacesExistingRoster() {
	s.populate()
	snapshot, err := s.service.Snapshot(s.ctx)
	s.Require().NoError(err)

	stray := model.NewPlayer("Stray", time.Now())
	s.Require().NoError(s.storage.SavePlayer(s.ctx, stray))

	s.Require().NoError(s.service.Restore(s.ctx, snapshot))

	_, err = s.storage.GetPlayer(s.ctx, "stray")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *SnapshotSuite) TestRestoreRejectsMalformedData() {
	s.populate()

	s.ErrorIs(s.service.Restore(s.ctx, nil), model.ErrNoSnapshot)
	s.Error(s.service.Restore(s.ctx, []byte("not json")))
	s.Error(s.service.Restore(s.ctx, []byte(`[{"Name":"A"},{"Name":"a"}]`)))

	// Failed restores leave the leaderboard untouched
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}
