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

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) addPlayer(name string, rating float64) *model.Player {
	p := model.NewPlayer(name, s.clock.Now())
	p.Rating = rating
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
	return p
}

// Creation

func (s *ServiceSuite) TestCreatePlayer() {
	p, err := s.service.CreatePlayer(s.ctx, "Aryan Jain")
	s.Require().NoError(err)
	s.Equal("Aryan Jain", p.Name)
	s.Equal(model.InitialRating, p.Rating)

	stored, err := s.storage.GetPlayer(s.ctx, model.KeyFor("aryan jain"))
	s.NoError(err)
	s.Equal("Aryan Jain", stored.Name)
}

func (s *ServiceSuite) TestCreatePlayerRejectsCaseInsensitiveDuplicate() {
	_, err := s.service.CreatePlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	_, err = s.service.CreatePlayer(s.ctx, "ALICE")
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *ServiceSuite) TestCreatePlayerRejectsEmptyName() {
	_, err := s.service.CreatePlayer(s.ctx, "   ")
	s.Error(err)
}

// Lookup

func (s *ServiceSuite) TestFindByNameSubstring() {
	s.addPlayer("Aryan Jain", 1400)
	s.addPlayer("Ryan Smith", 1400)
	s.addPlayer("Bob", 1400)

	found, err := s.service.FindByName(s.ctx, "ryan")
	s.Require().NoError(err)
	s.Len(found, 2)

	found, err = s.service.FindByName(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(found)
}

func (s *ServiceSuite) TestResolve() {
	s.addPlayer("Aryan Jain", 1400)
	s.addPlayer("Ryan Smith", 1400)

	p, err := s.service.Resolve(s.ctx, "smith")
	s.Require().NoError(err)
	s.Equal("Ryan Smith", p.Name)

	_, err = s.service.Resolve(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.service.Resolve(s.ctx, "ryan")
	s.ErrorIs(err, model.ErrAmbiguousPlayer)

	var ambig *model.AmbiguousPlayerError
	s.Require().ErrorAs(err, &ambig)
	s.Equal([]string{"Aryan Jain", "Ryan Smith"}, ambig.Candidates)
}

// Ranking

func (s *ServiceSuite) TestRank() {
	s.addPlayer("Alice", 1450)
	s.addPlayer("Bob", 1500)
	s.addPlayer("Cara", 1390)

	rank, err := s.service.Rank(s.ctx, "Bob")
	s.Require().NoError(err)
	s.Equal(1, rank)

	rank, err = s.service.Rank(s.ctx, "cara")
	s.Require().NoError(err)
	s.Equal(3, rank)

	_, err = s.service.Rank(s.ctx, "Ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestStandings() {
	alice := s.addPlayer("Alice", 1450)
	alice.Wins = 3
	alice.Losses = 1
	rec, err := model.NewGameRecord("Alice", "Bob", 5, s.clock.Now().Add(-time.Hour))
	s.Require().NoError(err)
	alice.AddGame(rec)
	s.Require().NoError(s.storage.SavePlayer(s.ctx, alice))

	s.addPlayer("Bob", 1500)

	rows, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(1, rows[0].Rank)
	s.Equal("Bob", rows[0].Name)

	s.Equal(2, rows[1].Rank)
	s.Equal("Alice", rows[1].Name)
	s.Equal(3, rows[1].Wins)
	s.Equal(1, rows[1].Losses)
	s.Equal(4, rows[1].TotalPlayed)
	s.Equal(1, rows[1].GamesToday)
	s.Equal("W", rows[1].Form)
	s.False(rows[1].LastGame.IsZero())
	s.True(rows[0].LastGame.IsZero())
}

func (s *ServiceSuite) TestOrdinal() {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 101: "101st", 111: "111th",
	}
	for n, want := range cases {
		s.Equal(want, Ordinal(n))
	}
}
