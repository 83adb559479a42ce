package league

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paddleclub/ladder/internal/dependencies/clock"
	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/storage"
)

// formGames is how many recent results the standings form column shows
const formGames = 5

// Service provides leaderboard operations: name resolution, ranking, and
// the standings projection
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new league Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// FindByName returns every player whose name contains the query,
// case-insensitively. Zero, one, or many matches are all valid outcomes;
// interactive callers disambiguate.
func (s *Service) FindByName(ctx context.Context, query string) ([]*model.Player, error) {
	return s.storage.FindPlayers(ctx, query)
}

// Resolve maps a query to exactly one player. Zero matches is
// ErrPlayerNotFound; multiple matches is an AmbiguousPlayerError carrying the
// candidates for the caller to choose from.
func (s *Service) Resolve(ctx context.Context, query string) (*model.Player, error) {
	found, err := s.storage.FindPlayers(ctx, query)
	if err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("resolve %q: %w", query, model.ErrPlayerNotFound)
	case 1:
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, p := range found {
			names[i] = p.Name
		}
		return nil, &model.AmbiguousPlayerError{Query: query, Candidates: names}
	}
}

// CreatePlayer adds a brand-new player at the initial rating. Names collide
// case-insensitively.
func (s *Service) CreatePlayer(ctx context.Context, name string) (*model.Player, error) {
	player := model.NewPlayer(name, s.clock.Now())
	if player.Name == "" {
		return nil, &model.ValidationError{Field: "name", Value: name, Want: "a non-empty name"}
	}

	if _, err := s.storage.GetPlayer(ctx, player.Key()); err == nil {
		return nil, fmt.Errorf("create %q: %w", player.Name, model.ErrPlayerExists)
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("name", player.Name),
		slog.Float64("rating", player.Rating),
	)
	return player, nil
}

// GetPlayer fetches a player by exact name
func (s *Service) GetPlayer(ctx context.Context, name string) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, model.KeyFor(name))
}

// Rank returns a player's 1-based position under the rating comparator
func (s *Service) Rank(ctx context.Context, name string) (int, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return 0, err
	}
	model.SortPlayers(players)

	key := model.KeyFor(name)
	for i, p := range players {
		if p.Key() == key {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("rank %q: %w", name, model.ErrPlayerNotFound)
}

// StandingsRow is one player's row in the ranked leaderboard table
type StandingsRow struct {
	Rank        int
	Name        string
	Wins        int
	Losses      int
	TotalPlayed int
	GamesToday  int
	LastGame    time.Time
	Rating      float64
	Form        string
}

// Standings projects the whole leaderboard into ranked rows. Derived columns
// (rank, games today, form) are recomputed from each player's log, never
// stored.
func (s *Service) Standings(ctx context.Context) ([]StandingsRow, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	model.SortPlayers(players)

	now := s.clock.Now()
	rows := make([]StandingsRow, len(players))
	for i, p := range players {
		rows[i] = StandingsRow{
			Rank:        i + 1,
			Name:        p.Name,
			Wins:        p.Wins,
			Losses:      p.Losses,
			TotalPlayed: p.TotalPlayed(),
			GamesToday:  p.GamesOn(now),
			LastGame:    p.LastGame(),
			Rating:      p.Rating,
			Form:        p.RecentForm(formGames),
		}
	}
	return rows, nil
}

// Ordinal renders a rank as "1st", "2nd", "3rd", "11th", ...
func Ordinal(n int) string {
	suffix := "th"
	if n/10%10 != 1 { // teens are always "th"
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
