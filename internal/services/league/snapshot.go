package league

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/paddleclub/ladder/internal/model"
)

// Snapshot serializes the whole leaderboard as a JSON array of players in
// key order. The bytes are an opaque unit for the caller; where they go
// (file, blob store) is not the league's concern.
func (s *Service) Snapshot(ctx context.Context) ([]byte, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].Key() < players[j].Key()
	})
	return json.MarshalIndent(players, "", "  ")
}

// Restore replaces the leaderboard with a previously taken snapshot. The
// swap is atomic; a malformed snapshot leaves storage untouched.
func (s *Service) Restore(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return model.ErrNoSnapshot
	}

	var players []*model.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	seen := make(map[model.PlayerKey]bool, len(players))
	for _, p := range players {
		if p.Name == "" {
			return &model.ValidationError{Field: "name", Value: "", Want: "a non-empty name"}
		}
		if seen[p.Key()] {
			return fmt.Errorf("snapshot player %q: %w", p.Name, model.ErrPlayerExists)
		}
		seen[p.Key()] = true
	}

	if err := s.storage.ReplaceAll(ctx, players); err != nil {
		return err
	}

	s.logger.Info("leaderboard restored", slog.Int("players", len(players)))
	return nil
}
