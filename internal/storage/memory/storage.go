package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	players map[model.PlayerKey]*model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerKey]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Key()] = player.Clone()
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, key model.PlayerKey) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[key]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) FindPlayers(ctx context.Context, query string) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(strings.TrimSpace(query))
	var found []*model.Player
	for _, p := range s.players {
		if strings.Contains(string(p.Key()), needle) {
			found = append(found, p.Clone())
		}
	}
	sortByKey(found)
	return found, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p.Clone())
	}
	sortByKey(players)
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, key model.PlayerKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, key)
	return nil
}

func (s *Storage) ReplaceAll(ctx context.Context, players []*model.Player) error {
	fresh := make(map[model.PlayerKey]*model.Player, len(players))
	for _, p := range players {
		fresh[p.Key()] = p.Clone()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = fresh
	return nil
}

func (s *Storage) Close() error {
	return nil
}

func sortByKey(players []*model.Player) {
	sort.Slice(players, func(i, j int) bool {
		return players[i].Key() < players[j].Key()
	})
}
