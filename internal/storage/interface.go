package storage

import (
	"context"

	"github.com/paddleclub/ladder/internal/model"
)

// Storage defines the interface for leaderboard persistence. Implementations
// must return players that are safe for the caller to mutate (no aliasing of
// stored state).
type Storage interface {
	// SavePlayer inserts or updates a player keyed by their folded name
	SavePlayer(ctx context.Context, player *model.Player) error

	// GetPlayer fetches a player by exact key, ErrPlayerNotFound if absent
	GetPlayer(ctx context.Context, key model.PlayerKey) (*model.Player, error)

	// FindPlayers returns all players whose name contains the query,
	// case-insensitively
	FindPlayers(ctx context.Context, query string) ([]*model.Player, error)

	// ListPlayers returns the full roster in key order
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// DeletePlayer removes a player; deleting an absent key is not an error
	DeletePlayer(ctx context.Context, key model.PlayerKey) error

	// ReplaceAll atomically swaps the entire roster. Used by retroactive
	// replay and snapshot restore so partial state is never observable.
	ReplaceAll(ctx context.Context, players []*model.Player) error

	// Close releases any underlying resources
	Close() error
}
