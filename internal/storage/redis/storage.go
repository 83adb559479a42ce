package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface, for
// running the ladder against a shared Redis instance instead of a local file
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Pipeline for atomic record + roster index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.Key()), data, 0)
	pipe.SAdd(ctx, rosterKey(), string(player.Key()))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, key model.PlayerKey) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) FindPlayers(ctx context.Context, query string) ([]*model.Player, error) {
	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	var found []*model.Player
	for _, p := range players {
		if strings.Contains(string(p.Key()), needle) {
			found = append(found, p)
		}
	}
	return found, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, rosterKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	players := make([]*model.Player, 0, len(keys))
	for _, key := range keys {
		player, err := s.GetPlayer(ctx, model.PlayerKey(key))
		if err != nil {
			// Roster entry without a record means a torn delete; skip it
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, key model.PlayerKey) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(key))
	pipe.SRem(ctx, rosterKey(), string(key))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ReplaceAll(ctx context.Context, players []*model.Player) error {
	existing, err := s.client.SMembers(ctx, rosterKey()).Result()
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for _, key := range existing {
		pipe.Del(ctx, playerKey(model.PlayerKey(key)))
	}
	pipe.Del(ctx, rosterKey())
	for _, p := range players {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		pipe.Set(ctx, playerKey(p.Key()), data, 0)
		pipe.SAdd(ctx, rosterKey(), string(p.Key()))
	}
	_, err = pipe.Exec(ctx)
	return err
}
