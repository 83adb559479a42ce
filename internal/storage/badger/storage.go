package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/paddleclub/ladder/internal/model"
	"github.com/paddleclub/ladder/internal/storage"
)

const playerPrefix = "ladder:player:"

// Storage is a Badger-backed implementation of the storage interface. It is
// the default backend for local use: a single on-disk file store in place of
// an external database.
type Storage struct {
	db     *badgerdb.DB
	logger *slog.Logger
}

// New opens (or creates) a Badger database at the given path
func New(path string, logger *slog.Logger) (*Storage, error) {
	opts := badgerdb.DefaultOptions(path)
	opts.Logger = nil      // Badger's internal logging is noisy at info level
	opts.SyncWrites = true // a ladder update must survive a crash
	opts.CompactL0OnClose = true

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("badger database opened", slog.String("path", path))
	}

	return &Storage{db: db, logger: logger}, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func playerKey(key model.PlayerKey) []byte {
	return []byte(playerPrefix + string(key))
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("marshal player: %w", err)
	}
	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(playerKey(player.Key()), data)
	})
}

func (s *Storage) GetPlayer(ctx context.Context, key model.PlayerKey) (*model.Player, error) {
	var player model.Player
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(playerKey(key))
		if err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return model.ErrPlayerNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &player)
		})
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) FindPlayers(ctx context.Context, query string) ([]*model.Player, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	var found []*model.Player
	err := s.scan(func(p *model.Player) {
		if strings.Contains(string(p.Key()), needle) {
			found = append(found, p)
		}
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	var players []*model.Player
	err := s.scan(func(p *model.Player) {
		players = append(players, p)
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

// scan iterates all player records in key order
func (s *Storage) scan(visit func(*model.Player)) error {
	return s.db.View(func(txn *badgerdb.Txn) error {
		it := txn.NewIterator(badgerdb.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(playerPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var player model.Player
				if err := json.Unmarshal(val, &player); err != nil {
					return fmt.Errorf("unmarshal player: %w", err)
				}
				visit(&player)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Storage) DeletePlayer(ctx context.Context, key model.PlayerKey) error {
	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete(playerKey(key))
	})
}

func (s *Storage) ReplaceAll(ctx context.Context, players []*model.Player) error {
	return s.db.Update(func(txn *badgerdb.Txn) error {
		// Collect existing keys first; deleting while iterating is invalid
		var stale [][]byte
		it := txn.NewIterator(badgerdb.IteratorOptions{PrefetchValues: false})
		prefix := []byte(playerPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		for _, p := range players {
			data, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("marshal player: %w", err)
			}
			if err := txn.Set(playerKey(p.Key()), data); err != nil {
				return err
			}
		}
		return nil
	})
}
