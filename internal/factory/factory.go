package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/paddleclub/ladder/internal/dependencies/clock"
	"github.com/paddleclub/ladder/internal/services/league"
	"github.com/paddleclub/ladder/internal/services/match"
	"github.com/paddleclub/ladder/internal/storage"
	badgerstorage "github.com/paddleclub/ladder/internal/storage/badger"
	"github.com/paddleclub/ladder/internal/storage/memory"
	redisstorage "github.com/paddleclub/ladder/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeBadger = "badger"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	League          *league.Service
	MatchController *match.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "badger" or "redis")
	// If empty, defaults to "badger"
	StorageType string
	// BadgerPath is the database directory (required if StorageType is "badger")
	BadgerPath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeBadger
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeBadger:
		if cfg.BadgerPath == "" {
			return nil, errors.New("BadgerPath required when StorageType is badger")
		}
		badgerStore, err := badgerstorage.New(cfg.BadgerPath, logger)
		if err != nil {
			return nil, err
		}
		store = badgerStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'badger' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	return &App{
		Storage:         store,
		Clock:           clk,
		League:          league.New(store, clk, logger),
		MatchController: match.NewController(store, clk, logger),
	}
}

// Close releases the app's storage resources
func (a *App) Close() error {
	return a.Storage.Close()
}
