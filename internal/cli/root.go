package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paddleclub/ladder/internal/factory"
	redisstorage "github.com/paddleclub/ladder/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "ladder",
		Short: "Elo leaderboard for the office paddle league",
		Long: `ladder maintains a persistent Elo-style skill leaderboard for a
two-player paddle-sport league. Match results adjust ratings using a
margin-of-victory multiplier; inactive players decay; late-arriving results
can be backfilled into true chronological order.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg.LogLevel)

			fcfg := factory.Config{
				Logger:      logger,
				StorageType: cfg.StorageType,
				BadgerPath:  cfg.DBPath,
			}
			if cfg.StorageType == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				if cfg.RedisURL != "" {
					redisCfg.URL = cfg.RedisURL
				}
				fcfg.RedisConfig = &redisCfg
			}

			var err error
			app, err = factory.New(fcfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app != nil {
				return app.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: badger, redis, memory (env: LADDER_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "Badger database directory (env: LADDER_DB)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL when --storage=redis (env: LADDER_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: LADDER_LOG)")
	rootCmd.PersistentFlags().BoolVar(&cfg.JSON, "json", cfg.JSON, "Output JSON instead of tables")

	// Add subcommands
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newStandingsCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newMatchupsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
