package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	DBPath      string
	RedisURL    string
	LogLevel    string
	JSON        bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType: getEnvOrDefault("LADDER_STORAGE", "badger"),
		DBPath:      getEnvOrDefault("LADDER_DB", defaultDBPath()),
		RedisURL:    os.Getenv("LADDER_REDIS_URL"),
		LogLevel:    getEnvOrDefault("LADDER_LOG", "warn"),
		JSON:        false,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ladder"
	}
	return filepath.Join(home, ".ladder", "db")
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
