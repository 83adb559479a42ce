package redis

import (
	"fmt"

	"github.com/paddleclub/ladder/internal/model"
)

// Key prefix for all ladder data
const keyPrefix = "ladder"

// playerKey returns the Redis key for a Player record
func playerKey(key model.PlayerKey) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, key)
}

// rosterKey returns the Redis key for the SET of all player keys
func rosterKey() string {
	return fmt.Sprintf("%s:roster", keyPrefix)
}
