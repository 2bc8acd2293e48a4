package redis

import (
	"fmt"

	"github.com/astralfront/supremacy/internal/actor"
)

// Key prefix for all actor data
const keyPrefix = "supremacy"

// actorKey returns the Redis key of the hash holding one actor's fields
func actorKey(key actor.Key) string {
	return fmt.Sprintf("%s:actor:%s", keyPrefix, key)
}
