package di

import (
	"github.com/redis/go-redis/v9"

	"sheet_relay/internal/feature/symbolcache/adapters"
	"sheet_relay/internal/feature/symbolcache/usecase"
)

// NewSnapshotStore creates a SnapshotStore implementation.
// If Redis is available, it returns a Redis-backed slot shared across
// instances. Otherwise, it falls back to the in-process slot.
func NewSnapshotStore(rdb *redis.Client) usecase.SnapshotStore {
	if rdb != nil {
		return adapters.NewSnapshotRedis(rdb, "")
	}
	return adapters.NewSnapshotMemory()
}
