package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sheet_relay/internal/feature/symbolcache/domain/entity"
	"sheet_relay/internal/feature/symbolcache/usecase"
)

// defaultSnapshotKey is used when no key is supplied.
const defaultSnapshotKey = "symbolcache:snapshot"

// SnapshotRedis implements usecase.SnapshotStore on Redis, so the snapshot
// survives restarts and is shared when several relay instances run behind a
// load balancer. The slot semantics are unchanged: one key, whole-value SET.
type SnapshotRedis struct {
	client *redis.Client
	key    string
}

var _ usecase.SnapshotStore = (*SnapshotRedis)(nil)

// NewSnapshotRedis creates a new SnapshotRedis instance.
func NewSnapshotRedis(client *redis.Client, key string) *SnapshotRedis {
	if key == "" {
		key = defaultSnapshotKey
	}
	return &SnapshotRedis{client: client, key: key}
}

// Replace stores snap under the slot key, overwriting whatever is there.
func (r *SnapshotRedis) Replace(ctx context.Context, snap entity.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

// Current returns the stored snapshot, or an empty one if the slot has
// never been written.
func (r *SnapshotRedis) Current(ctx context.Context) (entity.Snapshot, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Snapshot{Symbols: []string{}, FullData: []json.RawMessage{}}, nil
		}
		return entity.Snapshot{}, err
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap, nil
}
