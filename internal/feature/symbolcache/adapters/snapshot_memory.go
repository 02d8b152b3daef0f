// Package adapters provides SnapshotStore implementations for the
// symbolcache feature.
package adapters

import (
	"context"
	"encoding/json"
	"sync"

	"sheet_relay/internal/feature/symbolcache/domain/entity"
	"sheet_relay/internal/feature/symbolcache/usecase"
)

// SnapshotMemory holds the snapshot in a single mutex-guarded slot. Writes
// replace the whole value, so last write wins with no partial updates.
type SnapshotMemory struct {
	mu   sync.RWMutex
	snap entity.Snapshot
}

var _ usecase.SnapshotStore = (*SnapshotMemory)(nil)

// NewSnapshotMemory creates an empty in-memory snapshot slot.
func NewSnapshotMemory() *SnapshotMemory {
	return &SnapshotMemory{
		snap: entity.Snapshot{
			Symbols:  []string{},
			FullData: []json.RawMessage{},
		},
	}
}

// Replace swaps the held snapshot for snap.
func (s *SnapshotMemory) Replace(ctx context.Context, snap entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}

// Current returns the held snapshot.
func (s *SnapshotMemory) Current(ctx context.Context) (entity.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, nil
}
