// Package usecase implements the business logic for the symbol snapshot slot.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sheet_relay/internal/feature/symbolcache/domain/entity"
)

// ErrInvalidPayload marks writes rejected before touching the store.
var ErrInvalidPayload = errors.New("invalid payload")

// SnapshotStore holds the single snapshot slot. Replace swaps the whole
// value; last write wins.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SnapshotStore interface {
	Replace(ctx context.Context, snap entity.Snapshot) error
	Current(ctx context.Context) (entity.Snapshot, error)
}

// WriteCommand is an inbound snapshot write. Symbols nil means the field was
// absent. FullData and Timestamp are optional.
type WriteCommand struct {
	Symbols   []string
	FullData  []json.RawMessage
	Timestamp time.Time
}

// SymbolUsecase provides the write-replaces / read-or-empty operations over
// the snapshot slot.
type SymbolUsecase struct {
	store SnapshotStore
}

// NewSymbolUsecase creates a new SymbolUsecase with the given store.
func NewSymbolUsecase(store SnapshotStore) *SymbolUsecase {
	return &SymbolUsecase{store: store}
}

// Write replaces the held snapshot, defaulting FullData to empty and
// Timestamp to now, and returns the number of symbols written.
func (u *SymbolUsecase) Write(ctx context.Context, cmd WriteCommand) (int, error) {
	if cmd.Symbols == nil {
		return 0, fmt.Errorf("%w: symbols must be an array of strings", ErrInvalidPayload)
	}

	snap := entity.Snapshot{
		Symbols:   cmd.Symbols,
		FullData:  cmd.FullData,
		Timestamp: cmd.Timestamp,
	}
	if snap.FullData == nil {
		snap.FullData = []json.RawMessage{}
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	if err := u.store.Replace(ctx, snap); err != nil {
		return 0, err
	}
	return len(snap.Symbols), nil
}

// Read returns the current snapshot. Callers distinguish "never written"
// via Snapshot.IsEmpty.
func (u *SymbolUsecase) Read(ctx context.Context) (entity.Snapshot, error) {
	return u.store.Current(ctx)
}
