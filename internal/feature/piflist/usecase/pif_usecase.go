// Package usecase implements the read-through fetch of the PIF list.
package usecase

import (
	"context"
	"encoding/json"
)

// PifSource fetches the PIF entries from the external automation endpoint.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type PifSource interface {
	FetchPifList(ctx context.Context) ([]json.RawMessage, error)
}

// PifUsecase fetches the PIF list on every call with no local caching.
// It deliberately has no retry: the read is idempotent and cheap for the
// caller to re-issue, unlike the relay pipeline.
type PifUsecase struct {
	source PifSource
}

// NewPifUsecase creates a new PifUsecase with the given source.
func NewPifUsecase(source PifSource) *PifUsecase {
	return &PifUsecase{source: source}
}

// ListEntries returns the current PIF entries, opaque and uninterpreted.
func (u *PifUsecase) ListEntries(ctx context.Context) ([]json.RawMessage, error) {
	entries, err := u.source.FetchPifList(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}
	return entries, nil
}
