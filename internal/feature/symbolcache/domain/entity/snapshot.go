// Package entity defines the domain models for the symbolcache feature.
package entity

import (
	"encoding/json"
	"time"
)

// Snapshot is the most recently stored symbol list together with the opaque
// records that came with it. A write replaces the whole snapshot; it is
// never merged or appended to.
type Snapshot struct {
	Symbols   []string          `json:"symbols"`
	FullData  []json.RawMessage `json:"fullData"`
	Timestamp time.Time         `json:"timestamp"`
}

// IsEmpty reports whether nothing has been stored yet. An empty snapshot is
// a valid state, not an error.
func (s Snapshot) IsEmpty() bool {
	return len(s.Symbols) == 0
}
