// Package dto defines data transfer objects for the symbolcache HTTP API.
package dto

import (
	"encoding/json"
	"time"
)

// SaveSymbolsRequest is the inbound snapshot write. FullData entries are
// opaque and stored as-is; Timestamp, when present, must be RFC 3339.
type SaveSymbolsRequest struct {
	Symbols   []string          `json:"symbols"`
	FullData  []json.RawMessage `json:"fullData"`
	Timestamp time.Time         `json:"timestamp"`
}

// SaveSymbolsResponse reports how many symbols were written.
type SaveSymbolsResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// SymbolListResponse is the read result. Success false with empty symbols
// means nothing has been stored yet, which is a valid state.
type SymbolListResponse struct {
	Success   bool       `json:"success"`
	Symbols   []string   `json:"symbols"`
	Count     int        `json:"count"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// SymbolErrorResponse is the failure envelope for symbol operations.
type SymbolErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
