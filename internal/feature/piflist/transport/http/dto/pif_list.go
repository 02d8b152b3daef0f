// Package dto defines data transfer objects for the piflist HTTP API.
package dto

import "encoding/json"

// PifListResponse is the pass-through envelope returned on success.
type PifListResponse struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Count   int               `json:"count"`
}

// PifErrorResponse is the failure envelope.
type PifErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
