// Package dto defines the wire shapes returned by the Apps Script endpoints.
package dto

import "encoding/json"

// ListEnvelope mirrors the JSON envelope the automation script returns for
// list actions. Entries are passed through opaque; only the envelope itself
// is interpreted here.
type ListEnvelope struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Error   string            `json:"error"`
}
