// Package dto defines data transfer objects for the relay HTTP API.
package dto

import "encoding/json"

// ForwardRequest is the inbound payload from the browser extension.
// Values must be a JSON array of rows; binding fails on any other type.
// DestinationOverride redirects this one request to a different automation
// endpoint and is never forwarded downstream.
type ForwardRequest struct {
	SheetName           string            `json:"sheetName"`
	Values              []json.RawMessage `json:"values"`
	DestinationOverride string            `json:"destinationOverride"`
}

// ForwardResponse reports the relay outcome. Elapsed is total wall-clock
// milliseconds and is present in every outcome, success or failure.
type ForwardResponse struct {
	OK      bool   `json:"ok"`
	Status  int    `json:"status,omitempty"`
	Text    string `json:"text,omitempty"`
	Elapsed int64  `json:"elapsed"`
	Error   string `json:"error,omitempty"`
}
