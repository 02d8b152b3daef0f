// Package entity defines the domain models for the relay feature.
package entity

import "encoding/json"

// ForwardEnvelope is the body forwarded to the automation endpoint. It is
// always exactly {sheetName, values}; any per-request destination override
// stays on this side of the wire.
type ForwardEnvelope struct {
	SheetName string            `json:"sheetName"`
	Values    []json.RawMessage `json:"values"`
}

// ForwardReply is the raw upstream response to a single forward attempt:
// the HTTP status and the body verbatim, without re-parsing.
type ForwardReply struct {
	Status int
	Body   string
}
