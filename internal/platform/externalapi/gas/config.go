// Package gas provides a client for the Google Apps Script automation
// endpoints the relay forwards to.
package gas

import (
	"os"
	"time"
)

// Config holds configuration for the Apps Script endpoints.
type Config struct {
	ForwardURL string        // default destination for forwarded sheet rows
	PifURL     string        // endpoint serving the PIF list
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads Apps Script configuration from environment variables.
func LoadConfig() Config {
	return Config{
		ForwardURL: os.Getenv("GAS_FORWARD_URL"),
		PifURL:     os.Getenv("GAS_PIF_URL"),
		Timeout:    15 * time.Second,
	}
}
