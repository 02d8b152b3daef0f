// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"sheet_relay/internal/platform/externalapi/gas"
	infrahttp "sheet_relay/internal/platform/http"
)

// NewGasClient creates a fully configured Apps Script client. The HTTP
// client does not follow redirects, so the platform's 302-on-completion is
// observable by the relay pipeline.
func NewGasClient(cfg gas.Config) *gas.Client {
	httpClient := infrahttp.NewNoRedirectHTTPClient(cfg.Timeout)
	return gas.NewClient(cfg, httpClient)
}
