// Package router assembles the HTTP route table.
package router

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	pifhandler "sheet_relay/internal/feature/piflist/transport/handler"
	relayhandler "sheet_relay/internal/feature/relay/transport/handler"
	symbolhandler "sheet_relay/internal/feature/symbolcache/transport/handler"
	"sheet_relay/internal/platform/http/handler"
)

// NewRouter builds the Gin engine with CORS and all routes registered.
func NewRouter(relay *relayhandler.RelayHandler, pif *pifhandler.PifHandler,
	symbol *symbolhandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(corsConfig()))

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// Relay rows to the configured automation endpoint
	r.POST("/forward", relay.Forward)
	// Read-through fetch of the PIF list
	r.GET("/pif", pif.List)
	// Symbol snapshot slot
	r.POST("/symbols", symbol.Save)
	r.GET("/symbols", symbol.List)

	return r
}

// corsConfig admits the browser-extension callers. With ALLOWED_ORIGINS
// unset all origins are allowed, since extension origins
// (chrome-extension://...) are not knowable ahead of time.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
