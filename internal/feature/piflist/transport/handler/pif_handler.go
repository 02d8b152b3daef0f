// Package handler provides the HTTP handlers for the piflist feature.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheet_relay/internal/feature/piflist/transport/http/dto"
)

// PifUsecase is the read-through fetch interface.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type PifUsecase interface {
	ListEntries(ctx context.Context) ([]json.RawMessage, error)
}

// PifHandler handles PIF list requests.
type PifHandler struct {
	uc PifUsecase
}

// NewPifHandler creates a new PifHandler.
func NewPifHandler(uc PifUsecase) *PifHandler {
	return &PifHandler{uc: uc}
}

// List fetches the PIF list from the automation endpoint and passes it
// through. Any upstream failure becomes a 500 with a failure envelope; the
// process never sees the error.
//
// Endpoint: GET /pif
func (h *PifHandler) List(c *gin.Context) {
	entries, err := h.uc.ListEntries(c.Request.Context())
	if err != nil {
		slog.Error("pif list fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.PifErrorResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PifListResponse{
		Success: true,
		Data:    entries,
		Count:   len(entries),
	})
}
