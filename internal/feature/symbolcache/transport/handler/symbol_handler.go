// Package handler provides the HTTP handlers for the symbolcache feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheet_relay/internal/feature/symbolcache/domain/entity"
	"sheet_relay/internal/feature/symbolcache/transport/http/dto"
	"sheet_relay/internal/feature/symbolcache/usecase"
)

// SymbolUsecase is the snapshot slot interface.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SymbolUsecase interface {
	Write(ctx context.Context, cmd usecase.WriteCommand) (int, error)
	Read(ctx context.Context) (entity.Snapshot, error)
}

// SymbolHandler handles symbol snapshot requests.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// Save replaces the stored snapshot with the posted one.
//
// Endpoint: POST /symbols
func (h *SymbolHandler) Save(c *gin.Context) {
	var req dto.SaveSymbolsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("symbol write rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.SymbolErrorResponse{Success: false, Error: "symbols must be an array of strings"})
		return
	}

	count, err := h.uc.Write(c.Request.Context(), usecase.WriteCommand{
		Symbols:   req.Symbols,
		FullData:  req.FullData,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPayload) {
			c.JSON(http.StatusBadRequest, dto.SymbolErrorResponse{Success: false, Error: err.Error()})
			return
		}
		slog.Error("symbol write failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.SymbolErrorResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SaveSymbolsResponse{Success: true, Count: count})
}

// List returns the stored snapshot, or a "not available" result when no
// snapshot has been written yet. Both are 200: an empty slot is a valid
// state, not an error.
//
// Endpoint: GET /symbols
func (h *SymbolHandler) List(c *gin.Context) {
	snap, err := h.uc.Read(c.Request.Context())
	if err != nil {
		slog.Error("symbol read failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.SymbolErrorResponse{Success: false, Error: err.Error()})
		return
	}

	if snap.IsEmpty() {
		c.JSON(http.StatusOK, dto.SymbolListResponse{
			Success: false,
			Symbols: []string{},
			Count:   0,
			Message: "no symbols stored yet",
		})
		return
	}

	ts := snap.Timestamp
	c.JSON(http.StatusOK, dto.SymbolListResponse{
		Success:   true,
		Symbols:   snap.Symbols,
		Count:     len(snap.Symbols),
		Timestamp: &ts,
	})
}
