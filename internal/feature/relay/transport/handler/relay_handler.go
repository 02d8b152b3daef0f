// Package handler provides the HTTP handlers for the relay feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sheet_relay/internal/feature/relay/transport/http/dto"
	"sheet_relay/internal/feature/relay/usecase"
)

// RelayUsecase is the relay pipeline interface.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type RelayUsecase interface {
	Forward(ctx context.Context, cmd usecase.ForwardCommand) (usecase.ForwardResult, error)
}

// RelayHandler handles forward requests from browser extensions.
type RelayHandler struct {
	uc RelayUsecase
}

// NewRelayHandler creates a new RelayHandler.
func NewRelayHandler(uc RelayUsecase) *RelayHandler {
	return &RelayHandler{uc: uc}
}

// Forward accepts {sheetName?, values[], destinationOverride?} and relays it
// to the automation endpoint.
//
// Endpoint: POST /forward
//
// Responses: 200 on success (302 from the destination included), 400 on
// invalid payload or unresolvable destination, 502 on upstream failure,
// 500 on anything unexpected. Every response carries elapsed milliseconds.
func (h *RelayHandler) Forward(c *gin.Context) {
	start := time.Now()

	var req dto.ForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forward request rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ForwardResponse{
			OK:      false,
			Error:   "values must be an array of rows: " + err.Error(),
			Elapsed: elapsedMillis(start),
		})
		return
	}

	result, err := h.uc.Forward(c.Request.Context(), usecase.ForwardCommand{
		SheetName:           req.SheetName,
		Values:              req.Values,
		DestinationOverride: req.DestinationOverride,
	})
	elapsed := elapsedMillis(start)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.ForwardResponse{
			OK:      true,
			Status:  result.Status,
			Text:    result.Body,
			Elapsed: elapsed,
		})
	case errors.Is(err, usecase.ErrInvalidPayload) || errors.Is(err, usecase.ErrNoDestination):
		c.JSON(http.StatusBadRequest, dto.ForwardResponse{
			OK:      false,
			Error:   err.Error(),
			Elapsed: elapsed,
		})
	case errors.Is(err, usecase.ErrUpstreamRejected) || errors.Is(err, usecase.ErrUpstreamUnavailable):
		slog.Error("forward failed upstream", "error", err, "status", result.Status, "attempts", result.Attempts)
		c.JSON(http.StatusBadGateway, dto.ForwardResponse{
			OK:      false,
			Status:  result.Status,
			Text:    result.Body,
			Error:   err.Error(),
			Elapsed: elapsed,
		})
	default:
		slog.Error("forward failed unexpectedly", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ForwardResponse{
			OK:      false,
			Error:   err.Error(),
			Elapsed: elapsed,
		})
	}
}

func elapsedMillis(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
