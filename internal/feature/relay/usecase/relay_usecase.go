// Package usecase implements the relay pipeline: validate the inbound
// payload, resolve a destination, forward with bounded retry, and classify
// the outcome.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"sheet_relay/internal/feature/relay/domain/entity"
	"sheet_relay/internal/shared/ratelimiter"
	"sheet_relay/internal/shared/retry"
)

// The automation platform finishes a successful POST with a redirect, so a
// 302 counts as success. Kept as a named constant rather than an inline
// literal so the policy is visible and testable on its own.
const redirectSuccessStatus = http.StatusFound

const (
	defaultSheetName   = "Sheet1"
	forwardMaxAttempts = 2
	forwardBackoff     = 500 * time.Millisecond
)

var (
	// ErrInvalidPayload marks requests rejected before any outbound call.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrNoDestination means neither an override nor a configured default URL exists.
	ErrNoDestination = errors.New("no destination url")
	// ErrUpstreamRejected is a non-retryable failure status from the destination.
	ErrUpstreamRejected = errors.New("destination rejected request")
	// ErrUpstreamUnavailable means retries were exhausted on transient failures.
	ErrUpstreamUnavailable = errors.New("destination unavailable")
)

// SheetForwarder performs one outbound POST of the envelope to destination.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SheetForwarder interface {
	Forward(ctx context.Context, destination string, env entity.ForwardEnvelope) (entity.ForwardReply, error)
}

// ForwardCommand is the validated-enough inbound request: Values must be a
// JSON array (nil means it was absent), DestinationOverride is optional.
type ForwardCommand struct {
	SheetName           string
	Values              []json.RawMessage
	DestinationOverride string
}

// ForwardResult carries the upstream status and body of the attempt that
// settled the outcome, plus how many attempts were made.
type ForwardResult struct {
	Status   int
	Body     string
	Attempts int
}

// RelayUsecase forwards spreadsheet rows to the automation endpoint.
type RelayUsecase struct {
	forwarder  SheetForwarder
	defaultURL string
	policy     retry.Policy
	limiter    ratelimiter.RateLimiterInterface
}

// NewRelayUsecase creates a RelayUsecase with the production retry policy
// (two attempts, fixed 500ms backoff). The limiter may be nil.
func NewRelayUsecase(f SheetForwarder, defaultURL string, limiter ratelimiter.RateLimiterInterface) *RelayUsecase {
	return &RelayUsecase{
		forwarder:  f,
		defaultURL: defaultURL,
		policy:     retry.Policy{MaxAttempts: forwardMaxAttempts, Backoff: forwardBackoff},
		limiter:    limiter,
	}
}

// Forward validates cmd, resolves the destination, and POSTs the normalized
// envelope with at most one retry on transient failure. Permanent failures
// (non-5xx error statuses) are never retried.
func (u *RelayUsecase) Forward(ctx context.Context, cmd ForwardCommand) (ForwardResult, error) {
	if cmd.Values == nil {
		return ForwardResult{}, fmt.Errorf("%w: values must be an array of rows", ErrInvalidPayload)
	}

	destination := cmd.DestinationOverride
	if destination == "" {
		destination = u.defaultURL
	}
	if destination == "" {
		return ForwardResult{}, fmt.Errorf("%w: set GAS_FORWARD_URL or pass destinationOverride", ErrNoDestination)
	}

	sheet := cmd.SheetName
	if sheet == "" {
		sheet = defaultSheetName
	}
	// The override never travels downstream; the forwarded body is always
	// exactly {sheetName, values}.
	env := entity.ForwardEnvelope{SheetName: sheet, Values: cmd.Values}

	var (
		reply   entity.ForwardReply
		lastErr error
	)
	attempts, class := u.policy.Do(ctx, func(ctx context.Context, attempt int) retry.Class {
		if u.limiter != nil {
			u.limiter.WaitIfNeeded(ctx)
		}
		r, err := u.forwarder.Forward(ctx, destination, env)
		if err != nil {
			lastErr = err
			slog.Warn("forward attempt failed", "attempt", attempt, "error", err)
			return retry.Transient
		}
		reply = r
		lastErr = nil
		return classifyForwardStatus(r.Status)
	})

	res := ForwardResult{Status: reply.Status, Body: reply.Body, Attempts: attempts}
	switch class {
	case retry.Success:
		return res, nil
	case retry.Permanent:
		return res, fmt.Errorf("%w: upstream status %d", ErrUpstreamRejected, reply.Status)
	default:
		if lastErr != nil {
			return res, fmt.Errorf("%w after %d attempts: %v", ErrUpstreamUnavailable, attempts, lastErr)
		}
		return res, fmt.Errorf("%w after %d attempts: upstream status %d", ErrUpstreamUnavailable, attempts, reply.Status)
	}
}

// classifyForwardStatus maps an upstream HTTP status to a retry class:
// 2xx and 302 succeed, 5xx is transient, everything else is permanent.
func classifyForwardStatus(status int) retry.Class {
	switch {
	case status >= 200 && status < 300:
		return retry.Success
	case status == redirectSuccessStatus:
		return retry.Success
	case status >= 500:
		return retry.Transient
	default:
		return retry.Permanent
	}
}
