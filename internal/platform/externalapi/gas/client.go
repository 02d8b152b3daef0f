package gas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"sheet_relay/internal/feature/piflist/usecase"
	"sheet_relay/internal/feature/relay/domain/entity"
	relayusecase "sheet_relay/internal/feature/relay/usecase"
	"sheet_relay/internal/platform/externalapi/gas/dto"
)

// pifListAction selects the PIF list on the shared script endpoint.
const pifListAction = "getPifList"

// Client talks to the Apps Script endpoints over plain HTTPS with JSON
// bodies. The supplied http.Client must not follow redirects: the script
// platform answers completed POSTs with a 302 that callers need to see.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time checks that Client satisfies the feature ports.
var (
	_ relayusecase.SheetForwarder = (*Client)(nil)
	_ usecase.PifSource           = (*Client)(nil)
)

// NewClient creates a new Client with the given config and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Forward POSTs the envelope to destination and returns the upstream status
// and body verbatim. It performs exactly one attempt; retrying is the
// caller's policy, not the transport's.
func (c *Client) Forward(ctx context.Context, destination string, env entity.ForwardEnvelope) (entity.ForwardReply, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return entity.ForwardReply{}, fmt.Errorf("marshal forward envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destination, bytes.NewReader(body))
	if err != nil {
		return entity.ForwardReply{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return entity.ForwardReply{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return entity.ForwardReply{}, fmt.Errorf("read forward response: %w", err)
	}

	return entity.ForwardReply{Status: res.StatusCode, Body: string(b)}, nil
}

// FetchPifList GETs the PIF list and returns its entries without
// interpreting them. Any transport error, error status, or success:false
// envelope is surfaced as an error; this call is never retried.
func (c *Client) FetchPifList(ctx context.Context) ([]json.RawMessage, error) {
	if c.cfg.PifURL == "" {
		return nil, errors.New("gas: GAS_PIF_URL is not configured")
	}

	q := url.Values{}
	q.Set("action", pifListAction)
	u := fmt.Sprintf("%s?%s", c.cfg.PifURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("gas http %d", res.StatusCode)
	}

	var body dto.ListEnvelope
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode pif envelope: %w", err)
	}
	if !body.Success {
		if body.Error != "" {
			return nil, fmt.Errorf("gas: %s", body.Error)
		}
		return nil, errors.New("gas: upstream reported failure")
	}

	return body.Data, nil
}
