package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/steamship-core/steamship-go/internal/version"
	"github.com/steamship-core/steamship-go/internal/wire"
	"github.com/steamship-core/steamship-go/pkg/task"
)

// Request headers understood by the server.
const (
	HeaderRequestID   = "X-Request-Id"
	HeaderSpaceID     = "X-Space-Id"
	HeaderSpaceHandle = "X-Space-Handle"
)

// maxErrorBody caps how much of an unexpected response body is kept in a
// TransportError.
const maxErrorBody = 1024

// Client is the Steamship transport. It implements task.Poster and exposes
// the domain operations built on it.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     hclog.Logger
}

var _ task.Poster = (*Client)(nil)

// New creates a client from cfg. Unset fields take their DefaultConfig values
// before validation. A nil logger disables logging.
func New(cfg *Config, logger hclog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		config:     cfg,
		httpClient: cfg.NewHTTPClient(),
		logger:     logger.Named("steamship-client"),
	}, nil
}

// Config returns the client's configuration.
func (c *Client) Config() *Config {
	return c.config
}

// Post sends payload as JSON to route and decodes the reply envelope.
//
// Network errors and 5xx responses are retried with exponential backoff. A
// non-2xx reply whose body carries an error description is returned as an
// envelope, not an error.
func (c *Client) Post(ctx context.Context, route string, payload any, routing task.Routing) (*task.Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	endpoint := strings.TrimRight(c.config.APIBase, "/") + "/" + strings.TrimLeft(route, "/")
	requestID := uuid.NewString()
	logger := c.logger.With("route", route, "request_id", requestID)

	var env *task.Envelope
	operation := func() error {
		var err error
		env, err = c.send(ctx, endpoint, route, requestID, body, routing)
		if err == nil {
			return nil
		}
		var transportErr *TransportError
		if errors.As(err, &transportErr) && transportErr.retryable() {
			return err
		}
		return backoff.Permanent(err)
	}

	notify := func(err error, delay time.Duration) {
		logger.Warn("retrying request", "delay", delay, "error", err)
	}

	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		logger.Error("request failed", "error", err)
		return nil, err
	}

	logger.Debug("request completed",
		"has_task", env.Status != nil,
		"has_error", env.Error != nil,
	)
	return env, nil
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.RetryDelay
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.config.MaxRetries)), ctx)
}

func (c *Client) send(ctx context.Context, endpoint, route, requestID string, body []byte, routing task.Routing) (*task.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, requestID, routing)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TransportError{Route: route, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Route: route, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode >= 500 {
		return nil, &TransportError{Route: route, StatusCode: resp.StatusCode, Body: truncate(respBody)}
	}

	env, decodeErr := decodeEnvelope(respBody)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr != nil {
			return nil, &TransportError{Route: route, StatusCode: resp.StatusCode, Err: decodeErr}
		}
		return env, nil
	}

	if decodeErr == nil && env.Error != nil {
		return env, nil
	}
	return nil, &TransportError{Route: route, StatusCode: resp.StatusCode, Body: truncate(respBody)}
}

func (c *Client) setHeaders(req *http.Request, requestID string, routing task.Routing) {
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "steamship-go/"+version.Version)
	req.Header.Set(HeaderRequestID, requestID)

	spaceID, spaceHandle := routing.SpaceID, routing.SpaceHandle
	if spaceID == "" && spaceHandle == "" {
		spaceID, spaceHandle = c.config.SpaceID, c.config.SpaceHandle
	}
	if spaceID != "" {
		req.Header.Set(HeaderSpaceID, spaceID)
	}
	if spaceHandle != "" {
		req.Header.Set(HeaderSpaceHandle, spaceHandle)
	}
}

// decodeEnvelope parses a reply body. Besides the {data, status, error}
// shape, a top-level "reason" is accepted as the error message.
func decodeEnvelope(body []byte) (*task.Envelope, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return &task.Envelope{}, nil
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	m := wire.Map(raw)
	if m == nil {
		return nil, fmt.Errorf("failed to decode response: expected a JSON object")
	}

	env := &task.Envelope{
		Data:   m["data"],
		Status: wire.Map(m["status"]),
		Error:  wire.Map(m["error"]),
	}
	if env.Error == nil {
		if reason := wire.String(m, "reason"); reason != "" {
			env.Error = map[string]any{
				"message":    reason,
				"code":       wire.String(m, "code"),
				"suggestion": wire.String(m, "suggestion"),
			}
		}
	}
	return env, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
