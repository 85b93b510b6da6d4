// Package api is the HTTP client for the game backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/logger"
)

// TokenSource supplies the bearer token for each request
type TokenSource interface {
	Token() (string, error)
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int // GET only
	RetryDelay time.Duration
	HTTPClient *http.Client
	Clock      clockwork.Clock
}

// Client handles communication with the game backend
type Client struct {
	baseURL    string
	http       *http.Client
	tokens     TokenSource
	maxRetries int
	retryDelay time.Duration
	clock      clockwork.Clock
}

// envelope wraps every backend response
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NewClient creates a new API client
func NewClient(opts Options, tokens TokenSource) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	return &Client{
		baseURL:    opts.BaseURL,
		http:       opts.HTTPClient,
		tokens:     tokens,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		clock:      opts.Clock,
	}
}

// LoginURL is the browser entry point of the Google sign-in flow
func (c *Client) LoginURL() string {
	return c.baseURL + PathGoogleLogin
}

// doRequest performs a request and returns the envelope data.
// Reads are retried on transport and 5xx errors with exponential backoff;
// writes are attempted exactly once so a batch of clicks is never applied twice.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += c.maxRetries
	}

	log := logger.FromContext(ctx)
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			log.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-c.clock.After(delay):
			}
		}

		data, err := c.once(ctx, method, path, reqBody)
		if err == nil {
			return data, nil
		}
		lastErr = err

		var apiErr *APIError
		switch {
		case ctx.Err() != nil:
			return nil, err
		case errors.As(err, &apiErr) && !apiErr.retryable():
			return nil, err
		case errors.As(err, &apiErr):
			log.Warn(LogMsgServerError, "status", apiErr.Status, "path", path, "attempt", attempt)
		default:
			log.Warn(LogMsgRequestFailed, "path", path, "error", err, "attempt", attempt)
		}
	}

	if attempts == 1 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) once(ctx context.Context, method, path string, reqBody []byte) (json.RawMessage, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		bodyReader = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, err := c.tokens.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Method: method, Path: path, Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Message
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrBackendFailure, env.Message)
	}
	return env.Data, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
	if spread := int64(c.retryDelay / jitterFraction); spread > 0 {
		delay += time.Duration(rand.Int64N(spread))
	}
	return delay
}

// decodeData unmarshals envelope data into out. Missing data is
// domain.ErrEmptyResponse unless the caller accepts an empty result.
func decodeData(data json.RawMessage, out interface{}, allowEmpty bool) error {
	if len(data) == 0 || string(data) == "null" {
		if allowEmpty {
			return nil
		}
		return domain.ErrEmptyResponse
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}
	return nil
}
