// Package api is the REST client for the library backend. It translates
// logical operations on named collections (books, users, loans) into single
// HTTP requests, attaches the current session token, and classifies every
// failure into a small error taxonomy. It keeps no cache and never retries:
// a failed request terminates with a classified error and the caller decides
// what to do with it.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/mribeiro/bibliocli/internal/logging"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenSource supplies the current session token. An empty string means
// "not logged in" and the Authorization header is omitted.
type TokenSource interface {
	Token() string
}

// Client performs the HTTP legwork shared by all resources.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New builds a Client for the backend at baseURL (e.g.
// "http://localhost:8080/api"). The timeout applies per request.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do issues one request and returns the raw response body. Transport-level
// failures map to ErrUnavailable; HTTP error statuses map to an *APIError
// carrying the backend's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := jsonCodec.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request did not reach server", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newAPIError(resp.StatusCode, data)
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
		return nil, apiErr
	}

	c.log.Debug(ctx, "response", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
	return data, nil
}

func decode[T any](data []byte) (T, error) {
	var out T
	if len(data) == 0 {
		return out, nil
	}
	if err := jsonCodec.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}
