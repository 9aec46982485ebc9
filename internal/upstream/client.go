// Package upstream is the authenticated HTTP client for the Magic Call API.
//
// Every verb attaches the caller's bearer token (carried in context by the
// session layer), serializes bodies as JSON, and transparently unwraps the
// API's {data, message} envelope so callers always see the inner payload.
// A 401 from any verb surfaces as ErrUnauthorized so the session layer can
// tear the session down in one place.
package upstream

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
)

// ErrUnauthorized means the upstream rejected the bearer token. The caller
// must treat the session as dead regardless of which operation triggered it.
var ErrUnauthorized = errors.New("upstream: unauthorized")

// APIError is any non-2xx upstream answer other than 401. Message carries
// the human-readable text extracted from the response body, verbatim, so the
// console can show it to the admin.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
}

const maxResponseBytes = 8 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given base URL (including the /api
// prefix). No retries are performed; every failure is terminal for that
// admin action.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) (string, error) {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) (string, error) {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do issues one request and decodes the response into out (when non-nil).
// The returned string is the optional envelope message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (string, error) {
	if c == nil || c.baseURL == "" {
		return "", errors.New("upstream client not configured")
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok, ok := TokenFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	payload, msg := unwrap(raw)
	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
	}
	return msg, nil
}

// unwrap peels the {data, message} envelope when present. Bare payloads
// (arrays, envelope-less objects) pass through unchanged; a message on an
// envelope without data (mutation acks) is still surfaced.
func unwrap(raw []byte) (json.RawMessage, string) {
	if len(raw) == 0 {
		return nil, ""
	}
	var env struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw, ""
	}
	if env.Data != nil {
		return env.Data, env.Message
	}
	return raw, env.Message
}

// errorMessage extracts the business-rule rejection text from a non-2xx body.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return http.StatusText(status)
}
