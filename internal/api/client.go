// Package api is the HTTP client for the CRM backend.
//
// All outbound requests go through Client.do, which attaches the current
// bearer token (when one exists) immediately before dispatch. The client
// never retries, never refreshes tokens, and never interprets auth failures:
// a 401/403 is returned to the caller as an *APIError, and the caller decides
// what to do with the session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token. An empty string means the
// request is dispatched anonymously.
type TokenSource func() string

// Client is the CRM API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new CRM API client. The token source may be nil for a
// client that only performs anonymous calls.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs an HTTP request. When authenticated is true and a token is
// available, the Authorization header is attached; with no token the request
// goes out unmodified. Auth endpoints call with authenticated=false so login
// and registration never carry a stale credential.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, authenticated bool) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if authenticated && c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// errorBody is the JSON shape the backend uses for error responses
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseResponse decodes the response body into target, converting non-2xx
// statuses into *APIError. A nil target discards the body.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{StatusCode: resp.StatusCode}

		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			if eb.Error != "" {
				apiErr.Message = eb.Error
			} else if eb.Message != "" {
				apiErr.Message = eb.Message
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = string(body)
		}

		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
