// Package api is the REST client for the OpenClaw backend.
package api

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
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

const (
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	// MaxRequestBody is the largest JSON body the client will send.
	MaxRequestBody = 5 * 1024 * 1024

	// maxResponseBody guards against runaway responses.
	maxResponseBody = 64 * 1024 * 1024
)

// APIError is a non-2xx response.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Status, e.Message)
}

// StatusCode returns the HTTP status of err if it is an *APIError, else 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to the OpenClaw REST API.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the debug logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for baseURL. An empty token sends no Authorization header.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		userAgent: "claw",
		http:      &http.Client{Timeout: DefaultTimeout},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken replaces the bearer token for later requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// HasToken reports whether requests carry an Authorization header.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Get issues a GET and decodes the response into out (may be nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do sends one request. body is JSON-encoded when non-nil; out receives the
// decoded response when non-nil and the response has a body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return clawerrors.Wrap(clawerrors.CodeAPIDecode, "encoding request body", err)
		}
		if len(data) > MaxRequestBody {
			return clawerrors.Newf(clawerrors.CodeAPIBodyTooLarge,
				"request body too large: %d bytes (max %d)", len(data), MaxRequestBody).
				WithDetail("path", path)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return clawerrors.Wrapf(clawerrors.CodeAPITransport, err, "building %s %s", method, path)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return clawerrors.Wrapf(clawerrors.CodeAPITransport, err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return clawerrors.Wrapf(clawerrors.CodeAPITransport, err, "reading response of %s %s", method, path)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
		"bytes", len(data),
		"request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:    resp.StatusCode,
			Message:   errorMessage(resp, data),
			RequestID: requestID,
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return clawerrors.Wrapf(clawerrors.CodeAPIDecode, err, "decoding response of %s %s", method, path)
	}
	return nil
}

// errorMessage prefers the body's "error" field, then the status text.
func errorMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// seg escapes a user-supplied path segment.
func seg(s string) string {
	return url.PathEscape(s)
}
