package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/urls"
	"github.com/muurk/authdeck/internal/version"
)

// MaxBodySize caps how much of a response body is read. Larger replies are
// a parse error rather than being truncated.
const MaxBodySize = 1 << 20

// Client talks to the authentication API.
//
// Each call issues exactly one request. There is no retry and, unless
// SetTimeout is called, no timeout.
type Client struct {
	// BaseURL is the API root (e.g., "http://localhost:3000")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the HTTP request timeout. Zero disables it.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Login posts credentials to /api/users/login.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Response, error) {
	return c.post(ctx, urls.LoginPath, req)
}

// Register posts a new account to /api/users/register.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Response, error) {
	return c.post(ctx, urls.RegisterPath, req)
}

// post sends body as JSON and decodes the JSON reply regardless of status.
func (c *Client) post(ctx context.Context, path string, body any) (resp *Response, err error) {
	endpoint := urls.Join(c.BaseURL, path)
	start := time.Now()
	status := 0
	defer func() {
		logging.LogAPICall(http.MethodPost, endpoint, status, time.Since(start), err)
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, NewRequestError("failed to encode request body", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, NewRequestError("failed to create POST request", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	httpResp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("POST request failed", endpoint, err)
	}
	defer func() { _ = httpResp.Body.Close() }()
	status = httpResp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, MaxBodySize+1))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", endpoint, err)
	}
	if len(raw) > MaxBodySize {
		return nil, NewParseError(fmt.Sprintf("response body exceeds %d bytes", MaxBodySize), endpoint, status, nil)
	}

	// Any JSON value is accepted; only objects carry fields.
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, NewParseError("failed to parse JSON response", endpoint, status, err)
	}

	resp = &Response{StatusCode: status, Raw: decoded}
	if obj, ok := decoded.(map[string]any); ok {
		resp.Body = obj
	}
	return resp, nil
}
