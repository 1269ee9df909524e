package teamviewer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the TeamViewer Web API v1 endpoint.
const DefaultBaseURL = "https://webapi.teamviewer.com/api/v1"

const defaultTimeout = 30 * time.Second

// Client is a minimal TeamViewer Web API client. Every call issues exactly
// one HTTPS request authenticated with a bearer token (Script Token or
// OAuth 2.0 access token) and returns the raw response body.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a TeamViewer API client for the given bearer token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the TeamViewer API. The status code
// and response body are surfaced verbatim.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("teamviewer api error (status %d): %s", e.Status, e.Body)
}

// Get issues a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (string, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil)
}

// Post issues a POST request with a JSON body. A nil body is sent as {}.
func (c *Client) Post(ctx context.Context, path string, body map[string]any) (string, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body. A nil body is sent as {}.
func (c *Client) Put(ctx context.Context, path string, body map[string]any) (string, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (string, error) {
	return c.do(ctx, http.MethodDelete, c.baseURL+path, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body map[string]any) (string, error) {
	if body == nil {
		body = map[string]any{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, method, c.baseURL+path, bytes.NewReader(payload))
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	// DELETE and some PUT endpoints answer 204 with no body.
	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return `{"success":true}`, nil
	}
	return string(respBody), nil
}
