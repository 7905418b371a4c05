package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/greghughespdx/brain-mcp-server/internal/logging"
)

// DefaultSource identifies entries captured through this server when the
// caller does not name a source of their own.
const DefaultSource = "mcp-client"

// CaptureResult is the normalized outcome of an entry creation. Some Brain
// deployments wrap the created entry in an "entry" object while others return
// id/status at the top level; the client resolves that here so formatters
// never see the difference.
type CaptureResult struct {
	ID     string
	Status string
}

// Client issues HTTP requests against a Brain API deployment. Each call is
// independent and synchronous; there are no retries and no shared state
// between calls.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: timeout,
		log:     log.WithName("client"),
	}
}

// Do performs a single request against the Brain API and parses the JSON
// response body. Non-2xx statuses become *APIError, network failures become
// *TransportError, and an unsupported method is a *ConfigError.
func (c *Client) Do(ctx context.Context, method, path string, body any, params url.Values) (gjson.Result, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return gjson.Result{}, &ConfigError{Reason: "unsupported HTTP method: " + method}
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return gjson.Result{}, &ConfigError{Reason: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "err", err)
		return gjson.Result{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, &TransportError{Err: err}
	}

	c.log.Debug("request complete",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return gjson.ParseBytes(respBody), nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// CreateEntry submits a capture payload and returns the normalized result.
func (c *Client) CreateEntry(ctx context.Context, payload map[string]any) (CaptureResult, error) {
	res, err := c.Do(ctx, http.MethodPost, "/brain/entries", payload, nil)
	if err != nil {
		return CaptureResult{}, err
	}
	if entry := res.Get("entry"); entry.Exists() {
		res = entry
	}
	return CaptureResult{
		ID:     res.Get("id").String(),
		Status: res.Get("status").String(),
	}, nil
}

// Search runs a full-text query over entry text and titles.
func (c *Client) Search(ctx context.Context, query string) (gjson.Result, error) {
	params := url.Values{"q": []string{query}}
	return c.Do(ctx, http.MethodGet, "/brain/search", nil, params)
}

// ListEntries fetches recent entries, newest first, applying any of the
// limit/status/domain/type filters present in params.
func (c *Client) ListEntries(ctx context.Context, params url.Values) (gjson.Result, error) {
	return c.Do(ctx, http.MethodGet, "/brain/entries", nil, params)
}

// GetEntry fetches a single entry by ID.
func (c *Client) GetEntry(ctx context.Context, id string) (gjson.Result, error) {
	return c.Do(ctx, http.MethodGet, "/brain/entries/"+url.PathEscape(id), nil, nil)
}
