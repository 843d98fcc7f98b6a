// Package client talks to the plan-generation and search endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/ziadkadry99/tripplan/internal/api"
)

// Client issues JSON requests against a tripplan backend. Cookies set by the
// backend are kept in a jar and sent back on later requests, so the backend
// sees the same credentials a same-origin browser page would send.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses a copy of hc for every request. Its cookie jar is kept
// unless it has none, in which case a fresh jar is attached to the copy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		c.http = &cp
	}
}

// WithCookieJar sets the cookie jar used for same-origin credentials.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) { c.http.Jar = jar }
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		// cookiejar.New only fails for a broken PublicSuffixList, and we pass none.
		jar, _ := cookiejar.New(nil)
		c.http.Jar = jar
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// GeneratePlan posts req to the plan-generation endpoint. No timeout is
// applied here; callers bound ctx.
func (c *Client) GeneratePlan(ctx context.Context, req api.PlanRequest) (*api.PlanResponse, error) {
	var resp api.PlanResponse
	if err := c.post(ctx, api.GeneratePlanPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search posts req to the search endpoint.
func (c *Client) Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error) {
	var resp api.SearchResponse
	if err := c.post(ctx, api.SearchPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping issues GET /healthz and returns an error unless it answers 200.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(ctx, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		}
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// transportError maps a failed Do into ErrAborted or ErrUnreachable.
func (c *Client) transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
	}
	return fmt.Errorf("%w: %w", ErrUnreachable, err)
}
