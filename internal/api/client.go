// Package api implements the HTTP client for the ministry portal REST API.
//
// All requests leave through (*Client).Fetch, which decorates them with the
// standard headers and the bearer token when the session holds one. Fetch
// itself never interprets status codes, never retries, and never refreshes
// tokens; the typed endpoint methods layered on top decide which status
// means success for each call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jdisla/medioambiente-cli/internal/common"
)

// TokenSource yields the bearer token current at the moment a request is
// built. The session satisfies this interface.
type TokenSource interface {
	Token() (string, bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New builds a Client for the API rooted at baseURL. tokens may be nil for
// a client that only reaches public endpoints.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch builds and sends one request. The URL is baseURL plus path with
// exactly one joining slash, plus the optional query. Accept is always
// application/json; Content-Type defaults to application/json when a body
// is present and contentType is empty, so callers sending multipart or raw
// payloads pass their own contentType instead. The Authorization header is
// set iff the token source currently holds a token.
//
// The raw response is returned; status interpretation is the caller's job.
// Transport failures are wrapped in common.ErrUnavailable.
func (c *Client) Fetch(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	return res, nil
}

// apiError drains the response and builds an *Error, picking the API's
// `error` field out of the body when one is there.
func apiError(res *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	return &Error{Status: res.StatusCode, Message: body.Error}
}

// getJSON fetches path and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	res, err := c.Fetch(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return apiError(res)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", common.ErrUnavailable, path, err)
	}
	return nil
}

// postJSON sends in as a JSON body and decodes the response into out (when
// out is non-nil). Any status other than want is a failure.
func (c *Client) postJSON(ctx context.Context, path string, in any, out any, want int) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	res, err := c.Fetch(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != want {
		return apiError(res)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s: %v", common.ErrUnavailable, path, err)
		}
	}
	return nil
}
