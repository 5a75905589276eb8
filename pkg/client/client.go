// Package client provides an HTTP client for the MovieHub REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second

	contentTypeJSON       = "application/json"
	contentTypeMergePatch = "application/merge-patch+json"
)

// Client talks to the /api/* endpoints of a MovieHub server.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is used as
// is and never modified; a nil client keeps the default one.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout bounds each request. It is enforced through the request
// context, so it applies regardless of the HTTP client in use. A
// non-positive timeout disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock overrides the clock used for cache-buster values.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Movies() *Resource[Movie] {
	return NewResource[Movie](c, MoviesPath)
}

func (c *Client) News() *Resource[News] {
	return NewResource[News](c, NewsPath)
}

func (c *Client) Twitters() *Resource[Twitter] {
	return NewResource[Twitter](c, TwittersPath)
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	contentType string
}

// do performs req and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) (http.Header, error) {
	u := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		contentType := req.contentType
		if contentType == "" {
			contentType = contentTypeJSON
		}
		httpReq.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug("sending request", zap.String("method", req.method), zap.String("url", u.String()))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("request failed", zap.String("method", req.method), zap.String("url", u.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, req.method, u.String(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("request rejected",
			zap.String("method", req.method),
			zap.String("url", u.String()),
			zap.Int("status", resp.StatusCode))
		return nil, &RequestError{
			Method:     req.method,
			URL:        u.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %w", ErrRequestFailed, err)
		}
	}

	return resp.Header, nil
}
