// Package api provides the HTTP transport for the RealScroll backend:
// one client enforcing timeout, bearer-token injection and uniform
// envelope decoding. It does not retry and does not cache.
package api

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// DefaultTimeout bounds a single request when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token attached to requests. An empty
// token means no Authorization header. The session controller implements
// this; tests can use StaticToken.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource.
type StaticToken string

// Token returns the static token.
func (t StaticToken) Token() string { return string(t) }

// Config holds transport configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
}

// Client performs RealScroll API exchanges.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	tokens TokenSource
}

// New creates a new client.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		tokens: cfg.Tokens,
	}
}

// SetTokenSource replaces the token source. The composition root uses
// this to break the client/session construction cycle.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

// applyAuth adds the auth header to a request if a token is available.
func (c *Client) applyAuth(req *http.Request) {
	c.mu.RLock()
	ts := c.tokens
	c.mu.RUnlock()
	if ts == nil {
		return
	}
	if token := ts.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
