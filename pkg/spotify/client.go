package spotify

import (
	"net/http"
	"sync"
)

const (
	// DefaultBaseURL is the Spotify Web API host. All requests go over
	// HTTPS to this host unless a BaseURL override is configured.
	DefaultBaseURL = "https://api.spotify.com"
)

// Config holds client configuration.
type Config struct {
	HTTPClient *http.Client // Optional: HTTP client (defaults to a shared long-lived client)
	BaseURL    string       // Optional: base URL override, used for testing
	Logger     Logger       // Optional: logger for debug output
}

// Logger is an optional interface for debug logging.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Client is the entry point for Spotify Web API operations.
//
// It owns the bearer token (at most one live value, guarded by a mutex
// so concurrent requests observe a consistent snapshot) and a single
// long-lived HTTP client; connection pooling is the HTTP client's
// concern, not this layer's.
type Client struct {
	mu    sync.Mutex
	token string

	httpClient *http.Client
	baseURL    string
	logger     Logger
}

// New creates a Spotify Web API client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}
}

// HasToken reports whether a bearer token is currently installed.
func (c *Client) HasToken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

// UpdateToken replaces the stored bearer token unconditionally. It is
// called by the external auth flow; the previous value, if any, is
// discarded.
func (c *Client) UpdateToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the stored bearer token. The transport clears the
// token itself when the server answers 401, so subsequent requests fail
// fast instead of hitting a dead credential.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// snapshotToken returns the current token and whether one is present.
// Requests that already copied their token are unaffected by a later
// clear; there is no cross-request cancellation.
func (c *Client) snapshotToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.token != ""
}

func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
