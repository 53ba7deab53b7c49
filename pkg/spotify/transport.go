package spotify

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// send executes the request and classifies the response from its status
// code, one-shot, with no persisted state:
//
//	2xx   → Ok envelope, body read fully
//	401   → token cleared, ErrInvalidToken, body not read
//	304   → NotModified envelope, body not read
//	other → StatusError with the exact code, body not read
//
// Cache metadata (ETag, max-age) is extracted from the headers before
// any body consumption decision.
func send[T any](c *Client, req *http.Request) (*Response[T], error) {
	c.logDebugf("spotify: %s %s", req.Method, req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	etag := resp.Header.Get("ETag")
	maxAge := parseMaxAge(resp.Header.Get("Cache-Control"))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("spotify: failed to read response body: %w", err)
		}
		return &Response[T]{
			kind:   kindOk,
			body:   string(body),
			MaxAge: maxAge,
			ETag:   etag,
		}, nil

	case resp.StatusCode == http.StatusUnauthorized:
		c.clearOnUnauthorized()
		return nil, ErrInvalidToken

	case resp.StatusCode == http.StatusNotModified:
		return &Response[T]{
			kind:   kindNotModified,
			MaxAge: maxAge,
			ETag:   etag,
		}, nil

	default:
		return nil, &StatusError{Code: resp.StatusCode}
	}
}

// sendNoBody executes the request and reduces the status to success or
// failure. The body is never read here, regardless of status.
func sendNoBody(c *Client, req *http.Request) error {
	c.logDebugf("spotify: %s %s (no body)", req.Method, req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: request failed: %w", err)
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.clearOnUnauthorized()
		return ErrInvalidToken
	case resp.StatusCode == http.StatusNotModified:
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return &StatusError{Code: resp.StatusCode}
	}
}

func (c *Client) clearOnUnauthorized() {
	c.logDebugf("spotify: server rejected token, clearing")
	c.ClearToken()
}

// parseMaxAge extracts the first max-age directive from a Cache-Control
// header value. Missing or malformed directives fall back to
// DefaultMaxAge.
func parseMaxAge(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		if !strings.HasPrefix(directive, "max-age=") {
			continue
		}
		seconds, err := strconv.ParseUint(strings.TrimPrefix(directive, "max-age="), 10, 64)
		if err != nil {
			return DefaultMaxAge
		}
		return time.Duration(seconds) * time.Second
	}
	return DefaultMaxAge
}
