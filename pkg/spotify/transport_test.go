package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// newTestClient points a client with an installed token at a test
// server.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Config{BaseURL: server.URL})
	client.UpdateToken("test-token")
	return client, server
}

func TestSendNoTokenFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	client := New(Config{BaseURL: server.URL})

	_, err := client.GetArtist("abc").Send(context.Background())
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if err := client.SaveAlbum("abc").SendNoBody(context.Background()); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken from SendNoBody, got %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("expected no network calls, server saw %d", hits.Load())
	}
}

func TestSendSuccess(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		cacheControl string
		etag         string
		body         string
		wantMaxAge   time.Duration
	}{
		{
			name:       "200 with default max-age",
			statusCode: http.StatusOK,
			body:       `{"id":"a1","name":"Artist"}`,
			wantMaxAge: 10 * time.Second,
		},
		{
			name:         "200 with max-age and etag",
			statusCode:   http.StatusOK,
			cacheControl: "public, max-age=600",
			etag:         `"v1"`,
			body:         `{"id":"a1","name":"Artist"}`,
			wantMaxAge:   600 * time.Second,
		},
		{
			name:         "200 with malformed max-age",
			statusCode:   http.StatusOK,
			cacheControl: "max-age=soon",
			body:         `{}`,
			wantMaxAge:   10 * time.Second,
		},
		{
			name:       "201 counts as success",
			statusCode: http.StatusCreated,
			body:       "",
			wantMaxAge: 10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
					t.Errorf("expected bearer header, got %q", got)
				}
				if tt.cacheControl != "" {
					w.Header().Set("Cache-Control", tt.cacheControl)
				}
				if tt.etag != "" {
					w.Header().Set("ETag", tt.etag)
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.GetArtist("a1").Send(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.NotModified() {
				t.Error("expected Ok envelope")
			}
			if resp.Body() != tt.body {
				t.Errorf("expected body %q, got %q", tt.body, resp.Body())
			}
			if resp.MaxAge != tt.wantMaxAge {
				t.Errorf("expected max age %v, got %v", tt.wantMaxAge, resp.MaxAge)
			}
			if resp.ETag != tt.etag {
				t.Errorf("expected etag %q, got %q", tt.etag, resp.ETag)
			}
		})
	}
}

func TestSendNotModified(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("If-None-Match"); got != `"v7"` {
			t.Errorf("expected If-None-Match %q, got %q", `"v7"`, got)
		}
		w.Header().Set("ETag", `"v7"`)
		w.Header().Set("Cache-Control", "max-age=120")
		w.WriteHeader(http.StatusNotModified)
	})

	resp, err := client.GetAlbum("b2").Etag(`"v7"`).Send(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.NotModified() {
		t.Fatal("expected NotModified envelope")
	}
	if resp.Body() != "" {
		t.Errorf("NotModified must carry no body, got %q", resp.Body())
	}
	if resp.ETag != `"v7"` {
		t.Errorf("expected etag preserved, got %q", resp.ETag)
	}
	if resp.MaxAge != 120*time.Second {
		t.Errorf("expected max age 120s, got %v", resp.MaxAge)
	}
	if _, ok := resp.Deserialize(); ok {
		t.Error("Deserialize must report absence for NotModified")
	}
}

func TestSendUnauthorizedClearsToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetArtist("a1").Send(context.Background())
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if client.HasToken() {
		t.Error("expected token cleared after 401")
	}

	// The next call fails fast without reaching the server.
	_, err = client.GetArtist("a1").Send(context.Background())
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("expected ErrNoToken after clear, got %v", err)
	}
}

func TestSendBadStatus(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusTooManyRequests, http.StatusBadGateway} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})

		_, err := client.GetArtist("a1").Send(context.Background())
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("status %d: expected StatusError, got %v", code, err)
		}
		if statusErr.Code != code {
			t.Errorf("expected code %d, got %d", code, statusErr.Code)
		}
		if !client.HasToken() {
			t.Errorf("status %d must not clear the token", code)
		}
	}
}

func TestSendNetworkError(t *testing.T) {
	client := New(Config{BaseURL: "http://127.0.0.1:1", HTTPClient: &http.Client{Timeout: 200 * time.Millisecond}})
	client.UpdateToken("test-token")

	_, err := client.GetArtist("a1").Send(context.Background())
	if err == nil {
		t.Fatal("expected network error")
	}
	if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrNoToken) {
		t.Errorf("network failure must be its own kind, got %v", err)
	}
}

func TestSendNoBody(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "200", statusCode: http.StatusOK},
		{name: "204", statusCode: http.StatusNoContent},
		{name: "304", statusCode: http.StatusNotModified},
		{name: "401", statusCode: http.StatusUnauthorized, wantErr: ErrInvalidToken},
		{name: "500", statusCode: http.StatusInternalServerError, wantErr: &StatusError{Code: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method string
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				method = r.Method
				w.WriteHeader(tt.statusCode)
			})

			err := client.SaveAlbum("b2").SendNoBody(context.Background())
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if method != http.MethodPut {
					t.Errorf("expected PUT, got %s", method)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.statusCode == http.StatusUnauthorized && client.HasToken() {
				t.Error("expected token cleared after 401")
			}
		})
	}
}

func TestParseMaxAge(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "absent", header: "", want: 10 * time.Second},
		{name: "plain", header: "max-age=300", want: 300 * time.Second},
		{name: "after other directives", header: "public, no-transform, max-age=60", want: 60 * time.Second},
		{name: "malformed value", header: "max-age=abc", want: 10 * time.Second},
		{name: "negative value", header: "max-age=-5", want: 10 * time.Second},
		{name: "no max-age directive", header: "no-cache, no-store", want: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseMaxAge(tt.header); got != tt.want {
				t.Errorf("parseMaxAge(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
