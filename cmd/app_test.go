package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/seralba/spotifind/internal/cache"
	"github.com/seralba/spotifind/pkg/spotify"
)

// createTestApp wires an app at a test server with an in-memory cache.
func createTestApp(t *testing.T, handler http.HandlerFunc) *app {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := cache.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client := spotify.New(spotify.Config{BaseURL: server.URL})
	client.UpdateToken("test-token")

	return &app{
		client: client,
		cache:  store,
		logger: zerolog.Nop(),
	}
}

func TestFetchPopulatesCache(t *testing.T) {
	var hits atomic.Int64
	a := createTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Cache-Control", "max-age=300")
		_, _ = w.Write([]byte(`{"id":"a1","name":"Artist"}`))
	})
	ctx := context.Background()

	artist, err := fetch(ctx, a, a.client.GetArtist("a1"))
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if artist.Name != "Artist" {
		t.Errorf("unexpected artist: %+v", artist)
	}

	// A fresh entry answers the second fetch from the cache.
	if _, err := fetch(ctx, a, a.client.GetArtist("a1")); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 network call, got %d", hits.Load())
	}
}

func TestFetchRevalidatesStaleEntry(t *testing.T) {
	var sawETag atomic.Value
	a := createTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		sawETag.Store(r.Header.Get("If-None-Match"))
		w.WriteHeader(http.StatusNotModified)
	})
	ctx := context.Background()

	req := a.client.GetArtist("a1")
	stale := cache.Entry{
		ETag:      `"v1"`,
		Body:      `{"id":"a1","name":"Cached Artist"}`,
		MaxAge:    10 * time.Second,
		FetchedAt: time.Now().Add(-1 * time.Hour),
	}
	if err := a.cache.Put(ctx, req.Key(), stale); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	artist, err := fetch(ctx, a, req)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if artist.Name != "Cached Artist" {
		t.Errorf("expected cached body reused, got %+v", artist)
	}
	if got := sawETag.Load(); got != `"v1"` {
		t.Errorf("expected conditional request with stored etag, got %v", got)
	}

	// 304 restarted the freshness window, so the next fetch must not
	// touch the network at all.
	entry, found, err := a.cache.Get(ctx, req.Key())
	if err != nil || !found {
		t.Fatalf("cache lost the entry: found=%v err=%v", found, err)
	}
	if !entry.Fresh(time.Now()) {
		t.Error("expected entry fresh after revalidation")
	}
}

func TestFetchReplacesChangedEntry(t *testing.T) {
	a := createTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"v2"`)
		_, _ = w.Write([]byte(`{"id":"a1","name":"New Name"}`))
	})
	ctx := context.Background()

	req := a.client.GetArtist("a1")
	stale := cache.Entry{
		ETag:      `"v1"`,
		Body:      `{"id":"a1","name":"Old Name"}`,
		MaxAge:    10 * time.Second,
		FetchedAt: time.Now().Add(-1 * time.Hour),
	}
	if err := a.cache.Put(ctx, req.Key(), stale); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	artist, err := fetch(ctx, a, req)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if artist.Name != "New Name" {
		t.Errorf("expected new content, got %+v", artist)
	}

	entry, found, err := a.cache.Get(ctx, req.Key())
	if err != nil || !found {
		t.Fatalf("cache lost the entry: found=%v err=%v", found, err)
	}
	if entry.ETag != `"v2"` || entry.Body != `{"id":"a1","name":"New Name"}` {
		t.Errorf("expected entry replaced, got %+v", entry)
	}
}

func TestFetchWithoutCache(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"id":"a1","name":"Artist"}`))
	}))
	t.Cleanup(server.Close)

	client := spotify.New(spotify.Config{BaseURL: server.URL})
	client.UpdateToken("test-token")
	a := &app{client: client, logger: zerolog.Nop()}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := fetch(ctx, a, a.client.GetArtist("a1")); err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
	}
	// No cache, every fetch goes to the network.
	if hits.Load() != 2 {
		t.Errorf("expected 2 network calls, got %d", hits.Load())
	}
}
