package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/seralba/spotifind/internal/auth"
	"github.com/seralba/spotifind/internal/cache"
	"github.com/seralba/spotifind/internal/config"
	"github.com/seralba/spotifind/pkg/spotify"
)

// app bundles the pieces every command needs: configuration, the API
// client with a freshly installed token, and the response cache.
type app struct {
	cfg    *config.Config
	client *spotify.Client
	cache  *cache.Store
	auth   *auth.Authenticator
	logger zerolog.Logger
}

// newApp loads configuration, authenticates, and opens the response
// cache. Cache failures are logged and the command runs uncached; a
// missing credential is fatal.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := rootLogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger := setupLogger(level)

	authenticator, err := auth.New(auth.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("spotify credentials not configured. Run 'spotifind auth' first")
	}

	client := spotify.New(spotify.Config{
		Logger: debugLogger{logger: logger},
	})

	if err := authenticator.Install(ctx, client); err != nil {
		return nil, err
	}

	var store *cache.Store
	if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0755); err != nil {
		logger.Warn().Err(err).Msg("Cannot create cache directory, running uncached")
	} else if store, err = cache.Open(cfg.CachePath); err != nil {
		logger.Warn().Err(err).Msg("Cannot open response cache, running uncached")
		store = nil
	}

	return &app{
		cfg:    cfg,
		client: client,
		cache:  store,
		auth:   authenticator,
		logger: logger,
	}, nil
}

// Close releases the response cache.
func (a *app) Close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
}

// debugLogger adapts zerolog to the client package's Logger interface.
type debugLogger struct {
	logger zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// fetch performs one cache-aware API call. A fresh cache entry answers
// without touching the network; a stale entry rides its ETag as a
// conditional request, and a 304 restarts the freshness window and
// reuses the stored body. New content replaces the entry.
func fetch[T any](ctx context.Context, a *app, req *spotify.Request[T]) (T, error) {
	var zero T
	key := req.Key()
	now := time.Now()

	var cached *cache.Entry
	if a.cache != nil {
		entry, found, err := a.cache.Get(ctx, key)
		switch {
		case err != nil:
			a.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		case found && entry.Fresh(now):
			a.logger.Debug().Str("key", key).Msg("Cache hit")
			return decode[T](entry.Body)
		case found:
			a.logger.Debug().Str("key", key).Msg("Cache stale, revalidating")
			cached = entry
			req.Etag(entry.ETag)
		}
	}

	resp, err := req.Send(ctx)
	if err != nil {
		return zero, err
	}

	if resp.NotModified() {
		if cached == nil {
			return zero, fmt.Errorf("server answered 304 without a conditional request")
		}
		if err := a.cache.Touch(ctx, key, resp.MaxAge, now); err != nil {
			a.logger.Warn().Err(err).Str("key", key).Msg("Cache touch failed")
		}
		return decode[T](cached.Body)
	}

	if a.cache != nil {
		entry := cache.Entry{
			ETag:      resp.ETag,
			Body:      resp.Body(),
			MaxAge:    resp.MaxAge,
			FetchedAt: now,
		}
		if err := a.cache.Put(ctx, key, entry); err != nil {
			a.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
		}
	}

	value, ok := resp.Deserialize()
	if !ok {
		return zero, fmt.Errorf("unexpected response shape for %s", key)
	}
	return value, nil
}

func decode[T any](body string) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return value, fmt.Errorf("cached response no longer parses: %w", err)
	}
	return value, nil
}
