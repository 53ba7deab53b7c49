// Package auth obtains Spotify access tokens and installs them into the
// API client's token store. It is the external auth flow the client
// package expects; the client itself never fetches credentials.
package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/seralba/spotifind/pkg/spotify"
)

// DefaultTokenURL is the Spotify accounts service token endpoint.
const DefaultTokenURL = "https://accounts.spotify.com/api/token"

// Config holds the application credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string // Optional: override for testing
}

// Authenticator mints access tokens through the OAuth2 client
// credentials grant.
type Authenticator struct {
	cc     clientcredentials.Config
	logger zerolog.Logger
}

// New creates an Authenticator from application credentials.
func New(cfg Config, logger zerolog.Logger) (*Authenticator, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("auth: client id and secret are required")
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	return &Authenticator{
		cc: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		},
		logger: logger.With().Str("component", "auth").Logger(),
	}, nil
}

// Token mints a fresh access token.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	token, err := a.cc.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("auth: failed to obtain token: %w", err)
	}
	a.logger.Debug().Time("expiry", token.Expiry).Msg("Obtained access token")
	return token.AccessToken, nil
}

// Install mints a token and places it in the client's token store. Call
// it again after the client reports spotify.ErrInvalidToken; the client
// has cleared its store by then and a retry needs a new credential.
func (a *Authenticator) Install(ctx context.Context, client *spotify.Client) error {
	token, err := a.Token(ctx)
	if err != nil {
		return err
	}
	client.UpdateToken(token)
	return nil
}
