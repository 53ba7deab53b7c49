// Package spotify provides a typed client for the Spotify Web API.
//
// # Overview
//
// This package implements a cache-aware client for the catalog endpoints
// of the Spotify Web API: artists, albums, playlists, search and users.
// Requests are built fluently and return a typed envelope carrying the
// raw response body together with its HTTP cache metadata (ETag and
// max-age), so callers can drive an external cache without this package
// owning any storage.
//
// # Quick Start
//
//	client := spotify.New(spotify.Config{})
//	client.UpdateToken(accessToken)
//
//	resp, err := client.GetArtist("0OdUWJ0sBjDrqHygGUXeCF").Send(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	artist, ok := resp.Deserialize()
//
// # Authentication
//
// The client holds at most one bearer token, installed by an external
// auth flow through UpdateToken. Every request injects the token at send
// time; if none is present the request fails with ErrNoToken before any
// network traffic. A 401 from the server clears the stored token and
// surfaces as ErrInvalidToken, signalling the caller to re-authenticate
// and retry.
//
// # Conditional requests
//
// A previously seen ETag can be attached with Etag; the server may then
// answer 304 Not Modified, which arrives as an envelope with no body.
// The caller is expected to reuse its cached content and refresh its
// freshness window from the envelope's MaxAge.
//
// # Error Handling
//
// Network failures are wrapped and returned as-is. Non-success statuses
// other than 304 and 401 become a *StatusError carrying the exact code:
//
//	var statusErr *spotify.StatusError
//	if errors.As(err, &statusErr) {
//	    log.Printf("upstream returned %d", statusErr.Code)
//	}
//
// Malformed JSON in an otherwise successful response is not an error:
// Deserialize reports absence through its second return value.
//
// # Context Support
//
// Send and SendNoBody accept a context.Context; timeout and cancellation
// policy belong to the caller and the configured http.Client, not to
// this package. No retries happen here.
package spotify
