package spotify

import (
	"encoding/json"
	"time"
)

// DefaultMaxAge is the freshness window applied when the response has
// no Cache-Control max-age directive or it fails to parse.
const DefaultMaxAge = 10 * time.Second

type responseKind int

const (
	kindOk responseKind = iota
	kindNotModified
)

// Response is the typed envelope produced by one API call. It is
// tagged either Ok, carrying the raw body text, or NotModified,
// carrying none; cache metadata is present regardless of the tag.
//
// Parsing is deferred: the envelope holds only text, and Deserialize
// produces the typed value on demand. This keeps HTTP-level concerns
// (status, headers) separate from payload-shape concerns, so a parse
// failure never masks a transport failure or vice versa.
type Response[T any] struct {
	kind responseKind
	body string

	// MaxAge is how long the content may be treated as fresh before
	// re-validation, from Cache-Control; DefaultMaxAge if absent.
	MaxAge time.Duration

	// ETag is the server's content-version identifier, copied verbatim
	// from the response header; empty if the server sent none.
	ETag string
}

// NotModified reports whether the server answered 304; the caller must
// then reuse its previously cached content.
func (r *Response[T]) NotModified() bool {
	return r.kind == kindNotModified
}

// Body returns the raw response text. It is empty for NotModified
// envelopes and possibly empty, but always present, for Ok ones.
func (r *Response[T]) Body() string {
	return r.body
}

// Deserialize parses the envelope's raw text into the typed value. The
// second return value is false, not an error, when the envelope is
// NotModified or the text is not valid JSON for T; callers frequently
// probe optional or partially-shaped responses and tolerate absence.
func (r *Response[T]) Deserialize() (T, bool) {
	var value T
	if r.kind != kindOk {
		return value, false
	}
	if err := json.Unmarshal([]byte(r.body), &value); err != nil {
		return value, false
	}
	return value, true
}
