package spotify

import (
	"context"
	"net/http"
)

// Request is a typed, chainable builder for one outbound API call. The
// type parameter names the expected response shape; the request itself
// never carries a body for the catalog endpoints.
//
// A Request is built incrementally and consumed exactly once by Send or
// SendNoBody. Each instance belongs to a single call, so no locking is
// needed here; the only shared state is the client's token store.
type Request[T any] struct {
	client *Client
	method string
	path   string
	query  string
	etag   string
}

func newRequest[T any](c *Client) *Request[T] {
	return &Request[T]{client: c}
}

// Method sets the HTTP verb.
func (r *Request[T]) Method(method string) *Request[T] {
	r.method = method
	return r
}

// URI sets the target path and optional query string. The query is
// appended verbatim; callers are expected to hand over an
// already-encoded string (see Params and SearchQuery).
func (r *Request[T]) URI(path, query string) *Request[T] {
	r.path = path
	r.query = query
	return r
}

// Etag attaches a previously seen ETag as an If-None-Match conditional
// header, allowing the server to answer 304 Not Modified. An empty
// string leaves the request unconditional.
func (r *Request[T]) Etag(etag string) *Request[T] {
	r.etag = etag
	return r
}

// Key identifies the request for external caches: verb, path and
// query.
func (r *Request[T]) Key() string {
	if r.query == "" {
		return r.method + " " + r.path
	}
	return r.method + " " + r.path + "?" + r.query
}

// authenticated builds the finalized *http.Request with the bearer
// token injected. This is the single point where a missing credential
// is detected: it fails with ErrNoToken before any network I/O.
func (r *Request[T]) authenticated(ctx context.Context) (*http.Request, error) {
	token, ok := r.client.snapshotToken()
	if !ok {
		return nil, ErrNoToken
	}

	url := r.client.baseURL + r.path
	if r.query != "" {
		url += "?" + r.query
	}

	req, err := http.NewRequestWithContext(ctx, r.method, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if r.etag != "" {
		req.Header.Set("If-None-Match", r.etag)
	}

	return req, nil
}

// Send finalizes the request, executes it and classifies the result
// into a typed envelope. The response body is read fully on success and
// never read on 304 or error statuses.
func (r *Request[T]) Send(ctx context.Context) (*Response[T], error) {
	req, err := r.authenticated(ctx)
	if err != nil {
		return nil, err
	}
	return send[T](r.client, req)
}

// SendNoBody finalizes the request and executes it, reducing the result
// to success or failure without reading the body. It serves mutating
// calls where only the status matters, such as saving or removing an
// album.
func (r *Request[T]) SendNoBody(ctx context.Context) error {
	req, err := r.authenticated(ctx)
	if err != nil {
		return err
	}
	return sendNoBody(r.client, req)
}
