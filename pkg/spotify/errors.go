package spotify

import (
	"errors"
	"fmt"
)

// Predefined errors for the credential lifecycle.
var (
	// ErrNoToken is returned when a request is sent while no bearer
	// token is installed. No network call is made in this case; the
	// caller must authenticate first.
	ErrNoToken = errors.New("spotify: no token available")

	// ErrInvalidToken is returned when the server rejects the bearer
	// token with 401. The stored token has been cleared as a side
	// effect; re-authenticating and retrying once is likely to succeed.
	ErrInvalidToken = errors.New("spotify: invalid token")
)

// StatusError reports a non-success HTTP status that is neither 304 nor
// 401. It carries the exact numeric code; no retry is attempted.
type StatusError struct {
	Code int
}

// Error returns the error message.
func (e *StatusError) Error() string {
	return fmt.Sprintf("spotify: request failed with status %d", e.Code)
}

// Is allows errors.Is to match two StatusError values by code.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
