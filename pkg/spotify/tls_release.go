//go:build !insecureskipverify

package spotify

import "net/http"

// defaultHTTPClient returns the HTTP client used when no override is
// configured. Certificate validation is always on in this build.
func defaultHTTPClient() *http.Client {
	return &http.Client{}
}
