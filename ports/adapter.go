// Package ports defines the contracts the Asaas resources depend on.
// Resources talk to ports, never to a concrete transport, so tests and callers
// can plug in their own adapter.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Raw JSON in, raw JSON out; decoding belongs to the resources
//   - A non-2xx answer is reported as *StatusError so the dispatcher can classify it
package ports

import (
	"context"
	"fmt"
	"net/http"
)

// Adapter performs authenticated HTTP calls against absolute URLs.
// Implementations own connection concerns (keep-alive, timeouts, auth headers).
//
// Example implementation in tests:
//
//	type fakeAdapter struct{ body []byte }
//
//	func (f *fakeAdapter) Get(ctx context.Context, url string) ([]byte, error) {
//	    return f.body, nil
//	}
type Adapter interface {
	// Get issues a GET and returns the raw response body.
	Get(ctx context.Context, url string) ([]byte, error)

	// Post issues a POST with body encoded as JSON and returns the raw response body.
	Post(ctx context.Context, url string, body any) ([]byte, error)

	// Delete issues a DELETE and returns the raw response body.
	Delete(ctx context.Context, url string) ([]byte, error)
}

// StatusError is returned by an Adapter when the upstream answered with a
// non-success status. Any other error means no response was obtained.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// NewStatusError creates a status error.
func NewStatusError(method, url string, status int, body []byte) *StatusError {
	return &StatusError{Method: method, URL: url, StatusCode: status, Body: body}
}
