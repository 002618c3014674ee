// Package errors defines the error surface of the SDK. Every non-2xx
// response is reported as an *Error carrying the HTTP status code and the
// raw response body so callers can inspect what the server said.
package errors

import "fmt"

// Error is the single error kind produced by the API layer. There is no
// transient/permanent distinction: the server's status code and body are
// surfaced as-is and the caller decides what to do.
type Error struct {
	Op         string // operation that issued the request, e.g. "list transactions"
	StatusCode int
	Body       string // raw response body, unparsed
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}
