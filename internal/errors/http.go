package errors

import "strings"

// NewHTTPError creates an *Error for a failed HTTP exchange.
// The body is kept verbatim apart from surrounding whitespace.
func NewHTTPError(op string, statusCode int, body []byte) *Error {
	return &Error{
		Op:         op,
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
