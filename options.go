package orderful

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// orderful.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the header transport wrapper is installed, so
// transport-related options (like debug logging) end up underneath the
// header wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL points the client at a different API endpoint, most commonly
// an httptest server in tests. A trailing slash is trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = strings.TrimRight(u, "/")
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The header transport
// is still installed on top of whatever transport the given client carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the header wrapper; logs are
// emitted before the request is forwarded to the next transport. Do not
// enable this option in production environments: dumps include headers,
// including the API key.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if c.http.Transport == nil {
				c.http.Transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
