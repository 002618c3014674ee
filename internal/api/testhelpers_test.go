package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// capture records the last request a test server observed.
type capture struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

// newCaptureServer starts a server that records each request into the
// returned capture and answers with the given status and body.
func newCaptureServer(status int, respBody []byte) (*httptest.Server, *capture) {
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.Path
		c.query = r.URL.Query()
		c.header = r.Header.Clone()
		c.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write(respBody)
	}))
	return srv, c
}
