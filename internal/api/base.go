// Package api implements one function per Orderful endpoint. Functions take
// the HTTP client and base URL explicitly so they stay trivially testable
// against httptest servers; auth and content-type headers are injected by the
// transport configured on the client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	apierrors "github.com/orderful/orderful-go/internal/errors"
)

// withQuery appends v to rawURL when any parameter is set.
func withQuery(rawURL string, v url.Values) string {
	if len(v) == 0 {
		return rawURL
	}
	return rawURL + "?" + v.Encode()
}

// doRaw issues a single request and returns the response body verbatim.
// A non-2xx status produces an *errors.Error carrying the status code and
// body; nothing is parsed on the failure path.
func doRaw(ctx context.Context, httpClient *http.Client, op, method, rawURL string, body any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierrors.NewHTTPError(op, resp.StatusCode, payload)
	}
	return payload, nil
}

// doJSON is doRaw for endpoints whose success payload is JSON.
func doJSON(ctx context.Context, httpClient *http.Client, op, method, rawURL string, body any) (json.RawMessage, error) {
	payload, err := doRaw(ctx, httpClient, op, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(payload), nil
}
