package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apierrors "github.com/orderful/orderful-go/internal/errors"
)

// ConvertData asks Orderful to convert between document formats. Unlike
// every other endpoint, the formats travel in the Content-Type and Accept
// headers of this single call, so the request is built by hand here instead
// of relying on the transport defaults.
func ConvertData(ctx context.Context, httpClient *http.Client, baseURL, originFormat, destinationFormat string) (json.RawMessage, error) {
	const op = "convert data"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/convert", baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", originFormat)
	req.Header.Set("Accept", destinationFormat)

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
	return json.RawMessage(payload), nil
}
