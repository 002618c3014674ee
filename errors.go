package orderful

import (
	"errors"

	apierrors "github.com/orderful/orderful-go/internal/errors"
)

// APIError is returned whenever the server answers with a non-2xx status.
// It carries the status code and raw response body; the SDK defines no finer
// error taxonomy.
type APIError = apierrors.Error

// AsAPIError extracts the *APIError from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
