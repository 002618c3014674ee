package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetOrganization returns the details of the organization that owns the
// configured API key.
func GetOrganization(ctx context.Context, httpClient *http.Client, baseURL string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/organizations/me", baseURL)
	return doJSON(ctx, httpClient, "get organization", http.MethodGet, u, nil)
}
