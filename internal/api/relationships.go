package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orderful/orderful-go/internal/types"
)

// ListRelationships lists trading-partner relationships for the given
// polling bucket, filtered and paged by params.
func ListRelationships(ctx context.Context, httpClient *http.Client, baseURL, bucketID string, params types.ListRelationshipsParams) (json.RawMessage, error) {
	u := withQuery(fmt.Sprintf("%s/relationships/%s", baseURL, bucketID), params.Values())
	return doJSON(ctx, httpClient, "list relationships", http.MethodGet, u, nil)
}
