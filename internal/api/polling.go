package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetPollingBucketTransactions retrieves the pending transactions queued in
// a polling bucket. A limit of zero leaves the page size to the server.
func GetPollingBucketTransactions(ctx context.Context, httpClient *http.Client, baseURL, bucketID string, limit int) (json.RawMessage, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	u := withQuery(fmt.Sprintf("%s/polling-buckets/%s", baseURL, bucketID), v)
	return doJSON(ctx, httpClient, "get polling bucket transactions", http.MethodGet, u, nil)
}
