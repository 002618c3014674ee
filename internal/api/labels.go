package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GenerateLabel generates a shipping label of the given type. The fields map
// is posted as the JSON body verbatim; its keys are defined by the label
// type's schema on the Orderful side.
func GenerateLabel(ctx context.Context, httpClient *http.Client, baseURL, labelType string, fields map[string]any) (json.RawMessage, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	u := fmt.Sprintf("%s/labels/%s", baseURL, labelType)
	return doJSON(ctx, httpClient, "generate label", http.MethodPost, u, fields)
}
