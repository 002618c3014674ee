package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orderful/orderful-go/internal/types"
)

// ApproveDelivery marks a delivery as approved, with an optional note.
// The endpoint expects a JSON body even when there is nothing to say.
func ApproveDelivery(ctx context.Context, httpClient *http.Client, baseURL, deliveryID, note string) error {
	u := fmt.Sprintf("%s/deliveries/%s/approve", baseURL, deliveryID)
	_, err := doRaw(ctx, httpClient, "approve delivery", http.MethodPost, u, types.DeliveryNote{Note: note})
	return err
}

// FailDelivery marks a delivery as failed, with an optional note.
func FailDelivery(ctx context.Context, httpClient *http.Client, baseURL, deliveryID, note string) error {
	u := fmt.Sprintf("%s/deliveries/%s/fail", baseURL, deliveryID)
	_, err := doRaw(ctx, httpClient, "fail delivery", http.MethodPost, u, types.DeliveryNote{Note: note})
	return err
}

// GetDelivery fetches a delivery.
func GetDelivery(ctx context.Context, httpClient *http.Client, baseURL, deliveryID string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/deliveries/%s", baseURL, deliveryID)
	return doJSON(ctx, httpClient, "get delivery", http.MethodGet, u, nil)
}
