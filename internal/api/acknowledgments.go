package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orderful/orderful-go/internal/types"
)

// CreateAcknowledgment posts a functional acknowledgment for a transaction.
// ackErrors, when supplied, describe why the transaction was rejected; an
// empty list is not sent.
func CreateAcknowledgment(ctx context.Context, httpClient *http.Client, baseURL, transactionID, status string, ackErrors []any) error {
	body := types.CreateAcknowledgmentRequest{Status: status, Errors: ackErrors}
	u := fmt.Sprintf("%s/transactions/%s/acknowledgments", baseURL, transactionID)
	_, err := doRaw(ctx, httpClient, "create acknowledgment", http.MethodPost, u, body)
	return err
}

// GetAcknowledgment fetches the acknowledgment recorded for a transaction.
func GetAcknowledgment(ctx context.Context, httpClient *http.Client, baseURL, transactionID string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/transactions/%s/acknowledgment", baseURL, transactionID)
	return doJSON(ctx, httpClient, "get acknowledgment", http.MethodGet, u, nil)
}
