package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/orderful/orderful-go/internal/types"
)

// CreateTransaction posts a new transaction for the given stream and returns
// the ID assigned by Orderful. The message payload is passed through
// untouched.
func CreateTransaction(ctx context.Context, httpClient *http.Client, baseURL, stream, transactionType string, message any, senderIsaID, receiverIsaID string) (string, error) {
	const op = "create transaction"
	body := types.CreateTransactionRequest{
		Type:     types.TypeRef{Name: transactionType},
		Stream:   stream,
		Message:  message,
		Sender:   types.Party{IsaID: senderIsaID},
		Receiver: types.Party{IsaID: receiverIsaID},
	}
	u := fmt.Sprintf("%s/transactions", baseURL)
	payload, err := doRaw(ctx, httpClient, op, http.MethodPost, u, body)
	if err != nil {
		return "", err
	}
	var created types.CreateTransactionResponse
	if err := json.Unmarshal(payload, &created); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	return created.ID, nil
}

// ListTransactions lists transactions matching params and returns the paging
// metadata alongside the transaction payloads.
func ListTransactions(ctx context.Context, httpClient *http.Client, baseURL string, params types.ListTransactionsParams) (json.RawMessage, []json.RawMessage, error) {
	const op = "list transactions"
	u := withQuery(fmt.Sprintf("%s/transactions", baseURL), params.Values())
	payload, err := doRaw(ctx, httpClient, op, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}
	var list types.TransactionList
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return list.Metadata, list.Data, nil
}

// GetTransaction fetches a single transaction. When includeMessage is true
// the message content is expanded into the response.
func GetTransaction(ctx context.Context, httpClient *http.Client, baseURL, transactionID string, includeMessage bool) (json.RawMessage, error) {
	v := url.Values{}
	if includeMessage {
		v.Set("expand", "message")
	}
	u := withQuery(fmt.Sprintf("%s/transactions/%s", baseURL, transactionID), v)
	return doJSON(ctx, httpClient, "get transaction", http.MethodGet, u, nil)
}

// GetTransactionMessage fetches only the message content of a transaction.
func GetTransactionMessage(ctx context.Context, httpClient *http.Client, baseURL, transactionID string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/transactions/%s/message", baseURL, transactionID)
	return doJSON(ctx, httpClient, "get transaction message", http.MethodGet, u, nil)
}
