package types

import "encoding/json"

// CreateTransactionResponse carries the only field the SDK extracts from a
// transaction creation response.
type CreateTransactionResponse struct {
	ID string `json:"id"`
}

// TransactionList is the paging envelope returned by the transaction list
// endpoint. Metadata (cursors, counts) and the individual transactions are
// passed through undecoded.
type TransactionList struct {
	Metadata json.RawMessage   `json:"metadata"`
	Data     []json.RawMessage `json:"data"`
}
