// Package types holds the request bodies and parameter structs shared by the
// API layer. Response schemas belong to Orderful; the SDK only defines the
// envelopes it has to build or the named fields it extracts.
package types

// TypeRef names a transaction type in a request body.
type TypeRef struct {
	Name string `json:"name"`
}

// Party identifies a trading partner by its EDI interchange (ISA) ID.
type Party struct {
	IsaID string `json:"isaId"`
}

// CreateTransactionRequest is the body posted to create a transaction.
// Message carries the document payload verbatim; its shape is between the
// caller and Orderful.
type CreateTransactionRequest struct {
	Type     TypeRef `json:"type"`
	Stream   string  `json:"stream"`
	Message  any     `json:"message"`
	Sender   Party   `json:"sender"`
	Receiver Party   `json:"receiver"`
}

// CreateAcknowledgmentRequest is the body posted to acknowledge a
// transaction. Errors is only serialized when non-empty.
type CreateAcknowledgmentRequest struct {
	Status string `json:"status"`
	Errors []any  `json:"errors,omitempty"`
}

// DeliveryNote is the body posted when approving or failing a delivery.
// With no note it marshals to an empty JSON object, which is what the
// endpoints expect.
type DeliveryNote struct {
	Note string `json:"note,omitempty"`
}
