// Package orderful is a client SDK for the Orderful v3 REST API, the
// transaction and document exchange used for EDI business messaging.
//
// Every operation issues exactly one HTTP request: the client builds the
// resource URL, flattens optional arguments into query or body parameters,
// and returns the server's payload. Optional arguments left at their zero
// value are omitted from the request entirely rather than sent empty.
// Non-2xx responses surface as an *APIError carrying the status code and
// response body; there are no retries and no local validation.
package orderful

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/orderful/orderful-go/internal/api"
)

const (
	// DefaultBaseURL is the production endpoint of the Orderful v3 API.
	DefaultBaseURL = "https://api.orderful.com/v3"

	// LiveStream is the stream name Orderful uses for production traffic;
	// anything else is a test stream.
	LiveStream = "LIVE"
)

// Client is an Orderful API client. The stream selector and API key are
// fixed at construction; beyond those and the HTTP client there is no state,
// so a Client is safe for concurrent use.
type Client struct {
	baseURL string
	stream  string
	apiKey  string
	http    *http.Client
}

// New constructs a Client for the given stream and API key.
// Additional options can be provided via functional arguments.
func New(stream, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		stream:  stream,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap HTTP transport to attach auth and content headers to all requests.
	c.wrapTransportWithHeaders()

	return c
}

// wrapTransportWithHeaders wraps the HTTP client's transport so every request
// carries the fixed header set without each call site repeating it.
func (c *Client) wrapTransportWithHeaders() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// headerTransport wraps an http.RoundTripper to attach the API key and the
// default accept/content-type headers. Per-request headers already set (the
// convert endpoint swaps Content-Type and Accept) take precedence.
type headerTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	if cloned.Header.Get("Accept") == "" {
		cloned.Header.Set("Accept", "application/json")
	}
	if cloned.Header.Get("Content-Type") == "" {
		cloned.Header.Set("Content-Type", "application/json")
	}
	cloned.Header.Set("Orderful-Api-Key", t.apiKey)
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// Stream returns the stream selector the client was built with.
func (c *Client) Stream() string { return c.stream }

// BaseURL returns the API endpoint the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// IsEnabled reports whether both a stream and an API key are configured.
// It is informational only; calls are not blocked when it is false.
func (c *Client) IsEnabled() bool { return c.stream != "" && c.apiKey != "" }

// IsLiveStream reports whether the client targets the live stream.
func (c *Client) IsLiveStream() bool { return c.stream == LiveStream }

// --------------------------------------------------------------------
// Polling bucket operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPollingBucketTransactions retrieves the pending transactions queued in
// a polling bucket. A limit of zero leaves the page size to the server.
func (c *Client) GetPollingBucketTransactions(ctx context.Context, bucketID string, limit int) (json.RawMessage, error) {
	out, err := api.GetPollingBucketTransactions(ctx, c.http, c.baseURL, bucketID, limit)
	observeRequest("get_polling_bucket_transactions", err)
	return out, err
}

// --------------------------------------------------------------------
// Relationship and organization operations
// --------------------------------------------------------------------

// ListRelationships lists trading-partner relationships for a polling
// bucket, filtered and paged by params.
func (c *Client) ListRelationships(ctx context.Context, bucketID string, params ListRelationshipsParams) (json.RawMessage, error) {
	out, err := api.ListRelationships(ctx, c.http, c.baseURL, bucketID, params)
	observeRequest("list_relationships", err)
	return out, err
}

// GetOrganization returns the details of the organization that owns the
// configured API key.
func (c *Client) GetOrganization(ctx context.Context) (json.RawMessage, error) {
	out, err := api.GetOrganization(ctx, c.http, c.baseURL)
	observeRequest("get_organization", err)
	return out, err
}

// ConvertData asks Orderful to convert between document formats, e.g. from
// X12 to JSON. The formats are MIME types carried in the Content-Type and
// Accept headers of this one call.
func (c *Client) ConvertData(ctx context.Context, originFormat, destinationFormat string) (json.RawMessage, error) {
	out, err := api.ConvertData(ctx, c.http, c.baseURL, originFormat, destinationFormat)
	observeRequest("convert_data", err)
	return out, err
}

// --------------------------------------------------------------------
// Transaction operations
// --------------------------------------------------------------------

// CreateTransaction posts a new transaction on the client's stream and
// returns the ID Orderful assigned to it. The message payload is passed
// through untouched.
func (c *Client) CreateTransaction(ctx context.Context, transactionType string, message any, senderIsaID, receiverIsaID string) (string, error) {
	id, err := api.CreateTransaction(ctx, c.http, c.baseURL, c.stream, transactionType, message, senderIsaID, receiverIsaID)
	observeRequest("create_transaction", err)
	return id, err
}

// ListTransactions lists transactions matching params. It returns the
// paging metadata (cursors) alongside the transaction payloads; the caller
// feeds cursors back through params to page.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) (json.RawMessage, []json.RawMessage, error) {
	metadata, data, err := api.ListTransactions(ctx, c.http, c.baseURL, params)
	observeRequest("list_transactions", err)
	return metadata, data, err
}

// GetTransaction fetches a single transaction. When includeMessage is true
// the message content is expanded into the response.
func (c *Client) GetTransaction(ctx context.Context, transactionID string, includeMessage bool) (json.RawMessage, error) {
	out, err := api.GetTransaction(ctx, c.http, c.baseURL, transactionID, includeMessage)
	observeRequest("get_transaction", err)
	return out, err
}

// GetTransactionMessage fetches only the message content of a transaction.
func (c *Client) GetTransactionMessage(ctx context.Context, transactionID string) (json.RawMessage, error) {
	out, err := api.GetTransactionMessage(ctx, c.http, c.baseURL, transactionID)
	observeRequest("get_transaction_message", err)
	return out, err
}

// --------------------------------------------------------------------
// Acknowledgment operations
// --------------------------------------------------------------------

// CreateAcknowledgment posts a functional acknowledgment for a transaction.
// ackErrors, when supplied, describe why the transaction was rejected.
func (c *Client) CreateAcknowledgment(ctx context.Context, transactionID, status string, ackErrors []any) error {
	err := api.CreateAcknowledgment(ctx, c.http, c.baseURL, transactionID, status, ackErrors)
	observeRequest("create_acknowledgment", err)
	return err
}

// GetAcknowledgment fetches the acknowledgment recorded for a transaction.
func (c *Client) GetAcknowledgment(ctx context.Context, transactionID string) (json.RawMessage, error) {
	out, err := api.GetAcknowledgment(ctx, c.http, c.baseURL, transactionID)
	observeRequest("get_acknowledgment", err)
	return out, err
}

// --------------------------------------------------------------------
// Attachment operations
// --------------------------------------------------------------------

// GetAttachment fetches an attachment's descriptor.
func (c *Client) GetAttachment(ctx context.Context, attachmentID string) (json.RawMessage, error) {
	out, err := api.GetAttachment(ctx, c.http, c.baseURL, attachmentID)
	observeRequest("get_attachment", err)
	return out, err
}

// GetAttachmentContent downloads an attachment's content as raw bytes.
func (c *Client) GetAttachmentContent(ctx context.Context, attachmentID string) ([]byte, error) {
	out, err := api.GetAttachmentContent(ctx, c.http, c.baseURL, attachmentID)
	observeRequest("get_attachment_content", err)
	return out, err
}

// --------------------------------------------------------------------
// Delivery operations
// --------------------------------------------------------------------

// ApproveDelivery marks a delivery as approved, with an optional note.
func (c *Client) ApproveDelivery(ctx context.Context, deliveryID, note string) error {
	err := api.ApproveDelivery(ctx, c.http, c.baseURL, deliveryID, note)
	observeRequest("approve_delivery", err)
	return err
}

// FailDelivery marks a delivery as failed, with an optional note.
func (c *Client) FailDelivery(ctx context.Context, deliveryID, note string) error {
	err := api.FailDelivery(ctx, c.http, c.baseURL, deliveryID, note)
	observeRequest("fail_delivery", err)
	return err
}

// GetDelivery fetches a delivery.
func (c *Client) GetDelivery(ctx context.Context, deliveryID string) (json.RawMessage, error) {
	out, err := api.GetDelivery(ctx, c.http, c.baseURL, deliveryID)
	observeRequest("get_delivery", err)
	return out, err
}

// --------------------------------------------------------------------
// Label operations
// --------------------------------------------------------------------

// GenerateLabel generates a shipping label of the given type. The fields
// map is posted as the JSON body verbatim.
func (c *Client) GenerateLabel(ctx context.Context, labelType string, fields map[string]any) (json.RawMessage, error) {
	out, err := api.GenerateLabel(ctx, c.http, c.baseURL, labelType, fields)
	observeRequest("generate_label", err)
	return out, err
}
