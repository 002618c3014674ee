package types

import (
	"net/url"
	"strconv"
)

// ListRelationshipsParams holds the optional filters for listing
// relationships. Zero-valued fields are omitted from the request entirely;
// the server applies its own defaults for anything absent.
type ListRelationshipsParams struct {
	AutoSend   bool
	Limit      int
	PrevCursor string
	NextCursor string
}

// Values encodes the set fields as query parameters.
func (p ListRelationshipsParams) Values() url.Values {
	v := url.Values{}
	if p.AutoSend {
		v.Set("auto_send", "true")
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.PrevCursor != "" {
		v.Set("prev_cursor", p.PrevCursor)
	}
	if p.NextCursor != "" {
		v.Set("next_cursor", p.NextCursor)
	}
	return v
}

// ListTransactionsParams holds the optional filters for listing
// transactions. The wire protocol uses camelCase query keys; slice-valued
// filters encode as repeated keys. As with all list filters, zero-valued
// fields are omitted rather than sent empty, so a caller cannot distinguish
// "explicitly empty" from "not provided".
type ListTransactionsParams struct {
	PrevCursor             string
	NextCursor             string
	CreatedAt              string // ISO-8601; transactions created on or before
	BusinessNumbers        []string
	TransactionTypes       []string
	ValidationStatuses     []string
	DeliveryStatuses       []string
	AcknowledgmentStatuses []string
	SenderIsaIDs           []string
	ReceiverIsaIDs         []string

	ReferenceIdentifier                    string
	SenderInterchangeReferenceIdentifier   string
	SenderGroupReferenceIdentifier         string
	SenderTransactionReferenceIdentifier   string
	ReceiverInterchangeReferenceIdentifier string
	ReceiverGroupReferenceIdentifier       string
	ReceiverTransactionReferenceIdentifier string
}

// Values encodes the set fields under their camelCase wire keys.
func (p ListTransactionsParams) Values() url.Values {
	v := url.Values{}
	if p.PrevCursor != "" {
		v.Set("prevCursor", p.PrevCursor)
	}
	if p.NextCursor != "" {
		v.Set("nextCursor", p.NextCursor)
	}
	if p.CreatedAt != "" {
		v.Set("createdAt", p.CreatedAt)
	}
	for _, n := range p.BusinessNumbers {
		v.Add("businessNumbers", n)
	}
	for _, t := range p.TransactionTypes {
		v.Add("transactionType", t)
	}
	for _, s := range p.ValidationStatuses {
		v.Add("validationStatus", s)
	}
	for _, s := range p.DeliveryStatuses {
		v.Add("deliveryStatus", s)
	}
	for _, s := range p.AcknowledgmentStatuses {
		v.Add("acknowledgmentStatus", s)
	}
	for _, id := range p.SenderIsaIDs {
		v.Add("senderIsaId", id)
	}
	for _, id := range p.ReceiverIsaIDs {
		v.Add("receiverIsaId", id)
	}
	if p.ReferenceIdentifier != "" {
		v.Set("referenceIdentifier", p.ReferenceIdentifier)
	}
	if p.SenderInterchangeReferenceIdentifier != "" {
		v.Set("senderInterchangeReferenceIdentifier", p.SenderInterchangeReferenceIdentifier)
	}
	if p.SenderGroupReferenceIdentifier != "" {
		v.Set("senderGroupReferenceIdentifier", p.SenderGroupReferenceIdentifier)
	}
	if p.SenderTransactionReferenceIdentifier != "" {
		v.Set("senderTransactionReferenceIdentifier", p.SenderTransactionReferenceIdentifier)
	}
	if p.ReceiverInterchangeReferenceIdentifier != "" {
		v.Set("receiverInterchangeReferenceIdentifier", p.ReceiverInterchangeReferenceIdentifier)
	}
	if p.ReceiverGroupReferenceIdentifier != "" {
		v.Set("receiverGroupReferenceIdentifier", p.ReceiverGroupReferenceIdentifier)
	}
	if p.ReceiverTransactionReferenceIdentifier != "" {
		v.Set("receiverTransactionReferenceIdentifier", p.ReceiverTransactionReferenceIdentifier)
	}
	return v
}
