package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestListRelationshipsParams_ZeroValueEncodesNothing(t *testing.T) {
	t.Parallel()
	if v := (ListRelationshipsParams{}).Values(); len(v) != 0 {
		t.Fatalf("expected empty values, got %v", v)
	}
}

func TestListRelationshipsParams_SnakeCaseKeys(t *testing.T) {
	t.Parallel()
	v := ListRelationshipsParams{AutoSend: true, Limit: 5, PrevCursor: "p", NextCursor: "n"}.Values()
	want := map[string]string{
		"auto_send":   "true",
		"limit":       "5",
		"prev_cursor": "p",
		"next_cursor": "n",
	}
	if len(v) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(v), len(want), v)
	}
	for k, s := range want {
		if got := v.Get(k); got != s {
			t.Fatalf("values[%s] = %q, want %q", k, got, s)
		}
	}
}

func TestListTransactionsParams_ZeroValueEncodesNothing(t *testing.T) {
	t.Parallel()
	if v := (ListTransactionsParams{}).Values(); len(v) != 0 {
		t.Fatalf("expected empty values, got %v", v)
	}
}

func TestListTransactionsParams_CamelCaseKeys(t *testing.T) {
	t.Parallel()
	p := ListTransactionsParams{
		PrevCursor:             "p",
		NextCursor:             "n",
		CreatedAt:              "2024-01-02T00:00:00Z",
		BusinessNumbers:        []string{"b1", "b2"},
		TransactionTypes:       []string{"850", "810"},
		ValidationStatuses:     []string{"VALID"},
		DeliveryStatuses:       []string{"FAILED"},
		AcknowledgmentStatuses: []string{"PENDING"},
		SenderIsaIDs:           []string{"S1", "S2"},
		ReceiverIsaIDs:         []string{"R1"},

		ReferenceIdentifier:                    "ref",
		SenderInterchangeReferenceIdentifier:   "sir",
		SenderGroupReferenceIdentifier:         "sgr",
		SenderTransactionReferenceIdentifier:   "str",
		ReceiverInterchangeReferenceIdentifier: "rir",
		ReceiverGroupReferenceIdentifier:       "rgr",
		ReceiverTransactionReferenceIdentifier: "rtr",
	}
	v := p.Values()

	wantLists := map[string][]string{
		"businessNumbers":      {"b1", "b2"},
		"transactionType":      {"850", "810"},
		"validationStatus":     {"VALID"},
		"deliveryStatus":       {"FAILED"},
		"acknowledgmentStatus": {"PENDING"},
		"senderIsaId":          {"S1", "S2"},
		"receiverIsaId":        {"R1"},
	}
	for k, s := range wantLists {
		if got := v[k]; !reflect.DeepEqual(got, s) {
			t.Fatalf("values[%s] = %v, want %v", k, got, s)
		}
	}

	wantScalars := map[string]string{
		"prevCursor":                             "p",
		"nextCursor":                             "n",
		"createdAt":                              "2024-01-02T00:00:00Z",
		"referenceIdentifier":                    "ref",
		"senderInterchangeReferenceIdentifier":   "sir",
		"senderGroupReferenceIdentifier":         "sgr",
		"senderTransactionReferenceIdentifier":   "str",
		"receiverInterchangeReferenceIdentifier": "rir",
		"receiverGroupReferenceIdentifier":       "rgr",
		"receiverTransactionReferenceIdentifier": "rtr",
	}
	for k, s := range wantScalars {
		if got := v.Get(k); got != s {
			t.Fatalf("values[%s] = %q, want %q", k, got, s)
		}
	}

	if len(v) != len(wantLists)+len(wantScalars) {
		t.Fatalf("unexpected extra keys: %v", v)
	}
}

func TestDeliveryNote_EmptyMarshalsToEmptyObject(t *testing.T) {
	t.Parallel()
	// The delivery endpoints expect a JSON body even without a note.
	b, err := json.Marshal(DeliveryNote{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("marshal = %s, want {}", b)
	}
}
