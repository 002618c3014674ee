package errors

import (
	"net/http"
	"testing"
)

func TestNewHTTPError(t *testing.T) {
	t.Parallel()
	err := NewHTTPError("list transactions", http.StatusBadGateway, []byte("  upstream down \n"))
	if err.Op != "list transactions" || err.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected fields: %+v", err)
	}
	if err.Body != "upstream down" {
		t.Fatalf("body = %q", err.Body)
	}
	if got := err.Error(); got != "list transactions: status 502: upstream down" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestErrorWithoutBody(t *testing.T) {
	t.Parallel()
	err := NewHTTPError("get delivery", http.StatusNotFound, nil)
	if got := err.Error(); got != "get delivery: status 404" {
		t.Fatalf("Error() = %q", got)
	}
}
