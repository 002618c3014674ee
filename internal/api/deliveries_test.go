package api

import (
	"context"
	"net/http"
	"testing"
)

func TestApproveDelivery_WithNote(t *testing.T) {
	t.Parallel()
	srv, rec := newCaptureServer(http.StatusOK, nil)
	defer srv.Close()

	if err := ApproveDelivery(context.Background(), srv.Client(), srv.URL, "del_1", "looks good"); err != nil {
		t.Fatalf("ApproveDelivery: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/deliveries/del_1/approve" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	if string(rec.body) != `{"note":"looks good"}` {
		t.Fatalf("request body = %s", rec.body)
	}
}

func TestApproveDelivery_EmptyNoteSendsEmptyObject(t *testing.T) {
	t.Parallel()
	srv, rec := newCaptureServer(http.StatusOK, nil)
	defer srv.Close()

	if err := ApproveDelivery(context.Background(), srv.Client(), srv.URL, "del_1", ""); err != nil {
		t.Fatalf("ApproveDelivery: %v", err)
	}
	if string(rec.body) != `{}` {
		t.Fatalf("request body = %s, want {}", rec.body)
	}
}

func TestFailDelivery_WithNote(t *testing.T) {
	t.Parallel()
	srv, rec := newCaptureServer(http.StatusOK, nil)
	defer srv.Close()

	if err := FailDelivery(context.Background(), srv.Client(), srv.URL, "del_1", "damaged"); err != nil {
		t.Fatalf("FailDelivery: %v", err)
	}
	if rec.path != "/deliveries/del_1/fail" {
		t.Fatalf("path = %s", rec.path)
	}
	if string(rec.body) != `{"note":"damaged"}` {
		t.Fatalf("request body = %s", rec.body)
	}
}

func TestGetDelivery_Success(t *testing.T) {
	t.Parallel()
	srv, rec := newCaptureServer(http.StatusOK, []byte(`{"id":"del_1","status":"PENDING"}`))
	defer srv.Close()

	out, err := GetDelivery(context.Background(), srv.Client(), srv.URL, "del_1")
	if err != nil {
		t.Fatalf("GetDelivery: %v", err)
	}
	if string(out) != `{"id":"del_1","status":"PENDING"}` {
		t.Fatalf("unexpected payload: %s", out)
	}
	if rec.method != http.MethodGet || rec.path != "/deliveries/del_1" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
}

func TestDeliveries_NonOK(t *testing.T) {
	t.Parallel()
	srv, _ := newCaptureServer(http.StatusForbidden, []byte(`{"error":"forbidden"}`))
	defer srv.Close()

	if err := ApproveDelivery(context.Background(), srv.Client(), srv.URL, "del_1", ""); err == nil {
		t.Fatal("expected error for ApproveDelivery 403")
	}
	if err := FailDelivery(context.Background(), srv.Client(), srv.URL, "del_1", ""); err == nil {
		t.Fatal("expected error for FailDelivery 403")
	}
	if _, err := GetDelivery(context.Background(), srv.Client(), srv.URL, "del_1"); err == nil {
		t.Fatal("expected error for GetDelivery 403")
	}
}
