package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zomio-storefront/internal/domain"
)

func TestAppendOrder_PostsRow(t *testing.T) {
	var got appendRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Order saved"})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, time.Second)
	err := client.AppendOrder(context.Background(), "Rajesh", "9876543210", "123 Main Road", []string{"Rose Milk x2"})
	if err != nil {
		t.Fatalf("AppendOrder: %v", err)
	}
	if got.Name != "Rajesh" || got.Phone != "9876543210" || len(got.Items) != 1 {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestAppendOrder_UpstreamStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, time.Second)
	err := client.AppendOrder(context.Background(), "a", "b", "c", nil)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestAppendOrder_ConnectionError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)
	err := client.AppendOrder(context.Background(), "a", "b", "c", nil)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
