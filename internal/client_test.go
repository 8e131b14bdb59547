package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"AAPL": {"symbol": "AAPL", "name": "Apple Inc.", "current_price": 150.25, "change": -1.5, "change_percent": -0.99, "volume": 5000000, "history": []}}`))
	}))
	defer srv.Close()

	snap, err := FetchSnapshot(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("snapshot length = %d, want 1", len(snap))
	}
	if q := snap["AAPL"]; q.CurrentPrice == nil || *q.CurrentPrice != 150.25 {
		t.Errorf("AAPL CurrentPrice = %v, want 150.25", q.CurrentPrice)
	}
}

func TestFetchSnapshotStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := FetchSnapshot(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 500 response, got nil")
	}
}

func TestFetchSnapshotMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := FetchSnapshot(context.Background(), srv.URL); err == nil {
		t.Error("expected error for malformed body, got nil")
	}
}

func TestFetchSnapshotCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := FetchSnapshot(ctx, srv.URL); err == nil {
		t.Error("expected error for cancelled context, got nil")
	}
}
