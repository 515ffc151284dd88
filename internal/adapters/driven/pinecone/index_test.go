package pinecone

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

func TestNew_MissingConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing api key", Config{Host: "https://idx.example"}},
		{"missing host", Config{APIKey: "key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if !errors.Is(err, domain.ErrConfigurationMissing) {
				t.Errorf("expected ErrConfigurationMissing, got %v", err)
			}
		})
	}
}

func TestIndex_Upsert(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotReq upsertRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(upsertResponse{UpsertedCount: 2})
	}))
	defer server.Close()

	idx, err := New(DefaultConfig("test-key", server.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vectors := []driven.Vector{
		{ID: "d-chunk-0", Values: []float32{0.1, 0.2}, Metadata: map[string]any{"page": 0}},
		{ID: "d-chunk-1", Values: []float32{0.3, 0.4}},
	}

	count, err := idx.Upsert(context.Background(), vectors, "doc_d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 upserted, got %d", count)
	}
	if gotPath != "/vectors/upsert" {
		t.Errorf("expected /vectors/upsert, got %s", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("expected Api-Key header, got %q", gotAPIKey)
	}
	if gotReq.Namespace != "doc_d" {
		t.Errorf("expected namespace doc_d, got %s", gotReq.Namespace)
	}
	if len(gotReq.Vectors) != 2 || gotReq.Vectors[0].ID != "d-chunk-0" {
		t.Errorf("unexpected request vectors: %+v", gotReq.Vectors)
	}
}

func TestIndex_UpsertEmpty(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	idx, _ := New(DefaultConfig("key", server.URL))

	count, err := idx.Upsert(context.Background(), nil, "doc_d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0, got %d", count)
	}
	if called {
		t.Error("no request should be sent for an empty batch")
	}
}

func TestIndex_UpsertServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	idx, _ := New(DefaultConfig("key", server.URL))

	_, err := idx.Upsert(context.Background(), []driven.Vector{{ID: "v"}}, "doc_d")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestIndex_DeleteNamespace(t *testing.T) {
	var gotReq deleteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vectors/delete" {
			t.Errorf("expected /vectors/delete, got %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	idx, _ := New(DefaultConfig("key", server.URL))

	if err := idx.DeleteNamespace(context.Background(), "doc_gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotReq.DeleteAll {
		t.Error("expected deleteAll=true")
	}
	if gotReq.Namespace != "doc_gone" {
		t.Errorf("expected namespace doc_gone, got %s", gotReq.Namespace)
	}
}

func TestIndex_DeleteMissingNamespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	idx, _ := New(DefaultConfig("key", server.URL))

	// Deleting a namespace that never existed is not an error
	if err := idx.DeleteNamespace(context.Background(), "doc_never"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIndex_HealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/describe_index_stats" {
			t.Errorf("expected /describe_index_stats, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	idx, _ := New(DefaultConfig("key", server.URL))

	if err := idx.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
