package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// setupTestCache creates a test Redis client and Cache
func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewCache(client)

	return cache, mr, func() {
		client.Close()
		mr.Close()
	}
}

type summary struct {
	DocID  string `json:"doc_id"`
	Chunks int    `json:"chunks"`
}

func TestCache_SetGet(t *testing.T) {
	cache, _, cleanup := setupTestCache(t)
	defer cleanup()

	ctx := context.Background()
	want := summary{DocID: "abc", Chunks: 7}

	if err := cache.Set(ctx, "ingest:doc_abc", want, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got summary
	if err := cache.Get(ctx, "ingest:doc_abc", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestCache_GetMissing(t *testing.T) {
	cache, _, cleanup := setupTestCache(t)
	defer cleanup()

	var got summary
	err := cache.Get(context.Background(), "ingest:nope", &got)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCache_Expiry(t *testing.T) {
	cache, mr, cleanup := setupTestCache(t)
	defer cleanup()

	ctx := context.Background()
	if err := cache.Set(ctx, "k", summary{DocID: "x"}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	var got summary
	if err := cache.Get(ctx, "k", &got); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestCache_Ping(t *testing.T) {
	cache, mr, cleanup := setupTestCache(t)
	defer cleanup()

	if err := cache.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.Close()
	if err := cache.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail after server shutdown")
	}
}
