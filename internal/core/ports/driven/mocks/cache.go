package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// MockCache is an in-memory mock implementation of Cache (TTLs are ignored)
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	err     error
}

// NewMockCache creates a new MockCache
func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
	}
}

// SetError makes every operation fail with err
func (m *MockCache) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return m.err
	}
	data, ok := m.entries[key]
	if !ok {
		return domain.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (m *MockCache) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *MockCache) Close() error { return nil }

// Has reports whether a key is present
func (m *MockCache) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok
}
