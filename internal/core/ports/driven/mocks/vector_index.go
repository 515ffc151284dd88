package mocks

import (
	"context"
	"sync"

	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

// MockVectorIndex is an in-memory mock implementation of VectorIndex
type MockVectorIndex struct {
	mu         sync.Mutex
	namespaces map[string][]driven.Vector
	err        error
}

// NewMockVectorIndex creates a new MockVectorIndex
func NewMockVectorIndex() *MockVectorIndex {
	return &MockVectorIndex{
		namespaces: make(map[string][]driven.Vector),
	}
}

// SetError makes every operation fail with err
func (m *MockVectorIndex) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockVectorIndex) Upsert(ctx context.Context, vectors []driven.Vector, namespace string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.namespaces[namespace] = append(m.namespaces[namespace], vectors...)
	return len(vectors), nil
}

func (m *MockVectorIndex) DeleteNamespace(ctx context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.namespaces, namespace)
	return nil
}

func (m *MockVectorIndex) HealthCheck(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Namespace returns the vectors stored under a namespace
func (m *MockVectorIndex) Namespace(namespace string) []driven.Vector {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]driven.Vector(nil), m.namespaces[namespace]...)
}
