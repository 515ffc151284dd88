package mocks

import (
	"sync"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// MockChunker is a mock implementation of Chunker for testing
type MockChunker struct {
	mu     sync.Mutex
	chunks []domain.Chunk
	calls  int
}

// NewMockChunker creates a new MockChunker
func NewMockChunker() *MockChunker {
	return &MockChunker{}
}

// SetChunks sets the chunks returned by Chunk
func (m *MockChunker) SetChunks(chunks []domain.Chunk) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks = chunks
}

func (m *MockChunker) Chunk(pages []domain.Page) []domain.Chunk {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.chunks
}

// Calls returns how many times Chunk was invoked
func (m *MockChunker) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
