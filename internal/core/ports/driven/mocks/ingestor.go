package mocks

import (
	"context"
	"sync"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// IngestorCall records the arguments of one UpsertChunks invocation
type IngestorCall struct {
	Chunks    []domain.Chunk
	Namespace string
	DocID     string
	Filename  string
}

// MockIngestor is a mock implementation of Ingestor for testing
type MockIngestor struct {
	mu      sync.Mutex
	written int
	err     error
	calls   []IngestorCall
}

// NewMockIngestor creates a new MockIngestor
func NewMockIngestor() *MockIngestor {
	return &MockIngestor{}
}

// SetWritten sets the count returned by UpsertChunks.
// A negative value means "echo the number of chunks submitted".
func (m *MockIngestor) SetWritten(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.written = n
}

// SetError makes UpsertChunks fail with err
func (m *MockIngestor) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockIngestor) UpsertChunks(ctx context.Context, chunks []domain.Chunk, namespace, docID, filename string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, IngestorCall{
		Chunks:    chunks,
		Namespace: namespace,
		DocID:     docID,
		Filename:  filename,
	})
	if m.err != nil {
		return 0, m.err
	}
	if m.written < 0 {
		return len(chunks), nil
	}
	return m.written, nil
}

// Calls returns all recorded invocations
func (m *MockIngestor) Calls() []IngestorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]IngestorCall(nil), m.calls...)
}
