package mocks

import (
	"context"
	"sync"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// MockDocumentParser is a mock implementation of DocumentParser for testing
type MockDocumentParser struct {
	mu    sync.Mutex
	pages []domain.Page
	err   error
	calls int
}

// NewMockDocumentParser creates a new MockDocumentParser
func NewMockDocumentParser() *MockDocumentParser {
	return &MockDocumentParser{}
}

// SetPages sets the pages returned by Parse
func (m *MockDocumentParser) SetPages(pages []domain.Page) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = pages
}

// SetError makes Parse fail with err
func (m *MockDocumentParser) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockDocumentParser) Parse(ctx context.Context, data []byte) ([]domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.pages, nil
}

// Calls returns how many times Parse was invoked
func (m *MockDocumentParser) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
