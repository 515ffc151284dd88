package mocks

import (
	"sync"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// MockTokenVerifier is a mock implementation of TokenVerifier for testing
type MockTokenVerifier struct {
	mu         sync.RWMutex
	principals map[string]*domain.Principal
}

// NewMockTokenVerifier creates a new MockTokenVerifier
func NewMockTokenVerifier() *MockTokenVerifier {
	return &MockTokenVerifier{
		principals: make(map[string]*domain.Principal),
	}
}

// Accept registers a token as valid for the given principal
func (m *MockTokenVerifier) Accept(token string, principal domain.Principal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.principals[token] = &principal
}

func (m *MockTokenVerifier) Verify(token string) (*domain.Principal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.principals[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	cp := *p
	return &cp, nil
}
