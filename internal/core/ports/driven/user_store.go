package driven

import (
	"context"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// UserStore persists identity records keyed by email.
// The store guarantees at most one record per email: concurrent inserts for
// the same email must merge, not duplicate.
type UserStore interface {
	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email (exact, case-sensitive match)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Save creates or updates a user. Inserts conflicting on email merge
	// into the existing record.
	Save(ctx context.Context, user *domain.User) error
}
