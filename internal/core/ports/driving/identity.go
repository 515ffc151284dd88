package driving

import (
	"context"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// IdentityService resolves an authenticated principal to a durable user
// record, creating or refreshing it idempotently.
type IdentityService interface {
	// Resolve returns the user record for the principal's email, creating it
	// on first sight and writing back only when name or avatar changed.
	Resolve(ctx context.Context, principal domain.Principal) (*domain.User, error)
}
