package driven

import "github.com/pratham7711/docmind-ai/internal/core/domain"

// TokenVerifier validates a signed bearer token and extracts the principal.
// A bad signature, wrong algorithm, or missing email claim all fail with
// domain.ErrUnauthorized.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}
