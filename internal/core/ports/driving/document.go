package driving

import (
	"context"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// DocumentService manages persisted document records.
type DocumentService interface {
	// List retrieves all documents owned by a user, newest first
	List(ctx context.Context, ownerID string) ([]*domain.Document, error)

	// Get retrieves a single document owned by a user
	Get(ctx context.Context, ownerID, id string) (*domain.Document, error)

	// Delete removes a document record and its vector namespace
	Delete(ctx context.Context, ownerID, id string) error
}
