package driven

import (
	"context"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// DocumentStore persists metadata for ingested documents.
type DocumentStore interface {
	// Save creates or updates a document record
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID
	Get(ctx context.Context, id string) (*domain.Document, error)

	// ListByOwner retrieves all documents owned by a user, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error)

	// Delete deletes a document record
	Delete(ctx context.Context, id string) error
}
