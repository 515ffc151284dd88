package services

import (
	"context"
	"log/slog"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService manages persisted document records and their namespaces.
type documentService struct {
	documentStore driven.DocumentStore
	index         driven.VectorIndex
	logger        *slog.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(documentStore driven.DocumentStore, index driven.VectorIndex, logger *slog.Logger) driving.DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentService{
		documentStore: documentStore,
		index:         index,
		logger:        logger,
	}
}

// List retrieves all documents owned by a user.
func (s *documentService) List(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	return s.documentStore.ListByOwner(ctx, ownerID)
}

// Get retrieves a single document, scoped to its owner.
func (s *documentService) Get(ctx context.Context, ownerID, id string) (*domain.Document, error) {
	doc, err := s.documentStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// Delete removes a document record and every vector in its namespace.
// The namespace is cleared first so a failed record delete never strands
// unreachable vectors behind a missing record.
func (s *documentService) Delete(ctx context.Context, ownerID, id string) error {
	doc, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.index.DeleteNamespace(ctx, doc.Namespace); err != nil {
		s.logger.Error("failed to delete namespace", "namespace", doc.Namespace, "error", err)
		return err
	}

	return s.documentStore.Delete(ctx, doc.ID)
}
