package driving

import (
	"context"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// IngestRequest carries one uploaded file through the ingestion pipeline.
type IngestRequest struct {
	// Filename is the original upload name; its extension gates the pipeline
	Filename string

	// Data is the raw file bytes
	Data []byte

	// OwnerID, when set, persists a durable document record for this user
	OwnerID string

	// NamespacePrefix overrides the default "doc_" namespace prefix
	// (the test path uses "test_" so its namespaces are easy to clean up)
	NamespacePrefix string
}

// IngestService drives the document-to-vector pipeline:
// validate -> parse -> chunk -> embed & upsert.
type IngestService interface {
	// Ingest runs the full pipeline for one uploaded file. Each call derives
	// a fresh document ID and namespace; re-running the same file never
	// collides with a previous run. Nothing in the pipeline retries.
	Ingest(ctx context.Context, req IngestRequest) (*domain.IngestResult, error)
}
