package driven

import (
	"context"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// Ingestor is the embed-and-upsert boundary: it turns chunks into vectors and
// writes them into the vector index under the given namespace.
//
// On success the namespace holds exactly the submitted chunks. On failure the
// namespace is left in an indeterminate partial state; callers needing strict
// atomicity must delete the namespace and retry the whole batch.
type Ingestor interface {
	// UpsertChunks embeds and writes chunks, returning the number of vectors
	// actually written as reported by the index.
	UpsertChunks(ctx context.Context, chunks []domain.Chunk, namespace, docID, filename string) (int, error)
}
