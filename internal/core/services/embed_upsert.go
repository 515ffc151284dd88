package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

// Ensure embedUpserter implements Ingestor
var _ driven.Ingestor = (*embedUpserter)(nil)

// upsertBatchSize caps how many chunks go into one embed + index call
const upsertBatchSize = 100

// embedUpserter implements the embed-and-upsert boundary on top of an
// embedding service and a vector index. Batches are written in document
// order; a mid-batch failure leaves earlier batches in place, which is the
// indeterminate-partial-state contract the orchestrator documents.
type embedUpserter struct {
	embedder driven.EmbeddingService
	index    driven.VectorIndex
	logger   *slog.Logger
}

// NewEmbedUpserter creates the embed-and-upsert service.
func NewEmbedUpserter(embedder driven.EmbeddingService, index driven.VectorIndex, logger *slog.Logger) driven.Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &embedUpserter{
		embedder: embedder,
		index:    index,
		logger:   logger,
	}
}

// UpsertChunks embeds chunks and writes them under the namespace.
func (u *embedUpserter) UpsertChunks(ctx context.Context, chunks []domain.Chunk, namespace, docID, filename string) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}

	written := 0
	for start := 0; start < len(chunks); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Text
		}

		embeddings, err := u.embedder.Embed(ctx, texts)
		if err != nil {
			return written, fmt.Errorf("embedding failed: %w", err)
		}
		if len(embeddings) != len(batch) {
			return written, fmt.Errorf("embedding count mismatch: got %d, want %d", len(embeddings), len(batch))
		}

		vectors := make([]driven.Vector, len(batch))
		for i, c := range batch {
			vectors[i] = driven.Vector{
				ID:     fmt.Sprintf("%s-chunk-%d", docID, c.Position),
				Values: embeddings[i],
				Metadata: map[string]any{
					"doc_id":      docID,
					"filename":    filename,
					"chunk_index": c.Position,
					"page":        c.Page,
					"text":        c.Text,
				},
			}
		}

		n, err := u.index.Upsert(ctx, vectors, namespace)
		if err != nil {
			return written, fmt.Errorf("index upsert failed: %w", err)
		}
		written += n

		u.logger.Debug("upserted batch",
			"namespace", namespace,
			"batch_start", start,
			"batch_size", len(batch),
			"written", n,
		)
	}

	return written, nil
}
