package driven

import "github.com/pratham7711/docmind-ai/internal/core/domain"

// Chunker splits parsed pages into bounded-size text chunks in document
// order, suitable for embedding. An all-blank document yields zero chunks.
type Chunker interface {
	Chunk(pages []domain.Page) []domain.Chunk
}
