package driven

import (
	"context"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

// DocumentParser converts raw file bytes into per-page text.
// Unreadable or corrupt input returns an error; the ingest pipeline maps it
// to domain.ErrUnparsableDocument.
type DocumentParser interface {
	// Parse returns one Page per document page, in document order.
	// A page's text may be empty (scanned/image-only pages).
	Parse(ctx context.Context, data []byte) ([]domain.Page, error)
}
