package pdfparse

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tmc/langchaingo/documentloaders"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentParser = (*Parser)(nil)

// Parser extracts per-page text from PDF bytes.
type Parser struct{}

// New creates a new PDF parser.
func New() *Parser {
	return &Parser{}
}

// Parse returns one Page per PDF page, in document order. Pages without
// extractable text (scanned/image-only) come back with empty text; corrupt
// input returns an error for the caller to map to ErrUnparsableDocument.
func (p *Parser) Parse(ctx context.Context, data []byte) (pages []domain.Page, err error) {
	// The underlying PDF reader panics on some malformed xref tables;
	// a corrupt upload must become an error, not a crash.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	loader := documentloaders.NewPDF(bytes.NewReader(data), int64(len(data)))
	docs, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	pages = make([]domain.Page, len(docs))
	for i, doc := range docs {
		pages[i] = domain.Page{Text: doc.PageContent}
	}
	return pages, nil
}
