package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driving"
)

// Ensure ingestService implements IngestService
var _ driving.IngestService = (*ingestService)(nil)

const (
	defaultNamespacePrefix = "doc_"
	ingestCacheTTL         = 24 * time.Hour
)

// recognized upload extensions, lowercase
var supportedExtensions = map[string]bool{
	".pdf": true,
}

// ingestService coordinates the document-to-vector pipeline:
//  1. Validate filename extension and non-empty input
//  2. Parse bytes into pages
//  3. Chunk pages into bounded spans
//  4. Derive a fresh document ID and namespace
//  5. Embed and upsert chunks under the namespace
//  6. Record the outcome (document record, cache summary)
//
// Failures short-circuit and propagate typed errors; nothing here retries.
// A failed upsert can leave the namespace partially written - callers needing
// strict atomicity delete the namespace and re-ingest.
type ingestService struct {
	parser        driven.DocumentParser
	chunker       driven.Chunker
	ingestor      driven.Ingestor
	documentStore driven.DocumentStore
	cache         driven.Cache
	logger        *slog.Logger
}

// IngestServiceConfig holds dependencies for the ingest service.
// DocumentStore and Cache are optional; the core pipeline runs without them.
type IngestServiceConfig struct {
	Parser        driven.DocumentParser
	Chunker       driven.Chunker
	Ingestor      driven.Ingestor
	DocumentStore driven.DocumentStore
	Cache         driven.Cache
	Logger        *slog.Logger
}

// NewIngestService creates a new ingest service.
func NewIngestService(cfg IngestServiceConfig) driving.IngestService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ingestService{
		parser:        cfg.Parser,
		chunker:       cfg.Chunker,
		ingestor:      cfg.Ingestor,
		documentStore: cfg.DocumentStore,
		cache:         cfg.Cache,
		logger:        logger,
	}
}

// Ingest runs the full pipeline for one uploaded file.
func (s *ingestService) Ingest(ctx context.Context, req driving.IngestRequest) (*domain.IngestResult, error) {
	// Step 1: validate before touching the parser
	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	if len(req.Data) == 0 {
		return nil, domain.ErrEmptyInput
	}

	// Step 2: parse
	pages, err := s.parser.Parse(ctx, req.Data)
	if err != nil {
		s.logger.Warn("document parse failed", "filename", req.Filename, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparsableDocument, err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: document has no pages", domain.ErrUnparsableDocument)
	}

	// Step 3: chunk
	chunks := s.chunker.Chunk(pages)
	if len(chunks) == 0 {
		return nil, domain.ErrNoExtractableContent
	}

	// Step 4: fresh identity per ingestion run - re-ingesting the same bytes
	// always lands in a new namespace
	docID := uuid.NewString()
	prefix := req.NamespacePrefix
	if prefix == "" {
		prefix = defaultNamespacePrefix
	}
	namespace := prefix + docID

	// Step 5: embed and upsert, exactly one batch call, no retries here -
	// retry policy belongs to the caller/operator
	written, err := s.ingestor.UpsertChunks(ctx, chunks, namespace, docID, req.Filename)
	if err != nil {
		s.logger.Error("embed/upsert failed",
			"filename", req.Filename,
			"namespace", namespace,
			"chunks", len(chunks),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrIngestionWriteFailed, err)
	}

	result := &domain.IngestResult{
		DocID:          docID,
		Filename:       req.Filename,
		Pages:          len(pages),
		ChunksEmbedded: written,
		Namespace:      namespace,
	}

	// Step 6: record the outcome
	if req.OwnerID != "" && s.documentStore != nil {
		doc := &domain.Document{
			ID:        docID,
			OwnerID:   req.OwnerID,
			Filename:  req.Filename,
			Pages:     result.Pages,
			Chunks:    result.ChunksEmbedded,
			Namespace: namespace,
			CreatedAt: time.Now(),
		}
		if err := s.documentStore.Save(ctx, doc); err != nil {
			// The vectors are written; losing the record is recoverable
			s.logger.Warn("failed to save document record", "doc_id", docID, "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, "ingest:"+namespace, result, ingestCacheTTL); err != nil {
			s.logger.Warn("failed to cache ingest summary", "namespace", namespace, "error", err)
		}
	}

	s.logger.Info("ingest completed",
		"filename", req.Filename,
		"doc_id", docID,
		"pages", result.Pages,
		"chunks_embedded", written,
		"namespace", namespace,
	)

	return result, nil
}
