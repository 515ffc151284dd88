package domain

import "time"

// Document is an uploaded file that has been ingested into the vector index.
// The record is durable for authenticated uploads; the parsed pages and raw
// bytes are transient and discarded once the index write completes.
type Document struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Filename  string    `json:"filename"`
	Pages     int       `json:"pages"`
	Chunks    int       `json:"chunks"`
	Namespace string    `json:"namespace"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is one unit of parsed text. Its position is implicit in the parsed
// sequence; the text may be empty for scanned/image-only pages.
type Page struct {
	Text string
}

// Chunk is a bounded-size span of document text in document order - the
// atomic unit embedded and indexed.
type Chunk struct {
	Text     string
	Position int
	Page     int // first page this chunk draws from, 0-based
}

// IngestResult summarizes a completed ingestion run.
type IngestResult struct {
	DocID          string `json:"document_id"`
	Filename       string `json:"filename"`
	Pages          int    `json:"pages"`
	ChunksEmbedded int    `json:"chunks_embedded"`
	Namespace      string `json:"namespace"`
}
