package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnsupportedFormat indicates the uploaded file is not a supported
	// document type (checked by extension, before the file is ever parsed)
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyInput indicates the uploaded file contained no bytes
	ErrEmptyInput = errors.New("empty file")

	// ErrUnparsableDocument indicates the parser could not read the document
	ErrUnparsableDocument = errors.New("unparsable document")

	// ErrNoExtractableContent indicates parsing succeeded but no usable text
	// was found (e.g. a fully scanned/image-only PDF)
	ErrNoExtractableContent = errors.New("no extractable content")

	// ErrIngestionWriteFailed indicates the embed/upsert step failed.
	// The namespace may be left in a partial state; callers needing strict
	// atomicity must delete the namespace and retry the whole ingest.
	ErrIngestionWriteFailed = errors.New("ingestion write failed")

	// ErrConfigurationMissing indicates a required client configuration value
	// is absent. Fatal at construction time - the service must not serve.
	ErrConfigurationMissing = errors.New("configuration missing")
)
