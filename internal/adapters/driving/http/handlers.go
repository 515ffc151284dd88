package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driving"
)

// maxUploadBytes caps a single document upload
const maxUploadBytes = 32 << 20

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"unsupported file format"`
}

// HealthResponse represents the health check response
// @Description Health check response
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Environment string `json:"environment" example:"development"`
}

// UploadResponse represents a successful ingestion
// @Description Document ingestion result
type UploadResponse struct {
	OK bool `json:"ok"`
	domain.IngestResult
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Environment: s.environment,
	})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Verifies the database (and cache, when configured) are reachable
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  ErrorResponse  "A dependency is unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	if s.cache != nil {
		if err := s.cache.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// User endpoints

// handleGetMe godoc
// @Summary      Get current user
// @Description  Get the currently authenticated user's profile
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /me [get]
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	if user == nil {
		writeUnauthorized(w, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Document endpoints

// handleUploadDocument godoc
// @Summary      Ingest a document
// @Description  Parse, chunk, embed, and index an uploaded PDF under a fresh namespace
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "PDF file"
// @Success      201  {object}  UploadResponse
// @Failure      400  {object}  ErrorResponse  "Unsupported format or empty file"
// @Failure      422  {object}  ErrorResponse  "Unparsable or no extractable content"
// @Failure      502  {object}  ErrorResponse  "Vector index write failed"
// @Router       /documents [post]
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	s.ingestUpload(w, r, "", true)
}

// handleTestEmbed godoc
// @Summary      Ingest a document into a test namespace
// @Description  Runs the full ingestion pipeline with a test_ namespace prefix. Only routed in local development.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file"
// @Success      201  {object}  UploadResponse
// @Router       /test-embed [post]
func (s *Server) handleTestEmbed(w http.ResponseWriter, r *http.Request) {
	// Test ingests leave no durable record; test_ namespaces are cleaned up
	// out of band
	s.ingestUpload(w, r, "test_", false)
}

// ingestUpload reads the multipart upload and runs it through the pipeline
func (s *Server) ingestUpload(w http.ResponseWriter, r *http.Request, namespacePrefix string, recordOwner bool) {
	user := GetUser(r.Context())
	if user == nil {
		writeUnauthorized(w, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	ownerID := ""
	if recordOwner {
		ownerID = user.ID
	}

	result, err := s.ingestService.Ingest(r.Context(), driving.IngestRequest{
		Filename:        header.Filename,
		Data:            data,
		OwnerID:         ownerID,
		NamespacePrefix: namespacePrefix,
	})
	if err != nil {
		writeIngestError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{OK: true, IngestResult: *result})
}

// handleListDocuments godoc
// @Summary      List documents
// @Description  List the authenticated user's ingested documents, newest first
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]domain.Document
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /documents [get]
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	if user == nil {
		writeUnauthorized(w, "unauthorized")
		return
	}

	docs, err := s.docService.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	if docs == nil {
		docs = []*domain.Document{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleGetDocument godoc
// @Summary      Get a document
// @Description  Get one of the authenticated user's documents by ID
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  domain.Document
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /documents/{id} [get]
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	if user == nil {
		writeUnauthorized(w, "unauthorized")
		return
	}

	doc, err := s.docService.Get(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleDeleteDocument godoc
// @Summary      Delete a document
// @Description  Remove a document's vectors and its record
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /documents/{id} [delete]
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	user := GetUser(r.Context())
	if user == nil {
		writeUnauthorized(w, "unauthorized")
		return
	}

	if err := s.docService.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete document")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// writeIngestError maps pipeline errors to HTTP statuses. Validation failures
// are 400, parse and extraction failures are 422, index write failures are
// 502 with the upstream message preserved.
func writeIngestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "unsupported file format, only PDF is accepted")
	case errors.Is(err, domain.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "uploaded file is empty")
	case errors.Is(err, domain.ErrUnparsableDocument):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNoExtractableContent):
		writeError(w, http.StatusUnprocessableEntity, "no extractable text content")
	case errors.Is(err, domain.ErrIngestionWriteFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "ingestion failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
