package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.VectorIndex = (*Index)(nil)

// Index implements driven.VectorIndex against a Pinecone-compatible REST API.
// The client is safe for concurrent use and is shared process-wide via the
// client registry.
type Index struct {
	apiKey     string
	host       string
	httpClient *http.Client
}

// Config holds vector index connection configuration
type Config struct {
	// APIKey authenticates every request
	APIKey string

	// Host is the index data-plane endpoint (e.g. https://myindex-abc123.svc.pinecone.io)
	Host string

	// Timeout for HTTP requests
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig(apiKey, host string) Config {
	return Config{
		APIKey:  apiKey,
		Host:    host,
		Timeout: 60 * time.Second,
	}
}

// New creates a vector index client. Missing credentials are a fatal
// configuration error: the process must not serve traffic without them.
func New(cfg Config) (*Index, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: vector index api key", domain.ErrConfigurationMissing)
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: vector index host", domain.ErrConfigurationMissing)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Index{
		apiKey: cfg.APIKey,
		host:   strings.TrimSuffix(cfg.Host, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type upsertRequest struct {
	Vectors   []vector `json:"vectors"`
	Namespace string   `json:"namespace"`
}

type vector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type upsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}

// Upsert writes vectors under the namespace and returns the count the index
// reports as written.
func (x *Index) Upsert(ctx context.Context, vectors []driven.Vector, namespace string) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}

	req := upsertRequest{
		Vectors:   make([]vector, len(vectors)),
		Namespace: namespace,
	}
	for i, v := range vectors {
		req.Vectors[i] = vector{
			ID:       v.ID,
			Values:   v.Values,
			Metadata: v.Metadata,
		}
	}

	var resp upsertResponse
	if err := x.post(ctx, "/vectors/upsert", req, &resp); err != nil {
		return 0, err
	}
	return resp.UpsertedCount, nil
}

type deleteRequest struct {
	DeleteAll bool   `json:"deleteAll"`
	Namespace string `json:"namespace"`
}

// DeleteNamespace removes every vector in the namespace.
func (x *Index) DeleteNamespace(ctx context.Context, namespace string) error {
	req := deleteRequest{
		DeleteAll: true,
		Namespace: namespace,
	}
	err := x.post(ctx, "/vectors/delete", req, nil)
	// A namespace that never existed is already gone
	if err != nil && strings.Contains(err.Error(), "404") {
		return nil
	}
	return err
}

// HealthCheck verifies the index is reachable.
func (x *Index) HealthCheck(ctx context.Context) error {
	return x.post(ctx, "/describe_index_stats", struct{}{}, nil)
}

// post sends a JSON request to the index data plane.
func (x *Index) post(ctx context.Context, path string, reqBody any, respBody any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.host+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", x.apiKey)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vector index request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("vector index returned %d: %s", resp.StatusCode, string(data))
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("failed to parse index response: %w", err)
		}
	}
	return nil
}
