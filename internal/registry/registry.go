package registry

import (
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pratham7711/docmind-ai/internal/adapters/driven/ai"
	"github.com/pratham7711/docmind-ai/internal/adapters/driven/pinecone"
	"github.com/pratham7711/docmind-ai/internal/adapters/driven/redis"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

// Config holds the credentials for every external client the registry
// can construct.
type Config struct {
	PineconeAPIKey string
	PineconeHost   string

	OpenAIAPIKey   string
	OpenAIBaseURL  string
	EmbeddingModel string

	RedisURL string
}

// Registry lazily constructs shared external clients. Each client is built
// at most once per process; a construction failure is latched and returned
// to every subsequent caller rather than retried.
type Registry struct {
	cfg Config

	indexOnce sync.Once
	index     driven.VectorIndex
	indexErr  error

	embedOnce sync.Once
	embed     driven.EmbeddingService
	embedErr  error

	cacheOnce sync.Once
	cache     driven.Cache
	cacheErr  error
}

// New creates a registry. Nothing is dialed until a handle is first asked for.
func New(cfg Config) *Registry {
	return &Registry{cfg: cfg}
}

// VectorIndex returns the shared vector index client
func (r *Registry) VectorIndex() (driven.VectorIndex, error) {
	r.indexOnce.Do(func() {
		r.index, r.indexErr = pinecone.New(pinecone.DefaultConfig(r.cfg.PineconeAPIKey, r.cfg.PineconeHost))
	})
	return r.index, r.indexErr
}

// Embedding returns the shared embedding service
func (r *Registry) Embedding() (driven.EmbeddingService, error) {
	r.embedOnce.Do(func() {
		r.embed, r.embedErr = ai.NewOpenAIEmbedding(r.cfg.OpenAIAPIKey, r.cfg.EmbeddingModel, r.cfg.OpenAIBaseURL)
	})
	return r.embed, r.embedErr
}

// Cache returns the shared cache client. An empty RedisURL disables caching;
// callers get a nil Cache and no error.
func (r *Registry) Cache() (driven.Cache, error) {
	r.cacheOnce.Do(func() {
		if r.cfg.RedisURL == "" {
			return
		}
		opts, err := goredis.ParseURL(r.cfg.RedisURL)
		if err != nil {
			r.cacheErr = fmt.Errorf("invalid redis url: %w", err)
			return
		}
		r.cache = redis.NewCache(goredis.NewClient(opts))
	})
	return r.cache, r.cacheErr
}

// Close shuts down every client the registry constructed
func (r *Registry) Close() error {
	if r.embed != nil {
		_ = r.embed.Close()
	}
	if r.cache != nil {
		_ = r.cache.Close()
	}
	return nil
}
