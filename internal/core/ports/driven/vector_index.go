package driven

import "context"

// Vector is a single embedded chunk ready for an index write.
type Vector struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// VectorIndex writes and deletes vectors in a remote, namespaced index.
// The underlying client is safe for concurrent use and shared process-wide.
type VectorIndex interface {
	// Upsert writes vectors under the given namespace and returns the count
	// the index reports as written.
	Upsert(ctx context.Context, vectors []Vector, namespace string) (int, error)

	// DeleteNamespace removes every vector in the namespace. Deleting a
	// namespace that does not exist is not an error.
	DeleteNamespace(ctx context.Context, namespace string) error

	// HealthCheck verifies the index is reachable
	HealthCheck(ctx context.Context) error
}
