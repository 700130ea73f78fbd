package ports

import (
	"context"

	"github.com/ersonp/scamguard/internal/domain/entities"
)

// ScanIndex stores scan embeddings for similarity lookup.
type ScanIndex interface {
	// Save stores a scan with its embedding.
	Save(ctx context.Context, scan entities.ScanRecord, embedding []float32) error

	// Search returns the scans closest to embedding.
	Search(ctx context.Context, embedding []float32, limit int) ([]entities.SimilarScan, error)

	// Delete removes the scans with the given IDs. Unknown IDs are ignored.
	Delete(ctx context.Context, ids []string) error

	// DeleteAll removes every indexed scan.
	DeleteAll(ctx context.Context) error
}

// CollectionManager prepares the index backing store.
type CollectionManager interface {
	// EnsureCollection creates the collection if it doesn't exist.
	EnsureCollection(ctx context.Context, vectorSize uint64) error
}
