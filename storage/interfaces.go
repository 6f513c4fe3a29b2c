package storage

import (
	"context"
	"iter"

	"github.com/poiesic/kazipot/core"
)

// Repository provides common storage operations shared across repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CatalogueRepository provides operations for the tourism catalogue.
// The query pipeline only reads from it in bulk during index builds;
// writes happen offline through the seeder or scraper.
type CatalogueRepository interface {
	Repository

	// AddEntries adds one or more catalogue entries to storage.
	// For entries with Id=0, generates new IDs from sequence.
	// Returns the entries with generated IDs populated.
	AddEntries(ctx context.Context, entries ...*core.CatalogueEntry) ([]*core.CatalogueEntry, error)

	// GetEntry retrieves a single entry by kind and ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, kind core.KindTag, id core.ID) (*core.CatalogueEntry, error)

	// EntriesByKind retrieves all entries of one kind, ordered by ID.
	EntriesByKind(ctx context.Context, kind core.KindTag) ([]*core.CatalogueEntry, error)

	// AllEntries iterates over every catalogue entry, attraction entries
	// first, then towns, then regions. The iteration yields a nil entry
	// together with a non-nil error when reading fails.
	AllEntries(ctx context.Context) iter.Seq2[*core.CatalogueEntry, error]

	// CountEntries returns the total number of stored entries.
	CountEntries(ctx context.Context) (int, error)
}
