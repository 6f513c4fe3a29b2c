package index

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/blevesearch/bleve/v2"
	bleveindex "github.com/blevesearch/bleve_index_api"
)

// Index is a full-text index over the tourism catalogue.
type Index struct {
	idx    bleve.Index
	logger *slog.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets the logger for the index.
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) {
		ix.logger = logger
	}
}

// Open opens an existing index at the given path.
// Returns ErrIndexNotFound when no index exists there; the index must be
// built first with the indexing command.
func Open(path string, opts ...Option) (*Index, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
	}

	idx, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index at %s: %w", path, err)
	}
	return newIndex(idx, opts...), nil
}

// Create creates a new index at the given path.
// Returns ErrIndexExists when the path is already occupied.
func Create(path string, opts ...Option) (*Index, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrIndexExists, path)
	}

	idx, err := bleve.New(path, buildMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index at %s: %w", path, err)
	}
	return newIndex(idx, opts...), nil
}

// NewMemory creates an in-memory index, mainly for testing.
func NewMemory(opts ...Option) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, err
	}
	return newIndex(idx, opts...), nil
}

func newIndex(idx bleve.Index, opts ...Option) *Index {
	ix := &Index{
		idx:    idx,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Close closes the index.
func (ix *Index) Close() error {
	return ix.idx.Close()
}

// IndexBatch indexes a batch of documents in a single commit.
func (ix *Index) IndexBatch(docs []Document) error {
	batch := ix.idx.NewBatch()
	for _, doc := range docs {
		if err := batch.Index(doc.ID, doc.Fields); err != nil {
			return fmt.Errorf("failed to batch document %s: %w", doc.ID, err)
		}
	}
	if err := ix.idx.Batch(batch); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	ix.logger.Debug("indexed document batch", "count", len(docs))
	return nil
}

// DocCount returns the number of indexed documents.
func (ix *Index) DocCount() (uint64, error) {
	return ix.idx.DocCount()
}

// TermEntry is one term of a field dictionary with its document frequency.
type TermEntry struct {
	Term  string
	Count uint64
}

// FieldTerms returns the full term dictionary of a field, sorted by term.
// The dictionaries of the location fields serve as correction vocabularies.
func (ix *Index) FieldTerms(field string) ([]TermEntry, error) {
	internal, err := ix.idx.Advanced()
	if err != nil {
		return nil, err
	}
	var reader bleveindex.IndexReader
	reader, err = internal.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	dict, err := reader.FieldDict(field)
	if err != nil {
		return nil, err
	}
	defer dict.Close()

	var terms []TermEntry
	for {
		entry, err := dict.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			break
		}
		terms = append(terms, TermEntry{Term: entry.Term, Count: entry.Count})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Term < terms[j].Term })
	return terms, nil
}
