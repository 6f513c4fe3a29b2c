// Package ingestion builds the search index from the catalogue store in one
// offline bulk pass. The index must never be rebuilt while serving queries.
package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/kazipot/index"
	"github.com/poiesic/kazipot/storage"
)

const defaultBatchSize = 256

// Pipeline projects catalogue entries into index documents and commits them
// in batches. Document preparation runs on a worker pool; batch commits are
// sequential because the index writer is single-threaded.
type Pipeline struct {
	repository storage.CatalogueRepository
	index      *index.Index
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for document preparation.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are committed per index batch.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size > 0 {
			p.batchSize = size
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an index build pipeline.
func NewPipeline(repository storage.CatalogueRepository, ix *index.Index, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if ix == nil {
		return nil, ErrIndexRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		index:      ix,
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Build reads every catalogue entry, converts it to an index document and
// commits the documents in batches. Entries that cannot be converted are
// logged and skipped. Returns the number of documents indexed.
func (p *Pipeline) Build(ctx context.Context) (int, error) {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		docs []index.Document
	)

	for entry, err := range p.repository.AllEntries(ctx) {
		if err != nil {
			wg.Wait()
			return 0, err
		}

		wg.Add(1)
		if submitErr := p.pool.Submit(func() {
			defer wg.Done()
			doc, convErr := index.DocumentFromEntry(entry)
			if convErr != nil {
				p.logger.Warn("skipping entry", "name", entry.Name, "err", convErr)
				return
			}
			mu.Lock()
			docs = append(docs, doc)
			mu.Unlock()
		}); submitErr != nil {
			wg.Done()
			wg.Wait()
			return 0, submitErr
		}
	}
	wg.Wait()

	indexed := 0
	for start := 0; start < len(docs); start += p.batchSize {
		end := min(start+p.batchSize, len(docs))
		if err := p.index.IndexBatch(docs[start:end]); err != nil {
			return indexed, err
		}
		indexed += end - start
	}

	p.logger.Info("index build complete", "documents", indexed)
	return indexed, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
