package badger

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/kazipot/core"
	"github.com/poiesic/kazipot/storage"
)

// CatalogueRepository implements storage.CatalogueRepository using BadgerDB.
type CatalogueRepository struct {
	backend *Backend
	seq     *badger.Sequence
	logger  *slog.Logger
}

var _ storage.CatalogueRepository = (*CatalogueRepository)(nil)

// CatalogueRepositoryOption configures a CatalogueRepository.
type CatalogueRepositoryOption func(*CatalogueRepository)

// WithLogger sets the logger for the repository.
func WithLogger(logger *slog.Logger) CatalogueRepositoryOption {
	return func(r *CatalogueRepository) {
		r.logger = logger
	}
}

// NewCatalogueRepository creates a catalogue repository backed by BadgerDB.
func NewCatalogueRepository(backend *Backend, opts ...CatalogueRepositoryOption) (storage.CatalogueRepository, error) {
	seq, err := backend.GetSequence(entryIDSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry ID sequence: %w", err)
	}

	repo := &CatalogueRepository{
		backend: backend,
		seq:     seq,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// nextID returns the next non-zero sequence value. Zero is reserved as the
// "assign me an ID" sentinel on incoming entries.
func (r *CatalogueRepository) nextID() (core.ID, error) {
	for {
		val, err := r.seq.Next()
		if err != nil {
			return 0, err
		}
		if val != 0 {
			return core.ID(val), nil
		}
	}
}

// AddEntries stores catalogue entries. Entries with a zero ID are assigned
// sequential IDs; the stored entries are returned with IDs populated.
func (r *CatalogueRepository) AddEntries(ctx context.Context, entries ...*core.CatalogueEntry) ([]*core.CatalogueEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	for _, entry := range entries {
		if err := core.ValidateEntry(entry); err != nil {
			return nil, err
		}
	}

	for _, entry := range entries {
		if entry.Id == 0 {
			id, err := r.nextID()
			if err != nil {
				return nil, fmt.Errorf("failed to generate entry ID: %w", err)
			}
			entry.Id = id
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			key := makeEntryKey(entry.Kind, entry.Id)
			if err := tx.Set(key, storage.MarshalEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}

	r.logger.Debug("stored catalogue entries", "count", len(entries))
	return entries, nil
}

// GetEntry retrieves a single entry by kind and ID.
func (r *CatalogueRepository) GetEntry(ctx context.Context, kind core.KindTag, id core.ID) (*core.CatalogueEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entry *core.CatalogueEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEntryKey(kind, id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalEntry(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// EntriesByKind retrieves all entries of one kind, ordered by ID.
func (r *CatalogueRepository) EntriesByKind(ctx context.Context, kind core.KindTag) ([]*core.CatalogueEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entries []*core.CatalogueEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeKindPrefix(kind)
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalEntry(val)
				if err != nil {
					return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AllEntries iterates over every entry in the catalogue, grouped by kind:
// attractions first, then towns, then regions. Iteration stops early if the
// context is cancelled or the consumer breaks out of the loop.
func (r *CatalogueRepository) AllEntries(ctx context.Context) iter.Seq2[*core.CatalogueEntry, error] {
	kinds := []core.KindTag{core.KindAttraction, core.KindTown, core.KindRegion}

	return func(yield func(*core.CatalogueEntry, error) bool) {
		if r.backend.IsClosed() {
			yield(nil, storage.ErrStorageClosed)
			return
		}

		for _, kind := range kinds {
			stopped := false
			err := r.backend.WithTx(func(tx *badger.Txn) error {
				opts := badger.DefaultIteratorOptions
				opts.Prefix = makeKindPrefix(kind)
				it := tx.NewIterator(opts)
				defer it.Close()

				for it.Rewind(); it.Valid(); it.Next() {
					if err := ctx.Err(); err != nil {
						stopped = true
						yield(nil, err)
						return nil
					}
					var entry *core.CatalogueEntry
					err := it.Item().Value(func(val []byte) error {
						var uerr error
						entry, uerr = storage.UnmarshalEntry(val)
						return uerr
					})
					if err != nil {
						stopped = true
						yield(nil, fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err))
						return nil
					}
					if !yield(entry, nil) {
						stopped = true
						return nil
					}
				}
				return nil
			}, false)
			if err != nil {
				yield(nil, err)
				return
			}
			if stopped {
				return
			}
		}
	}
}

// CountEntries returns the total number of stored entries.
func (r *CatalogueRepository) CountEntries(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix + ":")
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// WithTransaction executes a function within a storage transaction.
func (r *CatalogueRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// Close releases the ID sequence. The underlying backend stays open; it is
// owned by whoever created it and may back other repositories.
func (r *CatalogueRepository) Close() error {
	return r.seq.Release()
}
