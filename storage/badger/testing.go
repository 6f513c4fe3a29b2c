package badger

import (
	"github.com/poiesic/kazipot/storage"
)

// NewMemoryRepository creates an in-memory catalogue repository for testing.
// Returns the repository and its backend; the caller owns closing the backend.
func NewMemoryRepository() (storage.CatalogueRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewCatalogueRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}
