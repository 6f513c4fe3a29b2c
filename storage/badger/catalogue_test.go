package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kazipot/core"
	"github.com/poiesic/kazipot/storage"
)

func newTestRepository(t *testing.T) storage.CatalogueRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testEntry(name string, kind core.KindTag) *core.CatalogueEntry {
	return &core.CatalogueEntry{
		Name:        name,
		Type:        "grad",
		Description: "opis",
		Kind:        kind,
	}
}

func TestAddEntriesAssignsIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries, err := repo.AddEntries(ctx,
		testEntry("Blejski grad", core.KindAttraction),
		testEntry("Predjamski grad", core.KindAttraction),
	)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.NotZero(t, entries[0].Id)
	assert.NotZero(t, entries[1].Id)
	assert.NotEqual(t, entries[0].Id, entries[1].Id)
}

func TestAddEntriesKeepsExplicitID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entry := testEntry("Ljubljanski grad", core.KindAttraction)
	entry.Id = core.IDFromContent("Ljubljanski grad")

	entries, err := repo.AddEntries(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent("Ljubljanski grad"), entries[0].Id)
}

func TestAddEntriesRejectsInvalid(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx, &core.CatalogueEntry{Kind: core.KindTown})
	assert.ErrorIs(t, err, core.ErrEmptyName)
}

func TestGetEntry(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	stored, err := repo.AddEntries(ctx, testEntry("Bled", core.KindTown))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetEntry(ctx, core.KindTown, stored[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "Bled", got.Name)
		assert.Equal(t, core.KindTown, got.Kind)
	})

	t.Run("wrong kind", func(t *testing.T) {
		_, err := repo.GetEntry(ctx, core.KindRegion, stored[0].Id)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.GetEntry(ctx, core.KindTown, 99999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestEntriesByKindOrderedByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a := testEntry("Postojnska jama", core.KindAttraction)
	a.Id = 30
	b := testEntry("Blejski grad", core.KindAttraction)
	b.Id = 10
	c := testEntry("Skocjanske jame", core.KindAttraction)
	c.Id = 20

	_, err := repo.AddEntries(ctx, a, b, c)
	require.NoError(t, err)

	entries, err := repo.EntriesByKind(ctx, core.KindAttraction)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, core.ID(10), entries[0].Id)
	assert.Equal(t, core.ID(20), entries[1].Id)
	assert.Equal(t, core.ID(30), entries[2].Id)
}

func TestAllEntriesGroupedByKind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		testEntry("Dolenjska", core.KindRegion),
		testEntry("Novo mesto", core.KindTown),
		testEntry("Otocec", core.KindAttraction),
	)
	require.NoError(t, err)

	var kinds []core.KindTag
	for entry, err := range repo.AllEntries(ctx) {
		require.NoError(t, err)
		kinds = append(kinds, entry.Kind)
	}

	assert.Equal(t, []core.KindTag{core.KindAttraction, core.KindTown, core.KindRegion}, kinds)
}

func TestAllEntriesEarlyBreak(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		testEntry("Otocec", core.KindAttraction),
		testEntry("Novo mesto", core.KindTown),
	)
	require.NoError(t, err)

	seen := 0
	for _, err := range repo.AllEntries(ctx) {
		require.NoError(t, err)
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestCountEntries(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.AddEntries(ctx,
		testEntry("Dolenjska", core.KindRegion),
		testEntry("Novo mesto", core.KindTown),
		testEntry("Otocec", core.KindAttraction),
	)
	require.NoError(t, err)

	count, err = repo.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClosedBackend(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, backend.Close())

	_, err = repo.AddEntries(context.Background(), testEntry("Bled", core.KindTown))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = repo.CountEntries(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
