package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kazipot/core"
)

func testEntries() []*core.CatalogueEntry {
	return []*core.CatalogueEntry{
		{
			Id:          1,
			Name:        "Blejski grad",
			Type:        "grad",
			Description: "Srednjeveski grad na skali nad Blejskim jezerom",
			RegionName:  "gorenjska",
			Destination: "bled",
			Place:       "bled",
			Kind:        core.KindAttraction,
		},
		{
			Id:          2,
			Name:        "Ljubljanski grad",
			Type:        "grad",
			Description: "Grajska utrdba nad Ljubljano",
			RegionName:  "osrednja slovenija",
			Destination: "ljubljana",
			Place:       "ljubljana",
			Kind:        core.KindAttraction,
		},
		{
			Id:          3,
			Name:        "Postojnska jama",
			Type:        "jama",
			Description: "Najbolj obiskana kraska jama v Evropi",
			RegionName:  "primorska",
			Destination: "postojna",
			Place:       "postojna",
			Kind:        core.KindAttraction,
		},
		{
			Id:          4,
			Name:        "Bled",
			Type:        "mesto",
			Description: "Alpsko letovisce ob jezeru",
			RegionName:  "gorenjska",
			Destination: "bled",
			Place:       "bled",
			Kind:        core.KindTown,
		},
	}
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })

	docs := make([]Document, 0, len(testEntries()))
	for _, entry := range testEntries() {
		doc, err := DocumentFromEntry(entry)
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	require.NoError(t, ix.IndexBatch(docs))
	return ix
}

func TestDocumentFromEntry(t *testing.T) {
	entry := testEntries()[0]
	doc, err := DocumentFromEntry(entry)
	require.NoError(t, err)

	assert.Equal(t, "attraction/1", doc.ID)
	assert.Equal(t, "Blejski grad", doc.Fields[FieldName])
	assert.Equal(t, "bled", doc.Fields[FieldPlace])
	assert.Equal(t, false, doc.Fields[FieldTopResult])
}

func TestDocumentFromEntryInvalid(t *testing.T) {
	_, err := DocumentFromEntry(&core.CatalogueEntry{Kind: core.KindTown})
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseDocID(t *testing.T) {
	kind, id, err := parseDocID("town/42")
	require.NoError(t, err)
	assert.Equal(t, core.KindTown, kind)
	assert.Equal(t, core.ID(42), id)

	_, _, err = parseDocID("town")
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = parseDocID("castle/1")
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = parseDocID("town/abc")
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestSearchByName(t *testing.T) {
	ix := newTestIndex(t)

	hits, err := ix.Search(context.Background(), "blejski grad", 10, nil)
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	assert.Equal(t, "Blejski grad", hits[0].Name)
	assert.Equal(t, core.KindAttraction, hits[0].Kind)
	assert.Equal(t, core.ID(1), hits[0].Id)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestSearchNameOutweighsDescription(t *testing.T) {
	ix := newTestIndex(t)

	// "jama" appears in the name of Postojnska jama and only in the
	// description of nothing else; type matches rank below name matches.
	hits, err := ix.Search(context.Background(), "jama", 10, nil)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Postojnska jama", hits[0].Name)
}

func TestSearchWithFieldEquals(t *testing.T) {
	ix := newTestIndex(t)

	hits, err := ix.Search(context.Background(), "grad", 10, FieldEquals{Field: FieldPlace, Value: "bled"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Blejski grad", hits[0].Name)
}

func TestSearchFilterOnly(t *testing.T) {
	ix := newTestIndex(t)

	hits, err := ix.Search(context.Background(), "", 10, FieldEquals{Field: FieldDestination, Value: "bled"})
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestSearchFieldMatchName(t *testing.T) {
	ix := newTestIndex(t)

	hits, err := ix.Search(context.Background(), "", 1, FieldMatch{Field: FieldName, Text: "ljubljanski grad"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Ljubljanski grad", hits[0].Name)
}

func TestSearchLimit(t *testing.T) {
	ix := newTestIndex(t)

	hits, err := ix.Search(context.Background(), "grad", 1, nil)
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	hits, err = ix.Search(context.Background(), "grad", 0, nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestJoinFilters(t *testing.T) {
	a := FieldEquals{Field: FieldPlace, Value: "bled"}
	b := FieldEquals{Field: FieldRegion, Value: "gorenjska"}

	assert.Nil(t, JoinFilters())
	assert.Nil(t, JoinFilters(nil, nil))
	assert.Equal(t, Filter(a), JoinFilters(nil, a))
	assert.Equal(t, Filter(And{a, b}), JoinFilters(a, b))
}

func TestFieldTerms(t *testing.T) {
	ix := newTestIndex(t)

	terms, err := ix.FieldTerms(FieldPlace)
	require.NoError(t, err)

	byTerm := map[string]uint64{}
	for _, te := range terms {
		byTerm[te.Term] = te.Count
	}
	assert.Equal(t, uint64(2), byTerm["bled"])
	assert.Equal(t, uint64(1), byTerm["ljubljana"])
	assert.Equal(t, uint64(1), byTerm["postojna"])
}

func TestSearchTopResultThreshold(t *testing.T) {
	ix, err := NewMemory()
	require.NoError(t, err)
	defer ix.Close()

	// Identical weak matches (description only, boost 0.01); the promoted
	// one needs a much stronger signal to surface.
	entries := []*core.CatalogueEntry{
		{Id: 1, Name: "Navadna vas", Type: "mesto", Description: "vinogradi in griči", Kind: core.KindTown},
		{Id: 2, Name: "Glavna vas", Type: "mesto", Description: "vinogradi in griči", Kind: core.KindTown, IsTopResult: true},
	}
	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		doc, err := DocumentFromEntry(entry)
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	require.NoError(t, ix.IndexBatch(docs))

	hits, err := ix.Search(context.Background(), "vinogradi", 10, nil)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Navadna vas", hits[0].Name)
}

func TestDocCount(t *testing.T) {
	ix := newTestIndex(t)

	count, err := ix.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
}
