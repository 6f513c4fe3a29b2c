package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("Ljubljanski grad")
		b := IDFromContent("Ljubljanski grad")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content yields distinct ids", func(t *testing.T) {
		a := IDFromContent("Ljubljanski grad")
		b := IDFromContent("Blejski grad")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		assert.NotPanics(t, func() { IDFromContent("") })
	})
}

func TestKindTagString(t *testing.T) {
	assert.Equal(t, "attraction", KindAttraction.String())
	assert.Equal(t, "town", KindTown.String())
	assert.Equal(t, "region", KindRegion.String())
	assert.Equal(t, "unknown", KindTag(0).String())
}

func TestKindTagFromString(t *testing.T) {
	for _, kind := range []KindTag{KindAttraction, KindTown, KindRegion} {
		assert.Equal(t, kind, KindTagFromString(kind.String()))
	}
	assert.Equal(t, KindTag(0), KindTagFromString("noteworthy"))
}

func TestCatalogueEntryMUSRoundTrip(t *testing.T) {
	entry := CatalogueEntry{
		Id:          42,
		Name:        "Blejski grad",
		Link:        "https://example.test/blejski-grad",
		Address:     "Grajska cesta 61, Bled",
		Phone:       "+386 4 572 97 82",
		Webpage:     "www.blejski-grad.si",
		Tags:        "grad,zgodovina,razgled",
		Type:        "gradovi",
		Description: "Najstarejši slovenski grad na skali nad Blejskim jezerom.",
		RegionName:  "Gorenjska",
		Destination: "Bled",
		Place:       "Bled",
		GpsX:        46.3697,
		GpsY:        14.1003,
		IsTopResult: true,
		Kind:        KindAttraction,
	}

	buf := make([]byte, CatalogueEntryMUS.Size(entry))
	n := CatalogueEntryMUS.Marshal(entry, buf)
	require.Equal(t, len(buf), n)

	decoded, read, err := CatalogueEntryMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, n, read)
	assert.Equal(t, entry, decoded)
}

func TestCatalogueEntryMUSZeroValue(t *testing.T) {
	var entry CatalogueEntry
	buf := make([]byte, CatalogueEntryMUS.Size(entry))
	CatalogueEntryMUS.Marshal(entry, buf)

	decoded, _, err := CatalogueEntryMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, entry, decoded)
}

func TestCatalogueEntryMUSTruncated(t *testing.T) {
	entry := CatalogueEntry{Id: 7, Name: "Postojnska jama", Kind: KindAttraction}
	buf := make([]byte, CatalogueEntryMUS.Size(entry))
	CatalogueEntryMUS.Marshal(entry, buf)

	_, _, err := CatalogueEntryMUS.Unmarshal(buf[:3])
	assert.Error(t, err)
}
