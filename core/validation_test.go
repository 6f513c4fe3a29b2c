package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry := &CatalogueEntry{Id: 1, Name: "Bled", Kind: KindTown}
		assert.NoError(t, ValidateEntry(entry))
	})

	t.Run("nil entry", func(t *testing.T) {
		err := ValidateEntry(nil)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("empty name", func(t *testing.T) {
		entry := &CatalogueEntry{Id: 1, Kind: KindTown}
		err := ValidateEntry(entry)
		assert.ErrorIs(t, err, ErrInvalidEntry)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("whitespace name", func(t *testing.T) {
		entry := &CatalogueEntry{Id: 1, Name: "   ", Kind: KindTown}
		assert.ErrorIs(t, ValidateEntry(entry), ErrEmptyName)
	})

	t.Run("unknown kind", func(t *testing.T) {
		entry := &CatalogueEntry{Id: 1, Name: "Bled"}
		err := ValidateEntry(entry)
		assert.ErrorIs(t, err, ErrInvalidKindTag)
	})
}

func TestValidateKindTag(t *testing.T) {
	assert.NoError(t, ValidateKindTag(KindAttraction))
	assert.NoError(t, ValidateKindTag(KindTown))
	assert.NoError(t, ValidateKindTag(KindRegion))
	assert.ErrorIs(t, ValidateKindTag(KindTag(99)), ErrInvalidKindTag)
}
