package core

import (
	"fmt"
	"strings"
)

// ValidateEntry checks that a CatalogueEntry satisfies the catalogue
// invariants: a non-empty name and a known kind tag.
func ValidateEntry(entry *CatalogueEntry) error {
	if entry == nil {
		return ErrInvalidEntry
	}
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyName)
	}
	if err := ValidateKindTag(entry.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	return nil
}

// ValidateKindTag checks that a KindTag is one of the known values.
func ValidateKindTag(kind KindTag) error {
	switch kind {
	case KindAttraction, KindTown, KindRegion:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidKindTag, kind)
	}
}
