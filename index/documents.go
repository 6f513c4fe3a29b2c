package index

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/kazipot/core"
)

// Document is a flattened catalogue entry ready for indexing.
type Document struct {
	ID     string
	Fields map[string]any
}

// DocumentFromEntry converts a catalogue entry into an indexable document.
// The document ID encodes the entry kind and storage ID so that hits can be
// traced back to storage without an extra stored field.
func DocumentFromEntry(entry *core.CatalogueEntry) (Document, error) {
	if err := core.ValidateEntry(entry); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return Document{
		ID: docID(entry.Kind, entry.Id),
		Fields: map[string]any{
			FieldName:        entry.Name,
			FieldType:        entry.Type,
			FieldDescription: entry.Description,
			FieldRegion:      entry.RegionName,
			FieldDestination: entry.Destination,
			FieldPlace:       entry.Place,
			FieldTags:        entry.Tags,
			FieldLink:        entry.Link,
			FieldWebpage:     entry.Webpage,
			FieldTopResult:   entry.IsTopResult,
		},
	}, nil
}

func docID(kind core.KindTag, id core.ID) string {
	return kind.String() + "/" + strconv.FormatUint(uint64(id), 10)
}

// parseDocID splits a document ID back into entry kind and storage ID.
func parseDocID(id string) (core.KindTag, core.ID, error) {
	kindStr, idStr, ok := strings.Cut(id, "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed document ID %q", ErrInvalidDocument, id)
	}
	kind := core.KindTagFromString(kindStr)
	if kind == 0 {
		return 0, 0, fmt.Errorf("%w: unknown kind in document ID %q", ErrInvalidDocument, id)
	}
	num, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed document ID %q", ErrInvalidDocument, id)
	}
	return kind, core.ID(num), nil
}
