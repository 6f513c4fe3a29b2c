package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalogue entries.
// Identifiers are unique per KindTag, not globally.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, so re-seeding the
// catalogue from the same source yields the same entry IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// KindTag classifies a catalogue entry.
type KindTag int

const (
	// KindAttraction represents a sight, monument, or other point of interest.
	KindAttraction KindTag = iota + 1
	// KindTown represents a town or village.
	KindTown
	// KindRegion represents one of the tourist regions.
	KindRegion
)

// String returns the stored string form of the kind tag.
func (k KindTag) String() string {
	switch k {
	case KindAttraction:
		return "attraction"
	case KindTown:
		return "town"
	case KindRegion:
		return "region"
	default:
		return "unknown"
	}
}

// KindTagFromString parses the stored string form of a kind tag.
// Returns 0 for unknown values.
func KindTagFromString(s string) KindTag {
	switch s {
	case "attraction":
		return KindAttraction
	case "town":
		return KindTown
	case "region":
		return KindRegion
	default:
		return 0
	}
}

// CatalogueEntry is a single record of the tourism catalogue: a region, a town
// or an attraction, as scraped from the source pages. Entries are read-only to
// the query pipeline; they are written once by the seeder/scraper and projected
// into the search index in bulk.
type CatalogueEntry struct {
	Id          ID
	Name        string
	Link        string
	Address     string
	Phone       string
	Webpage     string
	Tags        string // comma-separated, kept in source form
	Type        string
	Description string
	Picture     string
	RegionName  string
	Destination string
	Place       string
	GpsX        float64
	GpsY        float64
	IsTopResult bool
	Kind        KindTag
}

// Hit is a single ranked search result returned by the query pipeline.
type Hit struct {
	Id          ID
	Name        string
	Link        string
	Type        string
	RegionName  string
	Destination string
	Place       string
	Kind        KindTag
	Description string
	Webpage     string
	Score       float64
	IsTopResult bool

	// ExactHit marks a hit whose name matched the query word for word, or the
	// top hit of a list result (used for weighting on the client side).
	ExactHit bool

	// Suggestion is set when the query was typo-corrected before searching;
	// SuggestionText then carries the corrected query for a
	// "did you mean ...?" prompt.
	Suggestion     bool
	SuggestionText string
}
