package search

import (
	"unicode/utf8"

	"github.com/poiesic/kazipot/index"
)

// Edit budgets used across the pipeline. Locations and names tolerate two
// edits; the name corrector in findMatch escalates up to three to absorb
// longer case endings.
const (
	correctionMaxDist = 2
	nameMaxDist       = 3
)

// Corrector suggests vocabulary replacements for a word. Implementations
// return an empty slice when nothing qualifies, never an error.
type Corrector interface {
	Suggest(word string, prefixLen, maxDist, limit int) []string
	SuggestEscalating(word string, prefixLen, maxDistCap, limit int) []string
}

// NewListCorrector builds a frequency-blind corrector over a static word
// list. Ties on edit distance resolve to the earliest word in sorted order.
func NewListCorrector(words []string) Corrector {
	entries := make([]index.TermEntry, len(words))
	for i, w := range words {
		entries[i] = index.TermEntry{Term: w}
	}
	return index.NewCorrector(entries)
}

// PrefixFor computes the required correction prefix from word length. Longer
// words keep a longer fixed stem. This is a stemming heuristic for Slovenian
// case endings, separate from the edit-distance budget.
func PrefixFor(word string) int {
	n := utf8.RuneCountInString(word)
	switch {
	case n == 0:
		return 0
	case n < 4:
		return n - 1
	case n < 6:
		return n - 2
	default:
		return n - 3
	}
}

// correctWords corrects every word longer than two characters against the
// corrector, escalating the edit distance from zero so that tighter
// corrections always win. A negative prefixLen derives the prefix per word
// with PrefixFor. Returns the corrected copy and the last correction made
// (empty when no word was corrected).
func correctWords(c Corrector, words []string, prefixLen, maxDist int) ([]string, string) {
	corrected := make([]string, len(words))
	copy(corrected, words)

	var last string
	for i, word := range corrected {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		prefix := prefixLen
		if prefix < 0 {
			prefix = PrefixFor(word)
		}
		if found := c.SuggestEscalating(word, prefix, maxDist, 1); len(found) > 0 {
			corrected[i] = found[0]
			last = found[0]
		}
	}
	return corrected, last
}
