package index

import (
	"sort"
	"strings"
)

// Corrector suggests replacements for a misspelled word from a fixed
// vocabulary. Candidates must share a required prefix with the word and lie
// within a maximum edit distance; ties rank by term frequency, then term
// order. A corrector never fails: no candidate means an empty suggestion
// list.
type Corrector struct {
	entries []TermEntry
}

// NewCorrector builds a corrector over the given term entries.
// Entries with zero counts are allowed; they make the corrector
// frequency-blind so that ties fall back to term order.
func NewCorrector(entries []TermEntry) *Corrector {
	return &Corrector{entries: entries}
}

// Corrector returns a corrector over the term dictionary of a field.
func (ix *Index) Corrector(field string) (*Corrector, error) {
	entries, err := ix.FieldTerms(field)
	if err != nil {
		return nil, err
	}
	return NewCorrector(entries), nil
}

type candidate struct {
	term  string
	count uint64
	dist  int
}

// Suggest returns up to limit vocabulary terms within maxDist edits of word
// that share its first prefixLen characters.
func (c *Corrector) Suggest(word string, prefixLen, maxDist, limit int) []string {
	if word == "" || limit <= 0 {
		return nil
	}

	runes := []rune(word)
	if prefixLen > len(runes) {
		prefixLen = len(runes)
	}
	prefix := string(runes[:prefixLen])

	var candidates []candidate
	for _, entry := range c.entries {
		if !strings.HasPrefix(entry.Term, prefix) {
			continue
		}
		dist := editDistance(runes, []rune(entry.Term), maxDist)
		if dist > maxDist {
			continue
		}
		candidates = append(candidates, candidate{term: entry.Term, count: entry.Count, dist: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].term < candidates[j].term
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	terms := make([]string, len(candidates))
	for i, cand := range candidates {
		terms[i] = cand.term
	}
	return terms
}

// SuggestEscalating tries distances 0..maxDistCap in turn and returns the
// suggestions of the first distance that produces any. Tight corrections are
// never diluted by looser ones.
func (c *Corrector) SuggestEscalating(word string, prefixLen, maxDistCap, limit int) []string {
	for dist := 0; dist <= maxDistCap; dist++ {
		if found := c.Suggest(word, prefixLen, dist, limit); len(found) > 0 {
			return found
		}
	}
	return nil
}

// editDistance computes the Levenshtein distance between two rune slices,
// bailing out with maxDist+1 once the distance provably exceeds maxDist.
// Rune-based so that distances over Slovenian diacritics count one edit per
// character, not per byte.
func editDistance(a, b []rune, maxDist int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > maxDist {
		return maxDist + 1
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		rowMin := curr[0]
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
			if curr[i] < rowMin {
				rowMin = curr[i]
			}
		}
		if rowMin > maxDist {
			return maxDist + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}
