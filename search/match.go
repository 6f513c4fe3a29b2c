package search

import (
	"context"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/poiesic/kazipot/core"
)

// findMatch resolves the single entity a query most plausibly asks about.
// Conversational filler is stripped, each word is corrected against the name
// vocabulary to absorb case inflection ("bledu" -> "bled"), and the cleaned
// query is searched with limit one.
func (e *Engine) findMatch(ctx context.Context, query string, monitor QueryMonitor) ([]core.Hit, error) {
	words := stripStopped(TokenizeFiltered(query, chatterWords))
	words, _ = correctWords(e.nameCorrector, words, -1, nameMaxDist)

	// A corrected word that is a known town pins the location mention.
	town := ""
	for _, w := range words {
		if e.towns.Contains(w) {
			town = w
		}
	}

	cleaned := strings.Join(words, " ")
	e.logger.Debug("single-entity search", "query", cleaned, "town", town)

	hits, err := e.index.Search(ctx, cleaned, 1, nil)
	if err != nil {
		return nil, err
	}

	var remaining []string
	if len(hits) > 0 {
		hit := hits[0]

		// Echo which of the hit's location fields the user most likely
		// meant: "povej mi kaj je na bledu" hits "Veseli december na
		// Bledu" but the user meant Bled.
		if town == "" && hit.Name != hit.Place {
			locations := []string{hit.Name, hit.Place, hit.Destination, hit.RegionName}
			closest := selectClosestString(locations, cleaned)
			e.logger.Debug("closest location field", "closest", closest)
		}

		// Words the hit name does not account for.
		nameWords := Tokenize(hit.Name)
		remaining = stripStopped(TokenizeFiltered(cleaned, nameWords))
		if strings.Join(nameWords, " ") == cleaned {
			hits[0].ExactHit = true
		}
	}

	monitor.AfterSingleMatch(hits, remaining)
	return hits, nil
}

// selectClosestString returns the option most similar to target by
// normalized Levenshtein ratio. Empty options are skipped; returns "" when
// nothing qualifies.
func selectClosestString(options []string, target string) string {
	best := ""
	bestRatio := 0.0
	for _, opt := range options {
		if opt == "" {
			continue
		}
		lenSum := float64(len(opt) + len(target))
		if lenSum == 0 {
			continue
		}
		dist := float64(smetrics.WagnerFischer(strings.ToLower(opt), target, 1, 1, 2))
		ratio := (lenSum - dist) / lenSum
		if ratio > bestRatio {
			bestRatio = ratio
			best = opt
		}
	}
	return best
}
