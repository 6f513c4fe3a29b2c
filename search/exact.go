package search

import (
	"context"
	"strings"

	"github.com/poiesic/kazipot/core"
	"github.com/poiesic/kazipot/index"
)

// checkExact looks for a catalogue entry whose name equals the query word
// for word. The query is typo-corrected against the name vocabulary first;
// if that changed anything, the hit carries a "did you mean" suggestion.
// Returns the hits and whether the first one is an exact name match.
func (e *Engine) checkExact(ctx context.Context, query string) ([]core.Hit, bool, error) {
	words := Tokenize(query)
	corrected, _ := correctWords(e.nameCorrector, words, 2, correctionMaxDist)

	suggestion := false
	text := strings.Join(words, " ")
	correctedText := strings.Join(corrected, " ")
	if correctedText != text {
		suggestion = true
		text = correctedText
	}

	// Restrict to the name field so a description mentioning the query
	// cannot masquerade as the entity itself.
	filter := index.FieldMatch{Field: index.FieldName, Text: text}
	hits, err := e.index.Search(ctx, text, 1, filter)
	if err != nil {
		return nil, false, err
	}

	exact := false
	for i := range hits {
		hits[i].Suggestion = suggestion
		if suggestion {
			hits[i].SuggestionText = text
		}
		if normalize(hits[i].Name) == text {
			e.logger.Debug("exact name match", "name", hits[i].Name)
			exact = true
		}
	}
	return hits, exact, nil
}
