package search

import (
	"unicode/utf8"

	"github.com/poiesic/kazipot/index"
)

// resolveType extracts an entity-type filter from the words before the
// location span (words[:scanEnd]). A generic attractions word means no type
// restriction; the first word the type vocabulary recognizes becomes the
// filter. Entries miscategorized under the "vredno ogleda" and "biseri
// narave" umbrella types are caught by also allowing those types when the
// name contains the singular form of the matched word.
// Returns the filter (nil for unrestricted) and the rewritten query words.
func (e *Engine) resolveType(words []string, scanEnd int) (index.Filter, []string) {
	rewritten := make([]string, len(words))
	copy(rewritten, words)

	var filter index.Filter
	singular := ""
	for j, word := range rewritten[:scanEnd] {
		if filter != nil || utf8.RuneCountInString(word) <= 1 {
			continue
		}

		if len(e.attractionCorrector.Suggest(word, 2, correctionMaxDist, 1)) > 0 {
			// "znamenitosti" asks for everything; leave the type open.
			e.logger.Debug("attractions word, no type filter", "word", word)
			continue
		}

		typeMatch := e.typeCorrector.Suggest(word, 2, correctionMaxDist, 1)
		if len(typeMatch) == 0 {
			continue
		}
		rewritten[j] = typeMatch[0]
		filter = index.FieldEquals{Field: index.FieldType, Value: fixFilter(typeMatch[0])}
		e.logger.Debug("type matched", "word", word, "type", typeMatch[0])

		// The name vocabulary holds singulars ("grad" from "Blejski
		// grad"), which is what umbrella-typed entries carry in their
		// names.
		nameMatch := e.nameCorrector.Suggest(word, 2, nameMaxDist, 1)
		if len(nameMatch) > 0 {
			singular = nameMatch[0]
			byName := index.FieldEquals{Field: index.FieldName, Value: singular}
			filter = index.Or{
				filter,
				index.And{index.FieldEquals{Field: index.FieldType, Value: typeWorthSeeing}, byName},
				index.And{index.FieldEquals{Field: index.FieldType, Value: typeNatureGem}, byName},
			}
		}
	}

	if singular != "" {
		rewritten = append(rewritten, singular)
	}
	return filter, rewritten
}
