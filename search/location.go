package search

import (
	"context"
	"sort"
	"strings"

	"github.com/poiesic/kazipot/index"
)

// Level identifies how narrow a location filter is. Relaxation steps from
// narrow to broad, ending with no filter at all.
type Level int

const (
	LevelNone Level = iota - 1
	LevelRegion
	LevelDestination
	LevelPlace
)

func (l Level) String() string {
	switch l {
	case LevelRegion:
		return "region"
	case LevelDestination:
		return "destination"
	case LevelPlace:
		return "place"
	default:
		return "none"
	}
}

// locationProbeLimit caps the broad search used for statistical region
// inference.
const locationProbeLimit = 50

// regionShareThreshold selects regions holding more than this share of the
// probe hits.
const regionShareThreshold = 0.2

// locationMatch is the outcome of location resolution.
type locationMatch struct {
	// words is the rewritten query: the location span corrected, or
	// dropped when filtering was suppressed.
	words []string
	// filter restricts the search; nil means no location restriction.
	filter index.Filter
	// level records which field matched, for the relaxation loop.
	level Level
	// text is the corrected location phrase, used to look the location
	// back up during relaxation.
	text string
	// global marks an explicit country-wide query; the default assistant
	// location must not be applied.
	global bool
}

// splitPrepositions tokenizes text with prepositions as stopwords and
// returns the remaining words plus the index where the location span starts.
// The span follows the last preposition; -1 means no preposition and
// therefore no location span.
func splitPrepositions(text string) ([]string, int) {
	spanStart := -1
	var words []string
	for _, tok := range TokenizeFiltered(text, prepositionWords) {
		if tok.Stopped {
			spanStart = len(words)
			continue
		}
		words = append(words, tok.Text)
	}
	return words, spanStart
}

// resolveLocation extracts a location filter from the span after the last
// preposition. Country mentions suppress filtering globally, nearby mentions
// suppress it locally, otherwise the span is matched against the region,
// destination and place vocabularies from broadest to narrowest. When none
// match, the most plausible regions are inferred statistically.
func (e *Engine) resolveLocation(ctx context.Context, words []string, spanStart int) (locationMatch, error) {
	loc := locationMatch{words: words, level: LevelNone}
	if spanStart < 0 || spanStart >= len(words) {
		return loc, nil
	}

	phrase := words[spanStart:]

	// "v sloveniji" wants the whole country; "v bližini" wants the
	// assistant's surroundings. Both drop the span and skip filtering.
	for _, w := range phrase {
		if len(e.countryCorrector.Suggest(w, 1, correctionMaxDist, 1)) > 0 {
			e.logger.Debug("country-wide query", "word", w)
			loc.words = words[:spanStart]
			loc.global = true
			return loc, nil
		}
		if len(e.nearbyCorrector.Suggest(w, 1, correctionMaxDist, 1)) > 0 {
			e.logger.Debug("nearby query", "word", w)
			loc.words = words[:spanStart]
			return loc, nil
		}
	}

	// Broadest field that recognizes the phrase wins.
	vocabularies := []struct {
		corrector Corrector
		field     string
		level     Level
	}{
		{e.regionCorrector, index.FieldRegion, LevelRegion},
		{e.destinationCorrector, index.FieldDestination, LevelDestination},
		{e.placeCorrector, index.FieldPlace, LevelPlace},
	}
	for _, v := range vocabularies {
		corrected, found := correctWords(v.corrector, phrase, 2, correctionMaxDist)
		if found == "" {
			continue
		}
		text := strings.Join(corrected, " ")
		loc.words = append(words[:spanStart:spanStart], corrected...)
		loc.filter = index.FieldMatch{Field: v.field, Text: text}
		loc.level = v.level
		loc.text = text
		e.logger.Debug("location matched", "field", v.field, "location", text)
		return loc, nil
	}

	// No vocabulary knows the phrase; infer regions from where its first
	// word actually scores hits.
	regions, err := e.findCorrectLocation(ctx, phrase[0])
	if err != nil {
		return loc, err
	}
	clauses := make(index.Or, 0, len(regions))
	for _, r := range regions {
		clauses = append(clauses, index.FieldEquals{Field: index.FieldRegion, Value: fixFilter(r)})
	}
	loc.filter = clauses
	loc.level = LevelRegion
	loc.text = strings.Join(phrase, " ")
	return loc, nil
}

// findCorrectLocation infers which regions a supposed location word belongs
// to: search it broadly, tally regions over positively scored hits, and keep
// every region holding more than a fifth of the hits. Multi-region answers
// are deliberate; a coastal strip legitimately spans two regions. Zero hits
// select nothing.
func (e *Engine) findCorrectLocation(ctx context.Context, word string) ([]string, error) {
	hits, err := e.index.Search(ctx, word, locationProbeLimit, nil)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	total := 0
	for _, hit := range hits {
		if hit.Score > 0 && hit.RegionName != "" {
			counts[hit.RegionName]++
			total++
		}
	}
	if total == 0 {
		return nil, nil
	}

	var selected []string
	for region, count := range counts {
		if float64(count) > float64(total)*regionShareThreshold {
			selected = append(selected, region)
		}
	}
	sort.Strings(selected)
	e.logger.Debug("inferred regions", "word", word, "regions", selected)
	return selected, nil
}

// fixFilter reduces a stored field value to a single lowercase term so it
// can be used in a term filter.
func fixFilter(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
