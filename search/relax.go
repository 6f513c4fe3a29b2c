package search

import (
	"context"
	"strings"

	"github.com/poiesic/kazipot/core"
	"github.com/poiesic/kazipot/index"
)

// relaxSearch retries a zero-hit list search with progressively broader
// location filters: place, destination, region, then none. The broader
// values come from looking the corrected location itself back up, since a
// catalogue entry carries all three fields. The type filter stays applied
// throughout. Never narrows; a terminal empty result means the unfiltered
// search found nothing either.
func (e *Engine) relaxSearch(ctx context.Context, text string, typeFilter index.Filter, loc locationMatch, monitor QueryMonitor) ([]core.Hit, error) {
	if loc.level == LevelNone {
		return []core.Hit{}, nil
	}

	// Read the location entry's own region/destination/place back out.
	options := [3]string{}
	fields := [3]string{index.FieldRegion, index.FieldDestination, index.FieldPlace}
	if loc.text != "" {
		lookup, err := e.index.Search(ctx, loc.text, 1, loc.filter)
		if err != nil {
			return nil, err
		}
		if len(lookup) > 0 {
			options[LevelRegion] = strings.ToLower(lookup[0].RegionName)
			options[LevelDestination] = strings.ToLower(lookup[0].Destination)
			options[LevelPlace] = strings.ToLower(lookup[0].Place)
		}
	}

	var hits []core.Hit
	for level := loc.level - 1; level >= LevelNone && len(hits) == 0; level-- {
		var locationFilter index.Filter
		if level > LevelNone {
			if options[level] == "" {
				continue
			}
			locationFilter = index.FieldEquals{Field: fields[level], Value: fixFilter(options[level])}
		}

		monitor.Relaxed(level)
		e.logger.Debug("relaxing location filter", "level", level)

		var err error
		hits, err = e.index.Search(ctx, text, e.listLimit, index.JoinFilters(typeFilter, locationFilter))
		if err != nil {
			return nil, err
		}
	}
	if hits == nil {
		hits = []core.Hit{}
	}
	return hits, nil
}
