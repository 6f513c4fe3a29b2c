package index

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/poiesic/kazipot/core"
)

// topResultThreshold is the minimum score a promoted entry needs before it is
// allowed into the results. Promoted entries carry heavy editorial boosts, so
// weak accidental matches on them are discarded instead of surfacing first.
const topResultThreshold = 0.5

// Search runs a free-text query restricted by an optional filter and returns
// scored hits, best first. An empty text searches by filter alone, which is
// how confirmation lookups and location probes are expressed. At most limit
// hits are returned.
func (ix *Index) Search(ctx context.Context, text string, limit int, filter Filter) ([]core.Hit, error) {
	if limit <= 0 {
		return nil, nil
	}

	req := bleve.NewSearchRequest(buildQuery(text, filter))
	req.Size = limit
	req.Fields = []string{"*"}

	res, err := ix.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]core.Hit, 0, len(res.Hits))
	for _, match := range res.Hits {
		hit, err := hitFromMatch(match)
		if err != nil {
			ix.logger.Warn("skipping unreadable hit", "id", match.ID, "error", err)
			continue
		}
		if hit.Score <= 0 {
			continue
		}
		if hit.IsTopResult && hit.Score <= topResultThreshold {
			continue
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// buildQuery assembles the scored query tree. Free text is searched across
// name, type and description with per-field boosts, plus a bonus clause per
// field that requires all terms to land in that field together. The filter
// is conjoined so it gates results without dominating their scores.
func buildQuery(text string, filter Filter) query.Query {
	var textQuery query.Query
	if text != "" {
		fields := []struct {
			name  string
			boost float64
		}{
			{FieldName, boostName},
			{FieldType, boostType},
			{FieldRegion, 1.0},
			{FieldDescription, boostDescription},
			{FieldTags, 1.0},
			{FieldDestination, 1.0},
			{FieldPlace, 1.0},
		}

		clauses := make([]query.Query, 0, len(fields)*2)
		for _, f := range fields {
			or := bleve.NewMatchQuery(text)
			or.SetField(f.name)
			or.SetBoost(f.boost)
			clauses = append(clauses, or)

			all := bleve.NewMatchQuery(text)
			all.SetField(f.name)
			all.SetOperator(query.MatchQueryOperatorAnd)
			all.SetBoost(f.boost * allTermsFactor)
			clauses = append(clauses, all)
		}
		textQuery = bleve.NewDisjunctionQuery(clauses...)
	}

	var filterQuery query.Query
	if filter != nil {
		filterQuery = filter.compile()
	}

	switch {
	case textQuery != nil && filterQuery != nil:
		return bleve.NewConjunctionQuery(textQuery, filterQuery)
	case textQuery != nil:
		return textQuery
	case filterQuery != nil:
		return filterQuery
	default:
		return bleve.NewMatchAllQuery()
	}
}

func hitFromMatch(match *search.DocumentMatch) (core.Hit, error) {
	kind, id, err := parseDocID(match.ID)
	if err != nil {
		return core.Hit{}, err
	}

	return core.Hit{
		Id:          id,
		Kind:        kind,
		Name:        fieldString(match.Fields, FieldName),
		Link:        fieldString(match.Fields, FieldLink),
		Type:        fieldString(match.Fields, FieldType),
		RegionName:  fieldString(match.Fields, FieldRegion),
		Destination: fieldString(match.Fields, FieldDestination),
		Place:       fieldString(match.Fields, FieldPlace),
		Description: fieldString(match.Fields, FieldDescription),
		Webpage:     fieldString(match.Fields, FieldWebpage),
		Score:       match.Score,
		IsTopResult: fieldBool(match.Fields, FieldTopResult),
	}, nil
}

func fieldString(fields map[string]any, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}

func fieldBool(fields map[string]any, name string) bool {
	if v, ok := fields[name].(bool); ok {
		return v
	}
	return false
}
