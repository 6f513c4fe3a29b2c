package index

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Filter restricts a search to a subset of the catalogue. Filters form a
// small recursive expression tree; a nil Filter means no restriction.
type Filter interface {
	compile() query.Query
}

// FieldEquals matches documents whose field contains the given term.
// The value must already be a single lowercase token.
type FieldEquals struct {
	Field string
	Value string
}

func (f FieldEquals) compile() query.Query {
	q := bleve.NewTermQuery(f.Value)
	q.SetField(f.Field)
	return q
}

// FieldMatch matches documents whose field contains every token of the
// analyzed text. Used for exact-name confirmation lookups.
type FieldMatch struct {
	Field string
	Text  string
}

func (f FieldMatch) compile() query.Query {
	q := bleve.NewMatchQuery(f.Text)
	q.SetField(f.Field)
	q.SetOperator(query.MatchQueryOperatorAnd)
	return q
}

// And matches documents satisfying every child filter.
type And []Filter

func (f And) compile() query.Query {
	clauses := make([]query.Query, 0, len(f))
	for _, child := range f {
		if child != nil {
			clauses = append(clauses, child.compile())
		}
	}
	return bleve.NewConjunctionQuery(clauses...)
}

// Or matches documents satisfying at least one child filter.
type Or []Filter

func (f Or) compile() query.Query {
	clauses := make([]query.Query, 0, len(f))
	for _, child := range f {
		if child != nil {
			clauses = append(clauses, child.compile())
		}
	}
	// An empty disjunction restricts to nothing rather than everything;
	// statistical inference with no selected region must yield no hits.
	if len(clauses) == 0 {
		return bleve.NewMatchNoneQuery()
	}
	return bleve.NewDisjunctionQuery(clauses...)
}

// JoinFilters combines filters into a conjunction, dropping nil members.
// Returns nil when no filter remains, and the single member unchanged when
// only one remains.
func JoinFilters(filters ...Filter) Filter {
	var kept []Filter
	for _, f := range filters {
		if f != nil {
			kept = append(kept, f)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return And(kept)
	}
}
