package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/kazipot/core"
	"github.com/poiesic/kazipot/gazetteer"
	"github.com/poiesic/kazipot/index"
)

// defaultListLimit caps list-intent searches.
const defaultListLimit = 10

// Searcher is the index surface the engine needs: scored filtered search and
// per-field correction vocabularies.
type Searcher interface {
	Search(ctx context.Context, text string, limit int, filter index.Filter) ([]core.Hit, error)
	Corrector(field string) (*index.Corrector, error)
}

// Engine analyzes natural-language queries and retrieves catalogue hits.
// It holds read-only correction vocabularies snapshotted from the index at
// construction, so concurrent queries need no coordination.
type Engine struct {
	index  Searcher
	towns  *gazetteer.Gazetteer
	logger *slog.Logger

	// assistantLocation, when set, becomes the default place filter for
	// "nearby" style list queries that name no location.
	assistantLocation string
	listLimit         int

	nameCorrector        Corrector
	typeCorrector        Corrector
	regionCorrector      Corrector
	destinationCorrector Corrector
	placeCorrector       Corrector
	countryCorrector     Corrector
	nearbyCorrector      Corrector
	attractionCorrector  Corrector
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithAssistantLocation sets the default location applied to list queries
// that name no place ("znamenitosti v bližini"). Empty disables the default.
func WithAssistantLocation(location string) Option {
	return func(e *Engine) error {
		e.assistantLocation = strings.ToLower(strings.TrimSpace(location))
		return nil
	}
}

// WithListLimit overrides the result cap for list-intent queries.
func WithListLimit(limit int) Option {
	return func(e *Engine) error {
		if limit > 0 {
			e.listLimit = limit
		}
		return nil
	}
}

// NewEngine creates a query engine over an index and a town gazetteer.
func NewEngine(ix Searcher, towns *gazetteer.Gazetteer, opts ...Option) (*Engine, error) {
	if ix == nil {
		return nil, ErrIndexRequired
	}
	if towns == nil {
		return nil, ErrGazetteerRequired
	}

	e := &Engine{
		index:               ix,
		towns:               towns,
		logger:              slog.Default(),
		listLimit:           defaultListLimit,
		countryCorrector:    NewListCorrector(countryWords),
		nearbyCorrector:     NewListCorrector(nearbyWords),
		attractionCorrector: NewListCorrector(attractionWords),
	}

	// Snapshot the field vocabularies. The index is immutable while
	// serving, so these stay valid for the engine's lifetime.
	fields := []struct {
		name   string
		target *Corrector
	}{
		{index.FieldName, &e.nameCorrector},
		{index.FieldType, &e.typeCorrector},
		{index.FieldRegion, &e.regionCorrector},
		{index.FieldDestination, &e.destinationCorrector},
		{index.FieldPlace, &e.placeCorrector},
	}
	for _, f := range fields {
		c, err := ix.Corrector(f.name)
		if err != nil {
			return nil, err
		}
		*f.target = c
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// AnalyzeQuery resolves a free-form query into ranked catalogue hits.
// The result is never nil; an unanswerable query yields an empty slice.
func (e *Engine) AnalyzeQuery(ctx context.Context, query string) ([]core.Hit, error) {
	return e.AnalyzeQueryWithMonitor(ctx, query, nil)
}

// AnalyzeQueryWithMonitor is AnalyzeQuery with stage-by-stage callbacks.
// The monitor receives intermediate pipeline state; pass nil for none.
func (e *Engine) AnalyzeQueryWithMonitor(ctx context.Context, query string, monitor QueryMonitor) ([]core.Hit, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	if strings.TrimSpace(query) == "" {
		e.logger.Debug("empty query")
		hits := []core.Hit{}
		monitor.Finish(hits)
		return hits, nil
	}

	// A query that names an entity verbatim skips all analysis.
	exactHits, exact, err := e.checkExact(ctx, query)
	if err != nil {
		return nil, err
	}
	if exact {
		exactHits[0].ExactHit = true
		monitor.ExactMatch(exactHits[0])
		monitor.Finish(exactHits[:1])
		return exactHits[:1], nil
	}

	// Resolve the single best entity now; if no list intent shows up
	// below, this is the answer.
	match, err := e.findMatch(ctx, query, monitor)
	if err != nil {
		return nil, err
	}

	limit, words := e.detectListIntent(query)
	monitor.AfterListDetection(limit, words)
	if limit == 1 {
		monitor.Finish(match)
		return match, nil
	}

	hits, err := e.searchMany(ctx, words, monitor)
	if err != nil {
		return nil, err
	}

	// First hit carries the exact flag so clients can weight it.
	if len(hits) > 0 {
		hits[0].ExactHit = true
	}
	monitor.Finish(hits)
	return hits, nil
}

// detectListIntent decides between single-entity and list retrieval. A list
// word ("seznam") or a plural type that is not a town name ("gradovi")
// switches to the list limit. Returns the limit and the query words with
// list words removed.
func (e *Engine) detectListIntent(query string) (int, []string) {
	limit := 1
	var words []string
	for _, tok := range TokenizeFiltered(query, listWords) {
		if tok.Stopped && utf8.RuneCountInString(tok.Text) > 1 {
			limit = e.listLimit
			continue
		}
		// Types can collide with town names (there is a type
		// "ljubljana"), so a known town never counts as a plural type.
		if utf8.RuneCountInString(tok.Text) > 2 &&
			len(e.typeCorrector.Suggest(tok.Text, PrefixFor(tok.Text), 0, 1)) > 0 &&
			!e.towns.Contains(tok.Text) {
			e.logger.Debug("plural type detected", "word", tok.Text)
			limit = e.listLimit
		}
		words = append(words, tok.Text)
	}
	return limit, words
}

// searchMany runs the list-intent pipeline: location and type resolution,
// a filtered search, and relaxation when the filters prove too narrow.
func (e *Engine) searchMany(ctx context.Context, words []string, monitor QueryMonitor) ([]core.Hit, error) {
	tokens, spanStart := splitPrepositions(strings.Join(words, " "))

	loc, err := e.resolveLocation(ctx, tokens, spanStart)
	if err != nil {
		return nil, err
	}

	// Type words live before the location span.
	scanEnd := len(loc.words)
	if spanStart >= 0 && spanStart < scanEnd {
		scanEnd = spanStart
	}
	typeFilter, rewritten := e.resolveType(loc.words, scanEnd)

	// List queries with no location of their own default to the
	// assistant's place, unless the query was explicitly country-wide.
	if loc.filter == nil && !loc.global && e.assistantLocation != "" {
		loc.filter = index.FieldEquals{Field: index.FieldPlace, Value: e.assistantLocation}
		loc.level = LevelPlace
		loc.text = e.assistantLocation
	}
	monitor.AfterLocationResolve(loc.level, loc.text, loc.global)

	text := strings.Join(rewritten, " ")
	monitor.AfterTypeResolve(text)
	e.logger.Debug("analyzed list query", "text", text, "level", loc.level, "location", loc.text)

	hits, err := e.index.Search(ctx, text, e.listLimit, index.JoinFilters(typeFilter, loc.filter))
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return e.relaxSearch(ctx, text, typeFilter, loc, monitor)
	}
	return hits, nil
}
