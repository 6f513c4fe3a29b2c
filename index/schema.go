package index

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Searchable field names. These double as spelling-correction vocabularies:
// the dictionary of the region, destination and place fields is what the
// query-understanding layer corrects location words against.
const (
	FieldName        = "name"
	FieldType        = "type"
	FieldDescription = "description"
	FieldRegion      = "region"
	FieldDestination = "destination"
	FieldPlace       = "place"
	FieldTags        = "tags"
	FieldLink        = "link"
	FieldWebpage     = "webpage"
	FieldTopResult   = "topResult"
)

// Relevance boosts for free-text search. Names dominate, types help, and
// descriptions only break ties between otherwise equal hits.
const (
	boostName        = 1.5
	boostType        = 1.2
	boostDescription = 0.01

	// allTermsFactor scales the bonus clause that rewards documents
	// matching every query term in a single field.
	allTermsFactor = 0.9
)

// buildMapping constructs the Bleve index mapping for catalogue documents.
// Text fields use the simple analyzer so that terms are lowercased and split
// on non-letters without stemming. Slovenian inflection is handled upstream
// by the corrector, not by the analyzer.
func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = simple.Name
	text.Store = true

	stored := bleve.NewTextFieldMapping()
	stored.Index = false
	stored.Store = true

	flag := bleve.NewBooleanFieldMapping()
	flag.Store = true

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(FieldName, text)
	doc.AddFieldMappingsAt(FieldType, text)
	doc.AddFieldMappingsAt(FieldDescription, text)
	doc.AddFieldMappingsAt(FieldRegion, text)
	doc.AddFieldMappingsAt(FieldDestination, text)
	doc.AddFieldMappingsAt(FieldPlace, text)
	doc.AddFieldMappingsAt(FieldTags, text)
	doc.AddFieldMappingsAt(FieldLink, stored)
	doc.AddFieldMappingsAt(FieldWebpage, stored)
	doc.AddFieldMappingsAt(FieldTopResult, flag)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	m.DefaultAnalyzer = simple.Name
	return m
}
