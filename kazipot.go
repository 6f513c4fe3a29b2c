// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package kazipot

import (
	"context"
	"log/slog"

	"github.com/poiesic/kazipot/core"
	"github.com/poiesic/kazipot/gazetteer"
	"github.com/poiesic/kazipot/index"
	"github.com/poiesic/kazipot/ingestion"
	"github.com/poiesic/kazipot/search"
	"github.com/poiesic/kazipot/storage"
	"github.com/poiesic/kazipot/storage/badger"
)

// App bundles the catalogue store, the search index, the town gazetteer and
// the query engine behind a single handle.
type App struct {
	backend       *badger.Backend
	catalogueRepo storage.CatalogueRepository
	index         *index.Index
	towns         *gazetteer.Gazetteer
	engine        *search.Engine
	logger        *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	assistantLocation string
	listLimit         int
	logger            *slog.Logger
}

// WithAssistantLocation sets the place the assistant terminal is installed
// at; queries that name no location are restricted to it.
func WithAssistantLocation(location string) AppOption {
	return func(o *appOptions) {
		o.assistantLocation = location
	}
}

// WithListLimit overrides the result cap for list queries.
func WithListLimit(limit int) AppOption {
	return func(o *appOptions) {
		o.listLimit = limit
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AppOption {
	return func(o *appOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open opens the catalogue store, the prebuilt search index and the town
// gazetteer, and wires the query engine over them. The index must have been
// built beforehand; Open fails with index.ErrIndexNotFound otherwise.
func Open(cataloguePath, indexPath, gazetteerPath string, opts ...AppOption) (*App, error) {
	// Apply options
	options := &appOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(cataloguePath, false)
	if err != nil {
		return nil, err
	}

	// Create catalogue repository
	catalogueRepo, err := badger.NewCatalogueRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Open the prebuilt index
	ix, err := index.Open(indexPath, index.WithLogger(options.logger))
	if err != nil {
		catalogueRepo.Close()
		backend.Close()
		return nil, err
	}

	// Load the town gazetteer
	towns, err := gazetteer.Load(gazetteerPath)
	if err != nil {
		ix.Close()
		catalogueRepo.Close()
		backend.Close()
		return nil, err
	}

	engineOpts := []search.Option{
		search.WithLogger(options.logger),
		search.WithAssistantLocation(options.assistantLocation),
	}
	if options.listLimit > 0 {
		engineOpts = append(engineOpts, search.WithListLimit(options.listLimit))
	}
	engine, err := search.NewEngine(ix, towns, engineOpts...)
	if err != nil {
		ix.Close()
		catalogueRepo.Close()
		backend.Close()
		return nil, err
	}

	return &App{
		backend:       backend,
		catalogueRepo: catalogueRepo,
		index:         ix,
		towns:         towns,
		engine:        engine,
		logger:        options.logger,
	}, nil
}

// AnalyzeQuery resolves a free-form query into ranked catalogue hits.
func (a *App) AnalyzeQuery(ctx context.Context, query string) ([]core.Hit, error) {
	return a.engine.AnalyzeQuery(ctx, query)
}

// Close closes the index, the repositories and the backend.
func (a *App) Close() error {
	if err := a.index.Close(); err != nil {
		a.logger.Error("error closing index", "err", err)
	}
	if err := a.catalogueRepo.Close(); err != nil {
		a.logger.Error("error closing catalogue repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CatalogueRepository returns the catalogue store.
func (a *App) CatalogueRepository() storage.CatalogueRepository {
	return a.catalogueRepo
}

// Engine returns the query engine.
func (a *App) Engine() *search.Engine {
	return a.engine
}

// Towns returns the town gazetteer.
func (a *App) Towns() *gazetteer.Gazetteer {
	return a.towns
}

// BuildIndex creates the search index at indexPath from the catalogue store
// at cataloguePath. This is the offline build step; the index is never
// rebuilt while serving queries. Returns the number of documents indexed.
func BuildIndex(ctx context.Context, cataloguePath, indexPath string, opts ...ingestion.Option) (int, error) {
	backend, err := badger.OpenBackend(cataloguePath, false)
	if err != nil {
		return 0, err
	}
	defer backend.Close()

	catalogueRepo, err := badger.NewCatalogueRepository(backend)
	if err != nil {
		return 0, err
	}
	defer catalogueRepo.Close()

	ix, err := index.Create(indexPath)
	if err != nil {
		return 0, err
	}
	defer ix.Close()

	pipeline, err := ingestion.NewPipeline(catalogueRepo, ix, opts...)
	if err != nil {
		return 0, err
	}
	defer pipeline.Release()

	return pipeline.Build(ctx)
}
