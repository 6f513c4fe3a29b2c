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


// Package storage provides the catalogue storage abstraction for kazipot.
//
// This package defines repository interfaces that decouple storage
// implementation from the query pipeline. The pipeline only needs a bulk-read
// view of the catalogue to build its full-text index; writes happen offline
// through the seeder.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces so that alternative backends
// (BadgerDB, in-memory, a relational store) can be swapped without touching
// consumers:
//
//	repo, err := badger.NewCatalogueRepository(backend)
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
