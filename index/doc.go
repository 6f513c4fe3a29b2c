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


// Package index wraps a Bleve full-text index over the tourism catalogue.
//
// The index is the retrieval half of the query pipeline: entries from storage
// are flattened into documents, indexed with a simple (lowercasing,
// letter-splitting) analyzer, and searched with per-field boosted queries.
// Name matches weigh most, type matches somewhat less, and description
// matches act only as a tie-breaker.
//
// The package also exposes the term dictionaries of individual fields, which
// the query-understanding layer uses as vocabularies for spelling correction.
package index
