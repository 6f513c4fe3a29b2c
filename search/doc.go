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


// Package search turns free-form Slovenian tourism queries into structured
// index searches.
//
// A query passes through several understanding stages: an exact-name
// short-circuit, list-intent detection ("seznam gradov" wants many results,
// "ljubljanski grad" wants one), location extraction from the span after the
// last preposition, type extraction from the remaining words, and finally a
// retrieval loop that progressively widens the location filter when a narrow
// one returns nothing.
//
// All understanding is soft: a word that cannot be corrected, a location
// that cannot be placed, or a filter that matches nothing degrade to broader
// searches or empty results, never to errors. Errors surface only for index
// failures.
//
// The pipeline is specific to Slovenian morphology; the correctors absorb
// case inflection ("na Bledu" vs "Bled"), not just typos.
package search
