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


package index

import "errors"

var (
	// ErrIndexNotFound indicates that no index exists at the given path.
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexExists indicates that an index already exists at the given path.
	ErrIndexExists = errors.New("index already exists")

	// ErrInvalidDocument indicates that an entry could not be converted
	// into an indexable document.
	ErrInvalidDocument = errors.New("invalid document")
)
