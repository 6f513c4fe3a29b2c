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


// Package gazetteer holds the static list of Slovenian town names used to
// tell place mentions apart from entity types during query understanding.
package gazetteer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// ErrNotSorted indicates that a town list is not in ascending order.
// Lookups rely on binary search, so sortedness is enforced at load.
var ErrNotSorted = errors.New("town list is not sorted")

// Gazetteer is a sorted, lowercased list of town names.
type Gazetteer struct {
	names []string
}

// New creates a gazetteer from a list of names. Names are lowercased;
// the list must already be in ascending order.
func New(names []string) (*Gazetteer, error) {
	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if !slices.IsSorted(lowered) {
		return nil, ErrNotSorted
	}
	return &Gazetteer{names: lowered}, nil
}

// Load reads a gazetteer from a file with one town name per line.
// Blank lines and lines starting with '#' are skipped.
func Load(path string) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gazetteer: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gazetteer: %w", err)
	}
	return New(names)
}

// Contains reports whether name is a known town. Case-insensitive.
func (g *Gazetteer) Contains(name string) bool {
	_, found := slices.BinarySearch(g.names, strings.ToLower(name))
	return found
}

// Names returns the sorted town names. The returned slice is shared;
// callers must not modify it.
func (g *Gazetteer) Names() []string {
	return g.names
}

// Len returns the number of towns.
func (g *Gazetteer) Len() int {
	return len(g.names)
}
