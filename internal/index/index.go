// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a sorted in-memory index of values by string key.
package index

import (
	"slices"
	"sort"
	"strings"
)

type entry[V any] struct {
	key   string
	value V
}

// Index is a read-only index of values sorted by key. Values sharing a key
// keep their original relative order.
type Index[V any] struct {
	entries []entry[V]
}

// New creates an index over values using key to compute each value's key.
func New[V any](values []V, key func(V) string) *Index[V] {
	entries := make([]entry[V], 0, len(values))
	for _, v := range values {
		entries = append(entries, entry[V]{
			key:   key(v),
			value: v,
		})
	}
	slices.SortStableFunc(entries, func(a, b entry[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		entries: entries,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.entries)
}

// Lookup returns all values with the given key in their original order.
func (idx *Index[V]) Lookup(key string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return strings.Compare(key, idx.entries[i].key)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.entries) && idx.entries[i].key == key; i++ {
		values = append(values, idx.entries[i].value)
	}
	return values
}

// First returns the first value with the given key.
func (idx *Index[V]) First(key string) (V, bool) {
	values := idx.Lookup(key)
	if len(values) == 0 {
		var zero V
		return zero, false
	}
	return values[0], true
}

// Keys returns the distinct keys in sorted order.
func (idx *Index[V]) Keys() []string {
	var keys []string
	for i, e := range idx.entries {
		if i > 0 && idx.entries[i-1].key == e.key {
			continue
		}
		keys = append(keys, e.key)
	}
	return keys
}

// Duplicates returns the keys that occur more than once in sorted order.
func (idx *Index[V]) Duplicates() []string {
	var keys []string
	for i := 1; i < len(idx.entries); i++ {
		k := idx.entries[i].key
		if k != idx.entries[i-1].key {
			continue
		}
		if len(keys) > 0 && keys[len(keys)-1] == k {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}
