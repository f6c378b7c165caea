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

// Package filter selects words by search term, rank code and script.
package filter

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-tango/internal/folding"
	"github.com/ianlewis/go-tango/markup"
	"github.com/ianlewis/go-tango/record"
	"github.com/ianlewis/go-tango/script"
)

// Scope selects the fields a search term is matched against.
type Scope int

const (
	// ScopeWord matches the expression, reading and definition.
	ScopeWord Scope = iota

	// ScopeFull also matches the part of speech and the text of examples
	// and related words.
	ScopeFull
)

// ParseScope parses a scope name ("word" or "full"). The empty string is
// ScopeWord.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "word":
		return ScopeWord, nil
	case "full":
		return ScopeFull, nil
	default:
		return ScopeWord, fmt.Errorf("unknown search scope %q", name)
	}
}

// String implements [fmt.Stringer].
func (s Scope) String() string {
	if s == ScopeFull {
		return "full"
	}
	return "word"
}

// Query is a word filter. The zero value matches every word.
type Query struct {
	// Term is matched as a case-insensitive substring. An empty term
	// matches all words.
	Term string

	// Scope selects the fields Term is matched against.
	Scope Scope

	// Level must equal the word's rank code when not empty.
	Level string

	// Kind restricts the script of the expression.
	Kind script.Kind
}

// Matcher is a compiled Query.
type Matcher struct {
	term  string
	scope Scope
	level string
	kind  script.Kind
}

// Compile folds the query term once so it can be matched against many
// words.
func (q *Query) Compile() *Matcher {
	if q == nil {
		return &Matcher{}
	}
	return &Matcher{
		term:  folding.String(q.Term),
		scope: q.Scope,
		level: q.Level,
		kind:  q.Kind,
	}
}

// Match reports whether w matches the query.
func (q *Query) Match(w *record.Word) bool {
	return q.Compile().Match(w)
}

// Match reports whether w matches.
func (m *Matcher) Match(w *record.Word) bool {
	if w == nil {
		return false
	}
	if m.level != "" && w.Level != m.level {
		return false
	}
	if !m.kind.Match(w.Expression) {
		return false
	}
	if m.term == "" {
		return true
	}

	for _, field := range m.fields(w) {
		if strings.Contains(folding.String(field), m.term) {
			return true
		}
	}
	return false
}

func (m *Matcher) fields(w *record.Word) []string {
	fields := []string{
		w.Expression,
		w.Reading,
		markup.PlainText(w.Definition),
	}
	if m.scope == ScopeFull {
		fields = append(fields, w.PartOfSpeech, w.Text())
	}
	return fields
}

// Apply returns the words matching q in their original order.
func Apply(words []*record.Word, q *Query) []*record.Word {
	m := q.Compile()

	var matched []*record.Word
	for _, w := range words {
		if m.Match(w) {
			matched = append(matched, w)
		}
	}
	return matched
}
