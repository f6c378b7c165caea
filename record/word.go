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

package record

import (
	"strings"

	"github.com/ianlewis/go-tango/markup"
)

// Relation markers found at the start of a related word block.
const (
	// RelationAntonym marks a word with the opposite meaning.
	RelationAntonym = "対"

	// RelationAssociated marks an associated word.
	RelationAssociated = "関"
)

// Word is one vocabulary entry.
type Word struct {
	// ID is the note id taken from the first field. It is used by
	// consumers as a persistence key.
	ID string

	// IDGenerated is true when the line had no id and ID holds a generated
	// placeholder. Generated ids differ between parses and must not be
	// persisted.
	IDGenerated bool

	// Expression is the headword as plain text.
	Expression string

	PitchAccent  string
	PartOfSpeech string
	Reading      string
	Definition   string

	// Examples are the example sentences in export order.
	Examples []Example

	// Related are the related words in export order.
	Related []Related

	// Level is the proficiency rank code (e.g. "N3") or empty when no tag
	// carries one.
	Level string

	// Tags are the raw tags of the note.
	Tags []string
}

// Example is an example sentence. Japanese text keeps furigana as ruby
// markup.
type Example struct {
	JP string
	CN string
}

// Related is a related word.
type Related struct {
	// Type is the relation marker, one of RelationAntonym or
	// RelationAssociated.
	Type string
	JP   string
	CN   string
}

// Text returns the plain text of all examples and related words joined by
// spaces.
func (w *Word) Text() string {
	var parts []string
	for _, e := range w.Examples {
		parts = append(parts, markup.PlainText(e.JP), markup.PlainText(e.CN))
	}
	for _, r := range w.Related {
		parts = append(parts, markup.PlainText(r.JP), markup.PlainText(r.CN))
	}
	return strings.Join(parts, " ")
}

// String returns a plain text rendering of the Word.
func (w *Word) String() string {
	var b strings.Builder

	b.WriteString(w.Expression)
	if w.Reading != "" && w.Reading != w.Expression {
		b.WriteString(" [" + w.Reading + "]")
	}
	if w.PartOfSpeech != "" {
		b.WriteString(" (" + w.PartOfSpeech + ")")
	}
	if w.Level != "" {
		b.WriteString(" " + w.Level)
	}
	b.WriteString("\n")

	if d := markup.PlainText(w.Definition); d != "" {
		b.WriteString(d + "\n")
	}
	for _, e := range w.Examples {
		b.WriteString("  " + markup.PlainText(e.JP) + "\n")
		b.WriteString("    " + markup.PlainText(e.CN) + "\n")
	}
	for _, r := range w.Related {
		b.WriteString("  " + r.Type + " " + markup.PlainText(r.JP) + " " + markup.PlainText(r.CN) + "\n")
	}
	return b.String()
}
