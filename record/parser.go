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
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ianlewis/go-tango/markup"
)

const (
	// CommentPrefix starts a comment line.
	CommentPrefix = "#"

	// ByteOrderMark is removed from the start of the input.
	ByteOrderMark = "\ufeff"
)

// Fixed field positions.
const (
	idField = iota
	expressionField
	pitchAccentField
	partOfSpeechField
	readingField
	definitionField
)

// Options are options for parsing an export.
type Options struct {
	// TagColumn is the zero-based index of the tags field. Zero selects
	// DefaultTagColumn. A negative value disables tag and level extraction.
	TagColumn int

	// TagPrefix is the tag namespace searched for the rank code.
	TagPrefix string

	// Logger receives a warning for every word that required a generated id.
	Logger *slog.Logger

	// NewID returns a placeholder id for lines without one.
	NewID func() string
}

// DefaultOptions is the default options for Parse.
var DefaultOptions = &Options{
	TagColumn: DefaultTagColumn,
	TagPrefix: DefaultTagPrefix,
	Logger:    slog.New(slog.DiscardHandler),
	NewID: func() string {
		return "id-" + uuid.NewString()
	},
}

type parser struct {
	tagColumn int
	tagPrefix string
	log       *slog.Logger
	newID     func() string
}

func newParser(options *Options) *parser {
	if options == nil {
		options = DefaultOptions
	}

	p := &parser{
		tagColumn: DefaultOptions.TagColumn,
		tagPrefix: DefaultOptions.TagPrefix,
		log:       DefaultOptions.Logger,
		newID:     DefaultOptions.NewID,
	}
	if options.TagColumn != 0 {
		p.tagColumn = options.TagColumn
	}
	if options.TagPrefix != "" {
		p.tagPrefix = options.TagPrefix
	}
	if options.Logger != nil {
		p.log = options.Logger
	}
	if options.NewID != nil {
		p.newID = options.NewID
	}
	return p
}

// Parse parses the export text in raw and returns its words in export order.
// A leading byte order mark is ignored. Comment lines and lines without an
// expression are skipped. Parse returns
// nil for empty input.
func Parse(raw string, options *Options) []*Word {
	p := newParser(options)

	raw = strings.TrimPrefix(raw, ByteOrderMark)

	// Tabs separate fields so a leading or trailing tab is significant.
	raw = strings.TrimFunc(raw, func(r rune) bool {
		return r != '\t' && unicode.IsSpace(r)
	})
	if raw == "" {
		return nil
	}

	var words []*Word
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		if w := p.parseLine(line, i+1); w != nil {
			words = append(words, w)
		}
	}
	return words
}

// parseLine parses a single note. It returns nil if the note has no
// expression.
func (p *parser) parseLine(line string, lineNum int) *Word {
	fields := strings.Split(line, "\t")
	c := newCursor(fields, 0)

	w := &Word{
		ID:           c.peek(idField),
		Expression:   markup.Expression(c.peek(expressionField)),
		PitchAccent:  c.peek(pitchAccentField),
		PartOfSpeech: c.peek(partOfSpeechField),
		Reading:      c.peek(readingField),
		Definition:   c.peek(definitionField),
	}
	if w.Expression == "" {
		return nil
	}

	scanBlocks(newCursor(fields, blockStart), w)

	if p.tagColumn > 0 {
		w.Tags = parseTags(c.peek(p.tagColumn))
		w.Level = Level(w.Tags, p.tagPrefix)
	}

	if w.ID == "" {
		w.ID = p.newID()
		w.IDGenerated = true
		if w.ID == "" {
			return nil
		}
		p.log.Warn("note has no id, using a generated id",
			"line", lineNum,
			"expression", w.Expression,
			"id", w.ID,
		)
	}

	return w
}
