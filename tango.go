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

package tango

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-tango/filter"
	"github.com/ianlewis/go-tango/internal/index"
	"github.com/ianlewis/go-tango/record"
)

var (
	// ErrTango is a parent error for all deck errors.
	ErrTango = errors.New("tango")

	// ErrExtension indicates that a file is not a deck file.
	ErrExtension = fmt.Errorf("%w: bad extension", ErrTango)

	// ErrSeparator indicates an export that is not tab separated.
	ErrSeparator = fmt.Errorf("%w: unsupported separator", ErrTango)
)

// deckExts are the recognized deck file extensions before compression.
var deckExts = []string{".txt", ".tsv"}

// Options are options for loading a deck.
type Options struct {
	// TagColumn is the zero-based tags field. When zero the export's
	// "#tags column" directive is used, falling back to
	// record.DefaultTagColumn. A negative value disables tags and levels.
	TagColumn int

	// TagPrefix is the tag namespace carrying the rank code. Defaults to
	// record.DefaultTagPrefix.
	TagPrefix string

	// Logger is used for load diagnostics. Defaults to discarding output.
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Deck is a parsed vocabulary deck.
type Deck struct {
	path        string
	title       string
	description string
	header      Header

	words  []*record.Word
	ids    *index.Index[*record.Word]
	levels *index.Index[*record.Word]
}

// New reads an export from r and parses it.
func New(r io.Reader, options *Options) (*Deck, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	raw := strings.TrimPrefix(string(b), record.ByteOrderMark)

	h := ParseHeader(raw)
	if !h.tabSeparated() {
		return nil, fmt.Errorf("%w: %q", ErrSeparator, h.Value("separator"))
	}

	log := options.logger()
	recordOpts := &record.Options{
		Logger: log,
	}
	if options != nil {
		recordOpts.TagColumn = options.TagColumn
		recordOpts.TagPrefix = options.TagPrefix
	}
	if recordOpts.TagColumn == 0 {
		if col, ok := h.TagColumn(); ok {
			recordOpts.TagColumn = col
		}
	}

	words := record.Parse(raw, recordOpts)

	d := &Deck{
		title:       h.Value("deck"),
		description: h.Value("description"),
		header:      h,
		words:       words,
		ids: index.New(words, func(w *record.Word) string {
			return w.ID
		}),
		levels: index.New(words, func(w *record.Word) string {
			return w.Level
		}),
	}
	if t := h.Value("title"); t != "" {
		d.title = t
	}

	if dups := d.ids.Duplicates(); len(dups) > 0 {
		log.Warn("deck has duplicate note ids", "ids", dups)
	}

	return d, nil
}

// Open opens the deck file at path. Files ending in .gz or .dz are
// decompressed.
func Open(path string, options *Options) (*Deck, error) {
	base, compressed, ok := splitExt(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExtension, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	d, err := New(r, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	d.path = path
	if d.title == "" {
		d.title = base
	}

	options.logger().Debug("loaded deck",
		"path", path,
		"title", d.title,
		"words", len(d.words),
	)

	return d, nil
}

// OpenAll opens all decks under a directory. This function will return all
// successfully opened decks along with any errors that occurred.
func OpenAll(path string, options *Options) ([]*Deck, []error) {
	var decks []*Deck
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if _, _, ok := splitExt(path); !ok {
			return nil
		}
		d, err := Open(path, options)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		decks = append(decks, d)
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return decks, errs
}

// splitExt returns the file name of path without its deck and compression
// extensions and whether the file is compressed. ok is false if path does
// not have a deck extension.
func splitExt(path string) (base string, compressed, ok bool) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".dz":
		compressed = true
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	ext := filepath.Ext(name)
	for _, e := range deckExts {
		if strings.EqualFold(ext, e) {
			return strings.TrimSuffix(name, ext), compressed, true
		}
	}
	return "", false, false
}

// Title returns the deck title. It is taken from the "#deck" or "#title"
// header directive, or from the file name.
func (d *Deck) Title() string {
	return d.title
}

// Description returns the deck description from the "#description" header
// directive.
func (d *Deck) Description() string {
	return d.description
}

// Path returns the deck file path. It is empty for decks created with New.
func (d *Deck) Path() string {
	return d.path
}

// Header returns the export header directives.
func (d *Deck) Header() Header {
	return d.header
}

// Words returns the deck's words in export order.
func (d *Deck) Words() []*record.Word {
	return d.words
}

// Len returns the number of words in the deck.
func (d *Deck) Len() int {
	return len(d.words)
}

// Word returns the word with the given id. If several notes share the id
// the first one is returned.
func (d *Deck) Word(id string) (*record.Word, bool) {
	return d.ids.First(id)
}

// Levels returns the distinct rank codes used in the deck in sorted order.
func (d *Deck) Levels() []string {
	var levels []string
	for _, l := range d.levels.Keys() {
		if l != "" {
			levels = append(levels, l)
		}
	}
	return levels
}

// WordsAtLevel returns the words with the given rank code in export order.
func (d *Deck) WordsAtLevel(level string) []*record.Word {
	return d.levels.Lookup(level)
}

// Search returns the words matching q in export order.
func (d *Deck) Search(q *filter.Query) []*record.Word {
	return filter.Apply(d.words, q)
}
