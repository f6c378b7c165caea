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

// Package testutil builds vocabulary export fixtures for tests.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// BlockStart is the first field of the example and related word blocks.
const BlockStart = 9

// TagColumn is the tags field used by MakeLine.
const TagColumn = 36

// Note is a single export line.
type Note struct {
	ID           string
	Expression   string
	PitchAccent  string
	PartOfSpeech string
	Reading      string
	Definition   string

	// Blocks are raw block fields written starting at BlockStart.
	Blocks [][]string

	// Tags are written space separated to TagColumn.
	Tags []string
}

// ExampleBlock returns a five field example sentence block.
func ExampleBlock(plain, html, cn string) []string {
	return []string{plain, html, cn, "", "[sound:" + plain + ".mp3]"}
}

// RelatedBlock returns a six field related word block.
func RelatedBlock(marker, plain, html, cn string) []string {
	return []string{marker, plain, html, cn, "", "[sound:" + plain + ".mp3]"}
}

// MakeLine returns the export line for n.
func MakeLine(t *testing.T, n *Note) string {
	t.Helper()

	fields := make([]string, BlockStart)
	fields[0] = n.ID
	fields[1] = n.Expression
	fields[2] = n.PitchAccent
	fields[3] = n.PartOfSpeech
	fields[4] = n.Reading
	fields[5] = n.Definition

	for _, b := range n.Blocks {
		fields = append(fields, b...)
	}

	if len(n.Tags) > 0 {
		if len(fields) > TagColumn {
			t.Fatalf("note %q: %d block fields overlap the tag column", n.ID, len(fields)-BlockStart)
		}
		for len(fields) <= TagColumn {
			fields = append(fields, "")
		}
		fields[TagColumn] = strings.Join(n.Tags, " ")
	}

	return strings.Join(fields, "\t")
}

// MakeExport returns an export with the given header lines followed by one
// line per note. Header lines are written as "#" + line.
func MakeExport(t *testing.T, header []string, notes []*Note) string {
	t.Helper()

	var lines []string
	for _, h := range header {
		lines = append(lines, "#"+h)
	}
	for _, n := range notes {
		lines = append(lines, MakeLine(t, n))
	}
	return strings.Join(lines, "\n") + "\n"
}

// MakeDeckOptions are options for MakeTempDeck.
type MakeDeckOptions struct {
	// Name is the file name without the compression extension. Defaults to
	// "deck.txt".
	Name string

	// Gzip compresses the file with gzip and appends ".gz".
	Gzip bool

	// DictZip compresses the file with dictzip and appends ".dz".
	DictZip bool
}

// MakeTempDeck writes data to a deck file in dir and returns its path.
func MakeTempDeck(t *testing.T, dir, data string, opts *MakeDeckOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDeckOptions{}
	}

	name := opts.Name
	if name == "" {
		name = "deck.txt"
	}
	switch {
	case opts.Gzip:
		name += ".gz"
	case opts.DictZip:
		name += ".dz"
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(data); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
