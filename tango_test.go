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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-tango/filter"
	"github.com/ianlewis/go-tango/internal/testutil"
	"github.com/ianlewis/go-tango/record"
)

func testNotes() []*testutil.Note {
	return []*testutil.Note{
		{
			ID:         "1",
			Expression: "日本語[にほんご]",
			Reading:    "にほんご",
			Definition: "Japanese language",
			Blocks: [][]string{
				testutil.ExampleBlock("日本語は面白い。", "日本語[にほんご]は面白[おもしろ]い。", "日语很有趣。"),
			},
			Tags: []string{"eggrolls-JLPT10k-v3::05-N5"},
		},
		{
			ID:         "2",
			Expression: "コーヒー",
			Reading:    "こーひー",
			Definition: "coffee",
			Tags:       []string{"eggrolls-JLPT10k-v3::04-N4"},
		},
		{
			ID:         "3",
			Expression: "食べる",
			Reading:    "たべる",
			Definition: "to eat",
			Tags:       []string{"eggrolls-JLPT10k-v3::05-N5"},
		},
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *testutil.MakeDeckOptions
	}{
		{
			name: "plain",
		},
		{
			name: "tsv",
			opts: &testutil.MakeDeckOptions{Name: "deck.tsv"},
		},
		{
			name: "gzip",
			opts: &testutil.MakeDeckOptions{Gzip: true},
		},
		{
			name: "dictzip",
			opts: &testutil.MakeDeckOptions{DictZip: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			data := testutil.MakeExport(t, []string{"separator:tab", "html:true"}, testNotes())
			path := testutil.MakeTempDeck(t, t.TempDir(), data, test.opts)

			d, err := Open(path, nil)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			if got, want := d.Path(), path; got != want {
				t.Errorf("Path: got %q, want %q", got, want)
			}
			if got, want := d.Title(), "deck"; got != want {
				t.Errorf("Title: got %q, want %q", got, want)
			}
			if got, want := d.Len(), 3; got != want {
				t.Fatalf("Len: got %d, want %d", got, want)
			}
			if diff := cmp.Diff([]string{"N4", "N5"}, d.Levels()); diff != "" {
				t.Errorf("Levels (-want, +got):\n%s", diff)
			}

			w, ok := d.Word("1")
			if !ok {
				t.Fatal("Word(1): not found")
			}
			if got, want := w.Expression, "日本語"; got != want {
				t.Errorf("Expression: got %q, want %q", got, want)
			}
			if _, ok := d.Word("missing"); ok {
				t.Error("Word(missing): found")
			}
		})
	}
}

func TestOpen_badExtension(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDeck(t, t.TempDir(), "1\t本\n", &testutil.MakeDeckOptions{Name: "deck.csv"})
	_, err := Open(path, nil)
	if !errors.Is(err, ErrExtension) {
		t.Fatalf("Open: got %v, want %v", err, ErrExtension)
	}
}

func TestOpen_missing(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Open: got %v, want %v", err, os.ErrNotExist)
	}
}

func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := testutil.MakeExport(t, nil, testNotes())
	testutil.MakeTempDeck(t, dir, data, &testutil.MakeDeckOptions{Name: "a.txt"})
	testutil.MakeTempDeck(t, dir, data, &testutil.MakeDeckOptions{Name: "b.txt", Gzip: true})
	testutil.MakeTempDeck(t, dir, "#separator:comma\n1,本\n", &testutil.MakeDeckOptions{Name: "bad.txt"})
	testutil.MakeTempDeck(t, dir, "ignored", &testutil.MakeDeckOptions{Name: "notes.md"})

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o700); err != nil {
		t.Fatal(err)
	}
	testutil.MakeTempDeck(t, sub, data, &testutil.MakeDeckOptions{Name: "c.tsv", DictZip: true})

	decks, errs := OpenAll(dir, nil)
	if len(errs) != 1 || !errors.Is(errs[0], ErrSeparator) {
		t.Fatalf("OpenAll errors: got %v, want one %v", errs, ErrSeparator)
	}

	var titles []string
	for _, d := range decks {
		titles = append(titles, d.Title())
		if d.Len() != 3 {
			t.Errorf("deck %q: got %d words, want 3", d.Title(), d.Len())
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, titles); diff != "" {
		t.Errorf("titles (-want, +got):\n%s", diff)
	}
}

func TestNew_header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  []string
		options *Options
		title   string
		levels  []string
		hasTags bool
		errIs   error
	}{
		{
			name:    "no header",
			levels:  []string{"N4", "N5"},
			hasTags: true,
		},
		{
			name:    "deck title and tag column",
			header:  []string{"separator:Tab", "deck:JLPT Core", "tags column:37"},
			title:   "JLPT Core",
			levels:  []string{"N4", "N5"},
			hasTags: true,
		},
		{
			name:   "tag column elsewhere",
			header: []string{"tags column:40"},
		},
		{
			name:    "option overrides header",
			header:  []string{"tags column:40"},
			options: &Options{TagColumn: 36},
			levels:  []string{"N4", "N5"},
			hasTags: true,
		},
		{
			name:    "tags disabled",
			options: &Options{TagColumn: -1},
		},
		{
			name:   "other prefix",
			header: []string{"title:Mine"},
			options: &Options{
				TagPrefix: "other::",
			},
			title:   "Mine",
			hasTags: true,
		},
		{
			name:   "comma separated",
			header: []string{"separator:comma"},
			errIs:  ErrSeparator,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			data := testutil.MakeExport(t, test.header, testNotes())
			d, err := New(strings.NewReader(data), test.options)
			if test.errIs != nil {
				if !errors.Is(err, test.errIs) {
					t.Fatalf("New: got %v, want %v", err, test.errIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			if got := d.Title(); got != test.title {
				t.Errorf("Title: got %q, want %q", got, test.title)
			}
			if diff := cmp.Diff(test.levels, d.Levels()); diff != "" {
				t.Errorf("Levels (-want, +got):\n%s", diff)
			}
			if got := d.Words()[0].Tags != nil; got != test.hasTags {
				t.Errorf("has tags: got %v, want %v", got, test.hasTags)
			}
		})
	}
}

func TestNew_bom(t *testing.T) {
	t.Parallel()

	d, err := New(strings.NewReader("\ufeff#separator:tab\n1\t本\n"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := d.Header().Value("Separator"), "tab"; got != want {
		t.Errorf("separator: got %q, want %q", got, want)
	}
	if got, want := d.Len(), 1; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestDeck_Search(t *testing.T) {
	t.Parallel()

	d, err := New(strings.NewReader(testutil.MakeExport(t, nil, testNotes())), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ids := func(ws []*record.Word) []string {
		var out []string
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}

	if diff := cmp.Diff([]string{"1", "3"}, ids(d.Search(&filter.Query{Level: "N5"}))); diff != "" {
		t.Errorf("Search level (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1"}, ids(d.Search(&filter.Query{Term: "面白", Scope: filter.ScopeFull}))); diff != "" {
		t.Errorf("Search full (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "3"}, ids(d.WordsAtLevel("N5"))); diff != "" {
		t.Errorf("WordsAtLevel (-want, +got):\n%s", diff)
	}
}

func TestParseHeader(t *testing.T) {
	t.Parallel()

	raw := "#separator:tab\r\n#html:true\n# Tags Column : 37 \n#comment without colon\nnote\n#after:notes\n"
	expected := Header{
		"separator":   "tab",
		"html":        "true",
		"tags column": "37",
	}
	h := ParseHeader(raw)
	if diff := cmp.Diff(expected, h); diff != "" {
		t.Fatalf("ParseHeader (-want, +got):\n%s", diff)
	}

	col, ok := h.TagColumn()
	if !ok || col != 36 {
		t.Fatalf("TagColumn: got %d, %v, want 36, true", col, ok)
	}

	for _, v := range []string{"", "1", "x", "-3"} {
		if _, ok := (Header{"tags column": v}).TagColumn(); ok {
			t.Errorf("TagColumn(%q): expected not ok", v)
		}
	}
}
