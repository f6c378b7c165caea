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

package script

import (
	"testing"
)

func TestKind_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expression string
		kanji      bool
		katakana   bool
		hiragana   bool
	}{
		{expression: "日本語", kanji: true},
		{expression: "食べる", kanji: true},
		{expression: "コーヒー", katakana: true},
		{expression: "ボールペン・インク", katakana: true},
		{expression: "ひらがな", hiragana: true},
		{expression: "ゝ", hiragana: true},
		{expression: "テレビを見る", kanji: true},
		{expression: "かタ"},
		{expression: "abc"},
		{expression: ""},
	}

	for _, test := range tests {
		t.Run(test.expression, func(t *testing.T) {
			t.Parallel()

			if got := KanjiKind.Match(test.expression); got != test.kanji {
				t.Errorf("KanjiKind.Match(%q) = %v, want %v", test.expression, got, test.kanji)
			}
			if got := KatakanaKind.Match(test.expression); got != test.katakana {
				t.Errorf("KatakanaKind.Match(%q) = %v, want %v", test.expression, got, test.katakana)
			}
			if got := HiraganaKind.Match(test.expression); got != test.hiragana {
				t.Errorf("HiraganaKind.Match(%q) = %v, want %v", test.expression, got, test.hiragana)
			}
			if !All.Match(test.expression) {
				t.Errorf("All.Match(%q) = false", test.expression)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected Kind
		err      bool
	}{
		{name: "", expected: All},
		{name: "all", expected: All},
		{name: "Kanji", expected: KanjiKind},
		{name: " katakana ", expected: KatakanaKind},
		{name: "hiragana", expected: HiraganaKind},
		{name: "romaji", err: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			k, err := ParseKind(test.name)
			if test.err {
				if err == nil {
					t.Fatalf("ParseKind(%q): expected error", test.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q): %v", test.name, err)
			}
			if k != test.expected {
				t.Fatalf("ParseKind(%q) = %v, want %v", test.name, k, test.expected)
			}
		})
	}
}
