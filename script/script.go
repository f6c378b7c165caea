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

// Package script classifies headwords by the Japanese script they are
// written in.
package script

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	// Kanji is the CJK unified ideograph block U+4E00..U+9FAF.
	Kanji = rangetable.New(span(0x4E00, 0x9FAF)...)

	// Katakana is the katakana block U+30A0..U+30FF. It includes the
	// middle dot (U+30FB) and the prolonged sound mark (U+30FC).
	Katakana = rangetable.New(span(0x30A0, 0x30FF)...)

	// Hiragana is the hiragana block U+3040..U+309F.
	Hiragana = rangetable.New(span(0x3040, 0x309F)...)
)

func span(lo, hi rune) []rune {
	runes := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	return runes
}

// HasKanji reports whether s contains at least one kanji.
func HasKanji(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.Is(Kanji, r)
	}) >= 0
}

// IsKatakana reports whether s is non-empty and written entirely in
// katakana.
func IsKatakana(s string) bool {
	return only(s, Katakana)
}

// IsHiragana reports whether s is non-empty and written entirely in
// hiragana.
func IsHiragana(s string) bool {
	return only(s, Hiragana)
}

func only(s string, table *unicode.RangeTable) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.Is(table, r) {
			return false
		}
	}
	return true
}

// Kind selects headwords by script.
type Kind int

const (
	// All matches every headword.
	All Kind = iota

	// KanjiKind matches headwords containing at least one kanji.
	KanjiKind

	// KatakanaKind matches headwords written only in katakana.
	KatakanaKind

	// HiraganaKind matches headwords written only in hiragana.
	HiraganaKind
)

var kindNames = []string{"all", "kanji", "katakana", "hiragana"}

// ParseKind parses a kind name. The empty string is [All].
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return All, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return All, fmt.Errorf("unknown script kind %q", name)
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Match reports whether the headword expression belongs to the kind.
func (k Kind) Match(expression string) bool {
	switch k {
	case KanjiKind:
		return HasKanji(expression)
	case KatakanaKind:
		return IsKatakana(expression)
	case HiraganaKind:
		return IsHiragana(expression)
	default:
		return true
	}
}
