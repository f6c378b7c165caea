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

// Package markup cleans the inline markup found in vocabulary export fields.
//
// Export fields may contain Anki audio references ("[sound:file.mp3]"),
// furigana written as "漢字[かんじ]", and HTML fragments. Example and related
// word text keeps its furigana as <ruby> markup so it can be rendered as rich
// text. Headwords are always flattened to plain text.
package markup

import (
	"regexp"
	"strings"

	"github.com/k3a/html2text"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-tango/internal/folding"
)

var (
	soundRE    = regexp.MustCompile(`\[sound:.*?\]`)
	furiganaRE = regexp.MustCompile(`([\x{4E00}-\x{9FAF}]+)\[(.+?)\]`)
	rubyTagRE  = regexp.MustCompile(`</?ruby.*?>`)
	rubyTextRE = regexp.MustCompile(`<rt>.*?</rt>`)
	rubyParRE  = regexp.MustCompile(`<rp>.*?</rp>`)
	tagRE      = regexp.MustCompile(`<[^>]+>`)
)

// SoundPrefix is the prefix of an Anki audio reference.
const SoundPrefix = "[sound:"

// IsSound reports whether s starts with an audio reference.
func IsSound(s string) bool {
	return strings.HasPrefix(s, SoundPrefix)
}

// StripSound removes every audio reference from s.
func StripSound(s string) string {
	return soundRE.ReplaceAllString(s, "")
}

// Ruby rewrites furigana of the form "漢字[かんじ]" into
// "<ruby>漢字<rt>かんじ</rt></ruby>". Only runs of CJK unified ideographs
// are treated as ruby base text.
func Ruby(s string) string {
	return furiganaRE.ReplaceAllString(s, "<ruby>${1}<rt>${2}</rt></ruby>")
}

// Clean removes audio references from s, converts furigana to ruby markup
// and trims surrounding whitespace. Any other markup is left untouched.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(Ruby(StripSound(s)))
}

// Expression flattens a headword to plain text. Audio references, ruby
// markup (including the ruby text), furigana readings and any other tags are
// removed.
func Expression(s string) string {
	if s == "" {
		return ""
	}
	s = StripSound(s)
	s = rubyTagRE.ReplaceAllString(s, "")
	s = rubyTextRE.ReplaceAllString(s, "")
	s = furiganaRE.ReplaceAllString(s, "${1}")
	s = tagRE.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// PlainText renders cleaned field text as a single line of plain text.
// Ruby annotations are reduced to their base text, HTML entities are decoded
// and whitespace runs are folded to a single space.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	s = StripSound(s)
	s = rubyTextRE.ReplaceAllString(s, "")
	s = rubyParRE.ReplaceAllString(s, "")
	s = furiganaRE.ReplaceAllString(s, "${1}")
	s = html2text.HTML2TextWithOptions(s, html2text.WithUnixLineBreaks())

	folded, _, err := transform.String(&folding.WhitespaceFolder{}, s)
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return folded
}
