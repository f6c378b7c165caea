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

// Package folding implements text transformers used to normalize vocabulary
// text before it is compared.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// wsState is the position of a WhitespaceFolder relative to the text it has
// seen so far.
type wsState int

const (
	// wsLeading means no non-space rune has been emitted yet.
	wsLeading wsState = iota

	// wsText means the last rune read was not a space.
	wsText

	// wsPending means a run of spaces follows emitted text. A single ASCII
	// space is written once the next non-space rune arrives.
	wsPending
)

// WhitespaceFolder trims leading and trailing whitespace and replaces every
// internal whitespace run with one ASCII space. Ideographic spaces (U+3000)
// and line breaks count as whitespace.
type WhitespaceFolder struct {
	state wsState
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			if w.state == wsText {
				w.state = wsPending
			}
			nSrc += size
			continue
		}

		// The encoded length of r may differ from size when r is
		// utf8.RuneError.
		need := utf8.RuneLen(r)
		if w.state == wsPending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.state == wsPending {
			dst[nDst] = ' '
			nDst++
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.state = wsText
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	w.state = wsLeading
}
