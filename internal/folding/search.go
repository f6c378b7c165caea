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

package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Search returns a transformer that folds text for substring search. It
// folds full-width and half-width forms to their canonical width, applies
// Unicode case folding and folds whitespace.
func Search() transform.Transformer {
	return transform.Chain(width.Fold, cases.Fold(), &WhitespaceFolder{})
}

// String folds s with a new [Search] transformer.
func String(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(Search(), s)
	if err != nil {
		return s
	}
	return folded
}
