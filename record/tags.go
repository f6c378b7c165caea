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
	"regexp"
	"strings"
)

const (
	// DefaultTagColumn is the zero-based index of the tags field.
	DefaultTagColumn = 36

	// DefaultTagPrefix is the tag namespace that carries the rank code.
	DefaultTagPrefix = "eggrolls-JLPT10k-v3::"
)

var (
	rankCodeRE = regexp.MustCompile(`^N\d`)
	orderRE    = regexp.MustCompile(`^[0-9]+-`)
)

// IsRankCode reports whether s looks like a rank code: an 'N' followed by a
// digit and an optional suffix.
func IsRankCode(s string) bool {
	return rankCodeRE.MatchString(s)
}

// parseTags splits a tags field on whitespace.
func parseTags(field string) []string {
	tags := strings.Fields(field)
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Level returns the first rank code found in the tags under the namespace
// prefix. Each "::" separated segment of a matching tag may carry a numeric
// ordering prefix such as "02-" which is removed before matching. Level
// returns the empty string if no segment is a rank code.
func Level(tags []string, prefix string) string {
	for _, tag := range tags {
		rest, ok := strings.CutPrefix(tag, prefix)
		if !ok {
			continue
		}
		for _, seg := range strings.Split(rest, "::") {
			if seg == "" {
				continue
			}
			seg = orderRE.ReplaceAllString(seg, "")
			if IsRankCode(seg) {
				return seg
			}
		}
	}
	return ""
}
