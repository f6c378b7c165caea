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
	"strconv"
	"strings"

	"github.com/ianlewis/go-tango/record"
)

// Header holds the "#key:value" directives at the top of an export. Keys
// are lower case.
type Header map[string]string

// ParseHeader reads the header directives from the leading comment lines of
// raw. Reading stops at the first line that is not a comment.
func ParseHeader(raw string) Header {
	h := Header{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		rest, ok := strings.CutPrefix(line, record.CommentPrefix)
		if !ok {
			break
		}
		key, value, ok := strings.Cut(rest, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		h[key] = strings.TrimSpace(value)
	}
	return h
}

// Value returns the value for key.
func (h Header) Value(key string) string {
	return h[strings.ToLower(key)]
}

// TagColumn returns the zero-based tags field declared by the
// "#tags column:N" directive. N is one-based.
func (h Header) TagColumn() (int, bool) {
	v := h.Value("tags column")
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	// Column one holds the note id.
	if err != nil || n < 2 {
		return 0, false
	}
	return n - 1, true
}

// tabSeparated reports whether the separator directive is a tab or absent.
func (h Header) tabSeparated() bool {
	switch strings.ToLower(h.Value("separator")) {
	case "", "tab", "\t":
		return true
	default:
		return false
	}
}
