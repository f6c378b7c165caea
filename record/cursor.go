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

// cursor walks the fields of a single line.
type cursor struct {
	fields []string
	pos    int
}

func newCursor(fields []string, start int) *cursor {
	return &cursor{
		fields: fields,
		pos:    start,
	}
}

// done reports whether the cursor has moved past the last field.
func (c *cursor) done() bool {
	return c.pos >= len(c.fields)
}

// peek returns the field at offset off from the current position. Fields
// outside the line are returned as the empty string.
func (c *cursor) peek(off int) string {
	i := c.pos + off
	if i < 0 || i >= len(c.fields) {
		return ""
	}
	return c.fields[i]
}

// advance moves the cursor forward n fields.
func (c *cursor) advance(n int) {
	if n < 1 {
		n = 1
	}
	c.pos += n
}
