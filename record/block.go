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
	"github.com/ianlewis/go-tango/markup"
)

// blockStart is the index of the first field that may start a block.
const blockStart = 9

// block describes a fixed-width run of fields.
type block struct {
	width int

	// read reads the block at the cursor position into w. It reports whether
	// the block had the expected shape.
	read func(c *cursor, w *Word) bool
}

// relatedBlock is a related word block:
// marker, plain, html, translation, secondary translation, sound.
var relatedBlock = &block{
	width: 6,
	read: func(c *cursor, w *Word) bool {
		jp, cn := c.peek(2), c.peek(3)
		if jp == "" || cn == "" {
			return false
		}
		w.Related = append(w.Related, Related{
			Type: c.peek(0),
			JP:   markup.Clean(jp),
			CN:   markup.Clean(cn),
		})
		return true
	},
}

// exampleBlock is an example sentence block:
// plain, html, translation, secondary translation, sound.
var exampleBlock = &block{
	width: 5,
	read: func(c *cursor, w *Word) bool {
		jp, cn := c.peek(1), c.peek(2)
		if jp == "" || cn == "" {
			return false
		}
		w.Examples = append(w.Examples, Example{
			JP: markup.Clean(jp),
			CN: markup.Clean(cn),
		})
		return true
	},
}

// markerBlocks maps a block's first field to its block type. Marked blocks
// always consume their full width, even when malformed.
var markerBlocks = map[string]*block{
	RelationAntonym:    relatedBlock,
	RelationAssociated: relatedBlock,
}

// scanBlocks reads the example and related word blocks of a line into w.
// Every field is visited at most once.
func scanBlocks(c *cursor, w *Word) {
	for !c.done() {
		head := c.peek(0)
		if head == "" || markup.IsSound(head) {
			c.advance(1)
			continue
		}

		if b, ok := markerBlocks[head]; ok {
			b.read(c, w)
			c.advance(b.width)
			continue
		}

		if exampleBlock.read(c, w) {
			c.advance(exampleBlock.width)
			continue
		}

		// Unrecognized trailing data.
		c.advance(1)
	}
}
