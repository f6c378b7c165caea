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

// Package record parses tab-separated vocabulary exports into words.
//
// Each line of an export is one note. Lines starting with '#' are comments
// (Anki writes its export header this way) and are ignored. Fields are
// separated by tabs and addressed by position:
//
//	0       note id
//	1       expression (headword, may carry furigana and markup)
//	2       pitch accent
//	3       part of speech
//	4       reading
//	5       definition
//	6-8     unused
//	9...    example and related word blocks
//	36      space separated tags
//
// Starting at field 9 the line holds a run of blocks with no count prefix.
// A block whose first field is a relation marker ("対" or "関") is a related
// word block of six fields:
//
//	marker, plain text, html text, translation, secondary translation, sound
//
// Any other block is an example sentence block of five fields:
//
//	plain text, html text, translation, secondary translation, sound
//
// Empty fields and sound references between blocks are skipped. Parsing never
// fails: malformed blocks and lines are dropped and the rest of the export is
// still returned.
package record
