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

// Package tango loads vocabulary decks exported as tab separated text.
//
// A deck file is an Anki "Notes in Plain Text" export. It may start with
// header lines such as:
//
//	#separator:tab
//	#html:true
//	#tags column:37
//
// followed by one note per line. The notes are parsed with the record
// package. Deck files can be stored as plain text or compressed with gzip or
// dictzip.
package tango
