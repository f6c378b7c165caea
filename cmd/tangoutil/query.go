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

package main

import (
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-tango/filter"
	"github.com/ianlewis/go-tango/markup"
	"github.com/ianlewis/go-tango/script"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Search decks",
	ArgsUsage: "[TERM]",
	Description: strings.Join([]string{
		"Search all decks for words matching TERM. Without TERM all words",
		"matching the filters are listed.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "scope",
			Usage:   "search `SCOPE`: word or full",
			Aliases: []string{"s"},
			Value:   "word",
		},
		&cli.StringFlag{
			Name:    "level",
			Usage:   "only words with rank code `LEVEL` (e.g. N3)",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:    "type",
			Usage:   "only words of script `TYPE`: kanji, katakana or hiragana",
			Aliases: []string{"t"},
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: expected at most one TERM", ErrFlagParse)
		}

		scope, err := filter.ParseScope(c.String("scope"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
		kind, err := script.ParseKind(c.String("type"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
		q := &filter.Query{
			Term:  c.Args().First(),
			Scope: scope,
			Level: c.String("level"),
			Kind:  kind,
		}

		decks, errs := openDecks(c)

		tbl := table.New("Deck", "ID", "Expression", "Reading", "Level", "Definition").WithWriter(c.App.Writer)
		for _, d := range decks {
			for _, w := range d.Search(q) {
				tbl.AddRow(d.Title(), w.ID, w.Expression, w.Reading, w.Level, markup.PlainText(w.Definition))
			}
		}
		tbl.Print()

		return reportErrors(c, errs)
	},
}
