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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List decks",
	ArgsUsage: " ",
	Description: strings.Join([]string{
		"List all decks found in the data directories.",
	}, "\n"),
	Action: func(c *cli.Context) error {
		decks, errs := openDecks(c)

		tbl := table.New("Title", "Words", "Levels", "Path").WithWriter(c.App.Writer)
		for _, d := range decks {
			tbl.AddRow(d.Title(), d.Len(), strings.Join(d.Levels(), " "), d.Path())
		}
		tbl.Print()

		return reportErrors(c, errs)
	},
}
