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

	"github.com/urfave/cli/v2"
)

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "Show a word",
	ArgsUsage: "ID",
	Description: strings.Join([]string{
		"Print the word with the given note ID from every deck that has it.",
	}, "\n"),
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one ID", ErrFlagParse)
		}
		id := c.Args().First()

		decks, errs := openDecks(c)
		found := false
		for _, d := range decks {
			w, ok := d.Word(id)
			if !ok {
				continue
			}
			found = true
			fmt.Fprintf(c.App.Writer, "%s\n\n%s\n", d.Title(), w)
		}

		if err := reportErrors(c, errs); err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return nil
	},
}
