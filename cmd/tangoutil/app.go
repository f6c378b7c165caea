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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-tango"
	"github.com/ianlewis/go-tango/internal/config"
	"github.com/ianlewis/go-tango/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrTangoutil is a parent error for all command errors.
var ErrTangoutil = errors.New("tangoutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrTangoutil)

// ErrLoad indicates that one or more decks could not be loaded.
var ErrLoad = fmt.Errorf("%w: loading decks", ErrTangoutil)

// ErrNotFound indicates that no word matched.
var ErrNotFound = fmt.Errorf("%w: not found", ErrTangoutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

const (
	metaConfig = "config"
	metaLogger = "logger"
)

func newTangoApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Browse vocabulary decks.",
		Description: strings.Join([]string{
			"Vocabulary deck utility written in Go.",
			"http://github.com/ianlewis/go-tango",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "include decks in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(deckLocations()...),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		HideVersion:     true,
		Before:          setup,
		OnUsageError:    usageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			queryCommand,
			showCommand,
		},
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// setup loads the configuration and builds the logger.
func setup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTangoutil, err)
	}

	level := cfg.Log.Level
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}

	c.App.Metadata = map[string]interface{}{
		metaConfig: cfg,
		metaLogger: logging.New(c.App.ErrWriter, level, cfg.Log.Format),
	}
	return nil
}

func appConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

func appLogger(c *cli.Context) *slog.Logger {
	if log, ok := c.App.Metadata[metaLogger].(*slog.Logger); ok {
		return log
	}
	return slog.New(slog.DiscardHandler)
}

// dataDirs returns the directories to search for decks. Directories given on
// the command line take precedence over the configuration.
func dataDirs(c *cli.Context) []string {
	if !c.IsSet("data-dir") {
		if dirs := appConfig(c).DataDirs; len(dirs) > 0 {
			return dirs
		}
	}
	return c.StringSlice("data-dir")
}

// openDecks opens all decks in the data directories. Directories that do not
// exist are skipped.
func openDecks(c *cli.Context) ([]*tango.Deck, []error) {
	cfg := appConfig(c)
	log := appLogger(c)
	opts := &tango.Options{
		TagColumn: cfg.Deck.TagColumn,
		TagPrefix: cfg.Deck.TagPrefix,
		Logger:    log,
	}

	var decks []*tango.Deck
	var errs []error
	for _, dir := range dataDirs(c) {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			log.Debug("skipping missing data directory", "dir", dir)
			continue
		}
		openDecks, openErrs := tango.OpenAll(dir, opts)
		decks = append(decks, openDecks...)
		errs = append(errs, openErrs...)
	}
	return decks, errs
}

// reportErrors prints load errors and returns ErrLoad if there were any.
func reportErrors(c *cli.Context, errs []error) error {
	for _, err := range errs {
		fmt.Fprintln(c.App.ErrWriter, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %d error(s)", ErrLoad, len(errs))
	}
	return nil
}
