// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-synonyms"
	"github.com/ianlewis/go-synonyms/config"
	"github.com/ianlewis/go-synonyms/internal/folding"
)

// dictionaryFlag adds the dictionaries named on the command line to a shared
// list, keeping the order of the arguments across flags.
type dictionaryFlag struct {
	dicts      *[]config.DictionaryConfig
	enableTrie bool
}

// Set implements flag.Value.
func (f *dictionaryFlag) Set(path string) error {
	*f.dicts = append(*f.dicts, config.DictionaryConfig{
		Path:       path,
		EnableTrie: f.enableTrie,
	})
	return nil
}

// String implements flag.Value.
func (f *dictionaryFlag) String() string {
	return ""
}

func newFindCommand() *cli.Command {
	// Dictionaries given later on the command line take precedence.
	var dicts []config.DictionaryConfig
	return &cli.Command{
		Name:      "find",
		Usage:     "find synonyms of words",
		ArgsUsage: "[FILE]...",
		Description: "Reads one query per line from each FILE, or standard input. A query is\n" +
			"a word optionally followed by a tab and comma separated synonym group\n" +
			"ids. Prints the word, a tab and its synonyms.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "load configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.GenericFlag{
				Name:    "system",
				Usage:   "add the system dictionary `DICT` which uses query group ids",
				Aliases: []string{"s"},
				Value:   &dictionaryFlag{dicts: &dicts},
			},
			&cli.GenericFlag{
				Name:    "user",
				Usage:   "add the user dictionary `DICT` which looks up words in its index",
				Aliases: []string{"u"},
				Value:   &dictionaryFlag{dicts: &dicts, enableTrie: true},
			},
			&cli.BoolFlag{
				Name:               "verbs",
				Usage:              "include synonyms that are not nouns",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "force",
				Usage:              "skip queries that fail instead of exiting",
				Aliases:            []string{"f"},
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write results to `FILE`",
				Aliases: []string{"o"},
			},
			&cli.StringFlag{
				Name:  "delimiter",
				Usage: "separate synonyms with `TEXT`",
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			return runFind(c, dicts)
		},
	}
}

// loadConfig returns the catalog configuration for the find command. dicts
// are added after the configured dictionaries.
func loadConfig(c *cli.Context, dicts []config.DictionaryConfig) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	} else if len(dicts) == 0 {
		for _, path := range configLocations() {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			var err error
			if cfg, err = config.Load(path); err != nil {
				return nil, err
			}
			break
		}
	}

	cfg.Dictionaries = append(cfg.Dictionaries, dicts...)
	if c.Bool("verbs") {
		cfg.EnableVerbs = true
	}
	if c.IsSet("delimiter") {
		cfg.SynonymDelimiter = c.String("delimiter")
	}
	return cfg, nil
}

// parseQuery parses a query line. Group ids are nil when the line has none.
func parseQuery(line string) (string, []int32, error) {
	word, hints, found := strings.Cut(line, "\t")
	word = folding.Query(word)
	if !found {
		return word, nil, nil
	}

	ids := []int32{}
	for _, f := range strings.Split(hints, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return "", nil, fmt.Errorf("%w: group id %q", ErrQuery, f)
		}
		ids = append(ids, int32(id))
	}
	return word, ids, nil
}

func runFind(c *cli.Context, dicts []config.DictionaryConfig) (err error) {
	cfg, err := loadConfig(c, dicts)
	if err != nil {
		return err
	}

	cat, err := synonyms.OpenConfig(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, cat.Close())
	}()

	out := c.App.Writer
	if path := c.String("output"); path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("creating %q: %w", path, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("closing %q: %w", path, closeErr))
			}
		}()
		out = f
	}
	w := bufio.NewWriter(out)

	q := &querier{
		cat:       cat,
		delimiter: cfg.SynonymDelimiter,
		force:     c.Bool("force"),
		l:         newLogger(c, "find"),
		w:         w,
	}

	if c.NArg() == 0 {
		if err := q.run(c.App.Reader, "-"); err != nil {
			return err
		}
	}
	for _, path := range c.Args().Slice() {
		if err := q.runFile(path); err != nil {
			return err
		}
	}
	return w.Flush()
}

type querier struct {
	cat       *synonyms.Catalog
	delimiter string
	force     bool
	l         *log.Logger
	w         io.Writer
}

func (q *querier) runFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()
	return q.run(f, path)
}

func (q *querier) run(r io.Reader, name string) error {
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		if err := q.query(s.Text()); err != nil {
			if !q.force {
				return fmt.Errorf("%s:%d: %w", name, lineno, err)
			}
			q.l.Warn("skipping query", "file", name, "line", lineno, "err", err)
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func (q *querier) query(line string) error {
	word, ids, err := parseQuery(line)
	if err != nil {
		return err
	}
	if word == "" {
		return nil
	}

	syns, err := q.cat.FindWithGroupIDs(word, ids)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(q.w, "%s\t%s\n", word, strings.Join(syns, q.delimiter))
	return err
}
