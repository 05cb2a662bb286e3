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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-synonyms/dictionary"
)

func newGroupCommand() *cli.Command {
	return &cli.Command{
		Name:         "group",
		Usage:        "print synonym groups",
		ArgsUsage:    "DICT [ID]...",
		Description:  "Prints the groups with the given ids, or every group if none are given.",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) (err error) {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: no dictionary", ErrFlagParse)
			}

			args := c.Args().Slice()
			f, err := dictionary.OpenFile(args[0])
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, f.Close())
			}()

			ids, err := parseGroupIDs(args[1:])
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				ids = f.Groups().IDs()
			}

			l := newLogger(c, "group")
			tbl := table.New("Group", "Headword", "Lexemes", "Noun", "Ambiguous", "Form", "Acronym", "Variant", "Category").
				WithWriter(c.App.Writer)
			for _, id := range ids {
				g, err := f.Groups().Get(id)
				if err != nil {
					return err
				}
				for _, s := range g.Synonyms {
					if !s.Flags.Valid() {
						l.Warn("invalid synonym flags", "group", g.ID, "headword", s.Headword)
					}
					tbl.AddRow(
						g.ID,
						s.Headword,
						formatLexemeIDs(s.LexemeIDs),
						s.Flags.Noun,
						s.Flags.Ambiguous,
						s.Flags.Form,
						s.Flags.Acronym,
						s.Flags.Variant,
						s.Category,
					)
				}
			}
			tbl.Print()
			return nil
		},
	}
}

func parseGroupIDs(args []string) ([]int32, error) {
	ids := make([]int32, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: group id %q", ErrFlagParse, a)
		}
		ids = append(ids, int32(id))
	}
	return ids, nil
}

func formatLexemeIDs(ids []uint16) string {
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, strconv.Itoa(int(id)))
	}
	return strings.Join(s, "/")
}
