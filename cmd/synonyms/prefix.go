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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-synonyms/dictionary"
	"github.com/ianlewis/go-synonyms/internal/folding"
)

func newPrefixCommand() *cli.Command {
	return &cli.Command{
		Name:      "prefix",
		Usage:     "find headwords that are prefixes of text",
		ArgsUsage: "DICT TEXT",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "offset",
				Usage: "start matching at byte `N` of TEXT",
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) (err error) {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: expected a dictionary and text, got %d arguments", ErrFlagParse, c.NArg())
			}

			d, err := dictionary.Open(c.Args().Get(0), nil)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, d.Close())
			}()

			text := []byte(folding.Query(c.Args().Get(1)))
			offset := c.Int("offset")
			if offset < 0 || offset > len(text) {
				return fmt.Errorf("%w: offset %d out of range", ErrFlagParse, offset)
			}

			tbl := table.New("Group", "Length", "Headword").WithWriter(c.App.Writer)
			for id, length := range d.PrefixLookup(text, offset) {
				tbl.AddRow(id, length, string(text[offset:offset+length]))
			}
			tbl.Print()
			return nil
		},
	}
}
