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
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ianlewis/go-synonyms/dictionary"
)

func newInfoCommand() *cli.Command {
	return &cli.Command{
		Name:         "info",
		Usage:        "print dictionary headers",
		ArgsUsage:    "DICT...",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: no dictionaries", ErrFlagParse)
			}

			p := message.NewPrinter(language.English)
			tbl := table.New("Dictionary", "Created", "Groups", "Size", "Description").WithWriter(c.App.Writer)

			var errs []error
			for _, path := range c.Args().Slice() {
				f, err := dictionary.OpenFile(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				h := f.Header()
				tbl.AddRow(
					path,
					h.Time().UTC().Format(time.RFC3339),
					p.Sprintf("%d", f.Groups().Len()),
					p.Sprintf("%d", f.Size()),
					h.Description,
				)
				errs = append(errs, f.Close())
			}
			tbl.Print()

			return errors.Join(errs...)
		},
	}
}
