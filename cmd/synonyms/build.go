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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-synonyms/builder"
)

func newBuildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "compile a synonym table into a dictionary",
		ArgsUsage: "INPUT",
		Description: "Compiles the comma separated synonym table INPUT. Tables ending in\n" +
			".dz are read with dictzip and tables ending in .gz with gzip.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Usage:    "write the dictionary to `FILE`",
				Aliases:  []string{"o"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "description",
				Usage:   "store `TEXT` in the dictionary header",
				Aliases: []string{"d"},
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected one input table, got %d", ErrFlagParse, c.NArg())
			}

			return builder.BuildFile(c.Args().First(), c.String("output"), &builder.Options{
				Description: c.String("description"),
				Logger:      newLogger(c, "build"),
			})
		},
	}
}
