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

// Package testutil provides synonym table and dictionary fixtures for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-synonyms/builder"
	"github.com/ianlewis/go-synonyms/dictionary"
)

// CreateTime is the creation time of dictionaries made by MakeDict.
var CreateTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// TableOptions are options for WriteTable.
type TableOptions struct {
	// Ext is an optional file extension for the table. Defaults to '.csv.dz'
	// if DictZip is true. Otherwise '.csv'.
	Ext string

	// DictZip indicates that the table should be compressed with DictZip.
	DictZip bool
}

func (o *TableOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".csv.dz"
		}
	}
	return ".csv"
}

// WriteTable writes a synonym table to a temporary file and returns its
// path.
func WriteTable(t *testing.T, table string, opts *TableOptions) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "synonyms.*"+opts.GetExt())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if opts != nil && opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(table)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	} else if _, err := f.WriteString(table); err != nil {
		t.Fatal(err)
	}

	return f.Name()
}

// MakeDict compiles a synonym table and returns the encoded dictionary.
func MakeDict(t *testing.T, table, description string) []byte {
	t.Helper()

	b := builder.New(&builder.Options{
		Description: description,
		Now:         func() time.Time { return CreateTime },
	})
	if err := b.Parse(strings.NewReader(table), "test"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// MakeTempDict compiles a synonym table into a temporary dictionary file
// and returns its path.
func MakeTempDict(t *testing.T, table string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "synonyms.dic")
	if err := os.WriteFile(path, MakeDict(t, table, ""), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// OpenDict compiles a synonym table and opens it. The dictionary is closed
// when the test ends.
func OpenDict(t *testing.T, table string, enableTrie bool) *dictionary.Dictionary {
	t.Helper()

	d, err := dictionary.Open(MakeTempDict(t, table), &dictionary.Options{
		EnableTrie: enableTrie,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Error(err)
		}
	})
	return d
}
