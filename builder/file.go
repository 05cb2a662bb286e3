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

package builder

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// openSource opens a synonym table. Tables ending in .dz are read with
// dictzip and tables ending in .gz with gzip.
func openSource(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &multiCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &multiCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	default:
		return f, nil
	}
}

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// BuildFile compiles the synonym table at input into a dictionary written
// to output. The output file is removed if the build fails.
func BuildFile(input, output string, opts *Options) (err error) {
	b := New(opts)

	r, err := openSource(input)
	if err != nil {
		return err
	}
	defer r.Close()

	b.l.Info("reading the synonym table", "file", input)
	if err := b.Parse(r, input); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %q: %w", output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", output, cerr)
		}
		if err != nil {
			_ = os.Remove(output)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("writing %q: %w", output, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %q: %w", output, err)
	}
	return nil
}
