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

package dictionary

import (
	"fmt"

	"github.com/ianlewis/go-synonyms/internal/mmap"
)

// File is an opened dictionary file. The header, index and groups are views
// of the file's bytes.
type File struct {
	m      *mmap.Mapping
	data   []byte
	header *Header
	trie   *Trie
	groups *GroupList
}

// OpenFile maps the dictionary file at path read-only and parses its
// sections.
func OpenFile(path string) (*File, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrIO, path, err)
	}

	f, err := NewFile(m.Bytes())
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	f.m = m
	return f, nil
}

// NewFile parses a dictionary held in b. The caller retains ownership of b
// and it must not be modified while the File is in use.
func NewFile(b []byte) (*File, error) {
	h, off, err := ReadHeader(b)
	if err != nil {
		return nil, err
	}

	trie, err := readTrie(b, off)
	if err != nil {
		return nil, err
	}
	off += trie.StorageSize()

	groups, err := readGroupList(b, off)
	if err != nil {
		return nil, err
	}

	return &File{
		data:   b,
		header: h,
		trie:   trie,
		groups: groups,
	}, nil
}

// Header returns the dictionary header.
func (f *File) Header() *Header {
	return f.header
}

// Trie returns the headword index.
func (f *File) Trie() *Trie {
	return f.trie
}

// Groups returns the synonym groups.
func (f *File) Groups() *GroupList {
	return f.groups
}

// Size returns the size of the dictionary in bytes.
func (f *File) Size() int {
	return len(f.data)
}

// Close releases the file mapping. It is safe to call Close more than once.
func (f *File) Close() error {
	if f.m == nil {
		return nil
	}
	if err := f.m.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
