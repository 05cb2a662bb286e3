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
	"iter"
)

// Options are options for opening a Dictionary.
type Options struct {
	// EnableTrie enables headword lookups in the dictionary's index. When
	// false, group ids supplied by the caller are used as they are.
	EnableTrie bool
}

// DefaultOptions are the default options used by Open when opts is nil.
var DefaultOptions = &Options{
	EnableTrie: true,
}

// Dictionary is a synonym dictionary.
type Dictionary struct {
	file       *File
	enableTrie bool
}

// Open opens the synonym dictionary at path.
func Open(path string, opts *Options) (*Dictionary, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return New(f, opts), nil
}

// New returns a Dictionary backed by f. The Dictionary takes ownership of
// f.
func New(f *File, opts *Options) *Dictionary {
	if opts == nil {
		opts = DefaultOptions
	}
	return &Dictionary{
		file:       f,
		enableTrie: opts.EnableTrie,
	}
}

// Lookup returns the ids of the synonym groups containing word.
//
// If the index is disabled and groupIDs is not nil, groupIDs is returned as
// is. Otherwise word is looked up in the index and groupIDs is ignored.
func (d *Dictionary) Lookup(word string, groupIDs []int32) []int32 {
	if !d.enableTrie && groupIDs != nil {
		return groupIDs
	}
	return d.file.trie.Lookup([]byte(word))
}

// PrefixLookup returns the (group id, length) pairs for every headword that
// is a prefix of text[offset:], shortest first.
func (d *Dictionary) PrefixLookup(text []byte, offset int) iter.Seq2[int32, int] {
	return d.file.trie.PrefixLookup(text, offset)
}

// SynonymGroup returns the synonym group with the given id. It returns an
// error wrapping ErrGroupNotFound if the dictionary does not store it.
func (d *Dictionary) SynonymGroup(id int32) (*SynonymGroup, error) {
	return d.file.groups.Get(id)
}

// GroupIDs returns the ids of every group in the dictionary in ascending
// order.
func (d *Dictionary) GroupIDs() []int32 {
	return d.file.groups.IDs()
}

// Header returns the dictionary header.
func (d *Dictionary) Header() *Header {
	return d.file.header
}

// Close closes the dictionary file.
func (d *Dictionary) Close() error {
	return d.file.Close()
}
