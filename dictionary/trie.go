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
	"iter"

	"github.com/ianlewis/go-synonyms/internal/codec"
	"github.com/ianlewis/go-synonyms/internal/darts"
)

// idTable is a view of the group id table. Entries are addressed by byte
// offset.
type idTable []byte

func (t idTable) get(offset int32) []int32 {
	d := codec.NewDecoder(t, int(offset))
	ids := d.IDs()
	if d.Err() != nil {
		return nil
	}
	return ids
}

// Trie maps headwords to synonym group ids.
type Trie struct {
	da          *darts.DoubleArray
	ids         idTable
	storageSize int
}

// readTrie reads the index section starting at offset.
func readTrie(b []byte, offset int) (*Trie, error) {
	d := codec.NewDecoder(b, offset)
	trieBytes := d.Bytes(int(d.Uint32()))
	idBytes := d.Bytes(int(d.Uint32()))
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading index: %w", ErrNotADictionary, err)
	}

	da, err := darts.New(trieBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: reading index: %w", ErrNotADictionary, err)
	}

	return &Trie{
		da:          da,
		ids:         idTable(idBytes),
		storageSize: d.Offset() - offset,
	}, nil
}

// StorageSize returns the size of the index section in bytes.
func (t *Trie) StorageSize() int {
	return t.storageSize
}

// Lookup returns the group ids of the headword word. It returns nil if
// word is not in the index.
func (t *Trie) Lookup(word []byte) []int32 {
	v, ok := t.da.ExactMatch(word)
	if !ok {
		return nil
	}
	return t.ids.get(v)
}

// PrefixLookup returns every (group id, matched length) pair for the
// headwords that are prefixes of text[offset:], shortest headword first.
// A headword in several groups produces one pair per group.
func (t *Trie) PrefixLookup(text []byte, offset int) iter.Seq2[int32, int] {
	return func(yield func(int32, int) bool) {
		for v, length := range t.da.CommonPrefix(text, offset) {
			for _, id := range t.ids.get(v) {
				if !yield(id, length) {
					return
				}
			}
		}
	}
}
