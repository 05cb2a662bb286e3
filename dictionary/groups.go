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
	"encoding/binary"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/ianlewis/go-synonyms/internal/codec"
)

// GroupList is a view of the synonym groups of a dictionary. Groups are
// decoded on every call.
type GroupList struct {
	b       []byte
	offsets map[int32]int
}

// readGroupList reads the group offset table starting at offset.
func readGroupList(b []byte, offset int) (*GroupList, error) {
	d := codec.NewDecoder(b, offset)
	n := int(d.Uint32())
	if d.Err() == nil && n > (len(b)-d.Offset())/8 {
		return nil, fmt.Errorf("%w: %d groups do not fit in the file", ErrNotADictionary, n)
	}

	offsets := make(map[int32]int, n)
	for range n {
		id := d.Int32()
		off := int(d.Uint32())
		offsets[id] = off
	}
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading group offsets: %w", ErrNotADictionary, err)
	}

	start := d.Offset()
	for id, off := range offsets {
		if off < start || off >= len(b) {
			return nil, fmt.Errorf("%w: group %d offset %d out of range", ErrNotADictionary, id, off)
		}
	}

	return &GroupList{
		b:       b,
		offsets: offsets,
	}, nil
}

// Len returns the number of groups.
func (l *GroupList) Len() int {
	return len(l.offsets)
}

// IDs returns the group ids in ascending order.
func (l *GroupList) IDs() []int32 {
	return slices.Sorted(maps.Keys(l.offsets))
}

// Get decodes the group with the given id. It returns ErrGroupNotFound if
// the dictionary does not store the group.
func (l *GroupList) Get(id int32) (*SynonymGroup, error) {
	off, ok := l.offsets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrGroupNotFound, id)
	}

	d := codec.NewDecoder(l.b, off)
	n := int(d.Uint16())
	synonyms := make([]*Synonym, 0, n)
	for range n {
		s := &Synonym{}
		s.Headword = d.String()
		s.LexemeIDs = d.ShortArray()
		s.Flags = DecodeFlags(d.Uint16())
		s.Category = d.String()
		if d.Err() != nil {
			break
		}
		synonyms = append(synonyms, s)
	}
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w: group %d: %w", ErrMalformed, id, err)
	}

	return &SynonymGroup{
		ID:       id,
		Synonyms: synonyms,
	}, nil
}

// AppendGroupRecord appends the encoded record of a group with the given
// synonyms to b.
func AppendGroupRecord(b []byte, synonyms []*Synonym) ([]byte, error) {
	if len(synonyms) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d synonyms", codec.ErrTooLong, len(synonyms))
	}
	b = binary.LittleEndian.AppendUint16(b, uint16(len(synonyms)))
	for _, s := range synonyms {
		var err error
		if b, err = codec.AppendString(b, s.Headword); err != nil {
			return nil, fmt.Errorf("headword %q: %w", s.Headword, err)
		}
		if b, err = codec.AppendShortArray(b, s.LexemeIDs); err != nil {
			return nil, fmt.Errorf("lexeme ids of %q: %w", s.Headword, err)
		}
		b = binary.LittleEndian.AppendUint16(b, s.Flags.Encode())
		if b, err = codec.AppendString(b, s.Category); err != nil {
			return nil, fmt.Errorf("category of %q: %w", s.Headword, err)
		}
	}
	return b, nil
}
