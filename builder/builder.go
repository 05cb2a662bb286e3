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

// Package builder compiles textual synonym tables into synonym dictionaries.
package builder

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/emirpasic/gods/trees/redblacktree"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ianlewis/go-synonyms/dictionary"
	"github.com/ianlewis/go-synonyms/internal/codec"
	"github.com/ianlewis/go-synonyms/internal/darts"
	"github.com/ianlewis/go-synonyms/internal/logger"
)

// maxLineSize is the longest source line accepted.
const maxLineSize = 1024 * 1024

// Options are options for a Builder.
type Options struct {
	// Description is stored in the dictionary header.
	Description string

	// Logger receives progress messages. Messages are dropped if nil.
	Logger *log.Logger

	// Now returns the creation time stored in the header. Defaults to
	// time.Now.
	Now func() time.Time
}

// group is a block of records sharing a group id.
type group struct {
	id       int32
	line     int
	synonyms []*dictionary.Synonym
}

// Builder compiles synonym tables. A Builder accumulates the records of one
// or more tables with Parse and writes the dictionary with WriteTo.
type Builder struct {
	description string
	now         func() time.Time
	l           *log.Logger
	p           *message.Printer

	// trieKeys maps UTF-8 headwords to the ids of the groups containing
	// them.
	trieKeys *redblacktree.Tree
	groups   []*group
	seen     map[int32]struct{}
}

// New returns a new Builder.
func New(opts *Options) *Builder {
	if opts == nil {
		opts = &Options{}
	}
	b := &Builder{
		description: opts.Description,
		now:         opts.Now,
		l:           opts.Logger,
		p:           message.NewPrinter(language.English),
		trieKeys:    redblacktree.NewWith(compareKeys),
		seen:        make(map[int32]struct{}),
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.l == nil {
		b.l = logger.Discard()
	}
	return b
}

func compareKeys(a, b interface{}) int {
	l, _ := a.([]byte)
	r, _ := b.([]byte)
	return bytes.Compare(l, r)
}

// Len returns the number of groups parsed so far.
func (b *Builder) Len() int {
	return len(b.groups)
}

// Parse reads a synonym table from r. name is used in error messages.
//
// Each line is a comma separated record. Lines containing only whitespace
// end a block, and the records of a block form one synonym group.
func (b *Builder) Parse(r io.Reader, name string) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var (
		block  *group
		lineno int
	)
	for s.Scan() {
		lineno++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			if err := b.addGroup(block); err != nil {
				return &BuildError{File: name, Line: block.line, Err: err}
			}
			block = nil
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			return &BuildError{File: name, Line: lineno, Err: err}
		}
		if e == nil {
			continue
		}
		if block == nil {
			block = &group{id: e.groupID, line: lineno}
		} else if block.id != e.groupID {
			return &BuildError{
				File: name,
				Line: lineno,
				Err:  fmt.Errorf("%w: %d != %d", ErrGroupIDChanged, e.groupID, block.id),
			}
		}
		block.synonyms = append(block.synonyms, e.synonym)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := b.addGroup(block); err != nil {
		return &BuildError{File: name, Line: block.line, Err: err}
	}
	return nil
}

func (b *Builder) addGroup(g *group) error {
	if g == nil || len(g.synonyms) == 0 {
		return nil
	}
	if _, ok := b.seen[g.id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateGroup, g.id)
	}
	if len(g.synonyms) > math.MaxUint16 {
		return fmt.Errorf("%w: group %d has %d synonyms", ErrTooLong, g.id, len(g.synonyms))
	}
	for _, s := range g.synonyms {
		if err := validateString(s.Headword); err != nil {
			return err
		}
		if err := validateString(s.Category); err != nil {
			return err
		}
	}

	// Headword limits are checked before any trie key is updated.
	added := make(map[string]int, len(g.synonyms))
	for _, s := range g.synonyms {
		added[s.Headword]++
		n := added[s.Headword]
		if v, ok := b.trieKeys.Get([]byte(s.Headword)); ok {
			ids, _ := v.([]int32)
			n += len(ids)
		}
		if n > codec.MaxArrayLength {
			return fmt.Errorf("%w: %q is in more than %d groups", ErrTooLong, s.Headword, codec.MaxArrayLength)
		}
	}

	for _, s := range g.synonyms {
		key := []byte(s.Headword)
		var ids []int32
		if v, ok := b.trieKeys.Get(key); ok {
			ids, _ = v.([]int32)
		}
		b.trieKeys.Put(key, append(ids, g.id))
	}
	b.seen[g.id] = struct{}{}
	b.groups = append(b.groups, g)
	return nil
}

func validateString(s string) error {
	if _, err := codec.AppendString(nil, s); err != nil {
		return fmt.Errorf("%w: %q", ErrTooLong, s)
	}
	return nil
}

// countWriter counts the bytes written to w.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the dictionary to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}

	h := dictionary.NewHeader(b.now(), b.description)
	buf, err := h.AppendBinary(nil)
	if err != nil {
		return cw.n, err
	}
	if _, err := cw.Write(buf); err != nil {
		return cw.n, fmt.Errorf("writing header: %w", err)
	}

	if err := b.writeIndex(cw); err != nil {
		return cw.n, err
	}
	if err := b.writeGroups(cw); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

func (b *Builder) writeIndex(w *countWriter) error {
	size := b.trieKeys.Size()
	keys := make([][]byte, 0, size)
	values := make([]int32, 0, size)
	var idTable []byte

	it := b.trieKeys.Iterator()
	for it.Next() {
		key, _ := it.Key().([]byte)
		ids, _ := it.Value().([]int32)
		keys = append(keys, key)
		values = append(values, int32(len(idTable))) //nolint:gosec // bounded by the table size.

		var err error
		if idTable, err = codec.AppendIDs(idTable, ids); err != nil {
			return fmt.Errorf("%w: %q", ErrTooLong, key)
		}
	}

	b.l.Info("building the trie", "keys", size)
	da, err := darts.Build(keys, values, func(n, total int) {
		if n%((total/10)+1) == 0 {
			b.l.Debug("building the trie", "keys", n, "total", total)
		}
	})
	if err != nil {
		return fmt.Errorf("building trie: %w", err)
	}

	b.l.Info("writing the trie")
	if err := writeSection(w, da.Bytes()); err != nil {
		return fmt.Errorf("writing trie: %w", err)
	}
	b.printSize(int64(da.Len()*darts.UnitSize) + 4)

	b.l.Info("writing the group id table")
	if err := writeSection(w, idTable); err != nil {
		return fmt.Errorf("writing group id table: %w", err)
	}
	b.printSize(int64(len(idTable)) + 4)
	return nil
}

// writeSection writes the size of p followed by p.
func writeSection(w io.Writer, p []byte) error {
	if uint64(len(p)) > math.MaxUint32 {
		return fmt.Errorf("%w: section of %d bytes", ErrTooLong, len(p))
	}
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(p)))
	if _, err := w.Write(size[:]); err != nil {
		return err
	}
	_, err := w.Write(p)
	return err
}

func (b *Builder) writeGroups(w *countWriter) error {
	offsetsSize := int64(4 + 8*len(b.groups))
	base := w.n + offsetsSize

	b.l.Info("writing the synonym groups", "groups", len(b.groups))
	offsets := binary.LittleEndian.AppendUint32(nil, uint32(len(b.groups))) //nolint:gosec // bounded by the number of groups.
	var records []byte
	for _, g := range b.groups {
		off := base + int64(len(records))
		if off > math.MaxUint32 {
			return fmt.Errorf("%w: group %d at offset %d", ErrTooLong, g.id, off)
		}
		//nolint:gosec // two's complement reinterpretation.
		offsets = binary.LittleEndian.AppendUint32(offsets, uint32(g.id))
		offsets = binary.LittleEndian.AppendUint32(offsets, uint32(off))

		var err error
		if records, err = dictionary.AppendGroupRecord(records, g.synonyms); err != nil {
			return fmt.Errorf("%w: group %d: %w", ErrTooLong, g.id, err)
		}
	}

	b.l.Info("writing the synonym group offsets")
	if _, err := w.Write(offsets); err != nil {
		return fmt.Errorf("writing group offsets: %w", err)
	}
	b.printSize(int64(len(offsets)))

	if _, err := w.Write(records); err != nil {
		return fmt.Errorf("writing synonym groups: %w", err)
	}
	b.printSize(int64(len(records)))
	return nil
}

func (b *Builder) printSize(n int64) {
	b.l.Info(b.p.Sprintf(" %d bytes", n))
}
