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

// Package darts implements a static double-array trie.
//
// The trie maps byte-string keys to non-negative int32 values. It is built
// once from a sorted key set and serialized as an array of 8 byte units
// (little endian int32 base, int32 check). A serialized array can be
// searched in place without decoding.
//
// Transitions use label c+1 for input byte c. Label 0 leads to a terminal
// unit whose base holds the key's value.
package darts

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
)

// UnitSize is the size in bytes of one serialized unit.
const UnitSize = 8

const (
	freeCheck = -1
	rootCheck = -2
)

var (
	// ErrUnsorted indicates that build keys are not unique and sorted.
	ErrUnsorted = errors.New("keys not sorted")

	// ErrNegativeValue indicates that a build value is negative.
	ErrNegativeValue = errors.New("negative value")

	// ErrInvalidSize indicates that a serialized array is not a whole
	// number of units.
	ErrInvalidSize = errors.New("invalid double array size")
)

// DoubleArray is a read-only double-array trie.
type DoubleArray struct {
	units []byte
}

// New returns a DoubleArray backed by b. b is not copied and must not be
// modified while the DoubleArray is in use.
func New(b []byte) (*DoubleArray, error) {
	if len(b)%UnitSize != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, len(b))
	}
	return &DoubleArray{units: b}, nil
}

// Bytes returns the serialized units.
func (da *DoubleArray) Bytes() []byte {
	return da.units
}

// Len returns the number of units.
func (da *DoubleArray) Len() int {
	return len(da.units) / UnitSize
}

func (da *DoubleArray) base(i int) int32 {
	//nolint:gosec // two's complement reinterpretation.
	return int32(binary.LittleEndian.Uint32(da.units[i*UnitSize:]))
}

func (da *DoubleArray) check(i int) int32 {
	//nolint:gosec // two's complement reinterpretation.
	return int32(binary.LittleEndian.Uint32(da.units[i*UnitSize+4:]))
}

func (da *DoubleArray) child(s int, label int) (int, bool) {
	t := int(da.base(s)) + label
	if t <= 0 || t >= da.Len() || int(da.check(t)) != s {
		return 0, false
	}
	return t, true
}

// ExactMatch returns the value stored for key.
func (da *DoubleArray) ExactMatch(key []byte) (int32, bool) {
	if da.Len() == 0 {
		return -1, false
	}
	s := 0
	for _, c := range key {
		t, ok := da.child(s, int(c)+1)
		if !ok {
			return -1, false
		}
		s = t
	}
	t, ok := da.child(s, 0)
	if !ok {
		return -1, false
	}
	return da.base(t), true
}

// CommonPrefix returns the values of every stored key that is a prefix of
// text[offset:] together with the length of the matched key. Results are
// produced lazily from the shortest match to the longest.
func (da *DoubleArray) CommonPrefix(text []byte, offset int) iter.Seq2[int32, int] {
	return func(yield func(int32, int) bool) {
		if da.Len() == 0 || offset < 0 || offset > len(text) {
			return
		}
		s := 0
		for i := offset; ; i++ {
			if t, ok := da.child(s, 0); ok {
				if !yield(da.base(t), i-offset) {
					return
				}
			}
			if i >= len(text) {
				return
			}
			t, ok := da.child(s, int(text[i])+1)
			if !ok {
				return
			}
			s = t
		}
	}
}

type sibling struct {
	label  int
	lo, hi int
}

type builder struct {
	keys   [][]byte
	values []int32

	base  []int32
	check []int32

	// nextFree is the lowest unit index that may be unused.
	nextFree int

	progress func(n, total int)
	done     int
}

// Build builds a DoubleArray from keys and their values. keys must be
// unique and sorted in byte order, shorter keys first on a common prefix.
// progress, if not nil, is called after each key is stored.
func Build(keys [][]byte, values []int32, progress func(n, total int)) (*DoubleArray, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("darts: %d keys but %d values", len(keys), len(values))
	}
	for i := range keys {
		if values[i] < 0 {
			return nil, fmt.Errorf("%w: key %q: %d", ErrNegativeValue, keys[i], values[i])
		}
		if i > 0 && bytes.Compare(keys[i-1], keys[i]) >= 0 {
			return nil, fmt.Errorf("%w: %q before %q", ErrUnsorted, keys[i-1], keys[i])
		}
	}

	b := &builder{
		keys:     keys,
		values:   values,
		base:     []int32{0},
		check:    []int32{rootCheck},
		nextFree: 1,
		progress: progress,
	}
	if len(keys) > 0 {
		b.insert(0, 0, 0, len(keys))
	}

	units := make([]byte, len(b.base)*UnitSize)
	for i := range b.base {
		//nolint:gosec // two's complement reinterpretation.
		binary.LittleEndian.PutUint32(units[i*UnitSize:], uint32(b.base[i]))
		//nolint:gosec // two's complement reinterpretation.
		binary.LittleEndian.PutUint32(units[i*UnitSize+4:], uint32(b.check[i]))
	}
	return &DoubleArray{units: units}, nil
}

func (b *builder) label(i, depth int) int {
	if len(b.keys[i]) == depth {
		return 0
	}
	return int(b.keys[i][depth]) + 1
}

// insert places the children of parent for keys[lo:hi], which share their
// first depth bytes.
func (b *builder) insert(parent, depth, lo, hi int) {
	var sibs []sibling
	for i := lo; i < hi; {
		l := b.label(i, depth)
		j := i + 1
		for j < hi && b.label(j, depth) == l {
			j++
		}
		sibs = append(sibs, sibling{label: l, lo: i, hi: j})
		i = j
	}

	base := b.findBase(sibs)
	b.base[parent] = int32(base) //nolint:gosec // bounded by the number of units.
	for _, s := range sibs {
		b.check[base+s.label] = int32(parent) //nolint:gosec // bounded by the number of units.
	}
	for b.nextFree < len(b.check) && b.check[b.nextFree] != freeCheck {
		b.nextFree++
	}

	for _, s := range sibs {
		child := base + s.label
		if s.label == 0 {
			b.base[child] = b.values[s.lo]
			b.done++
			if b.progress != nil {
				b.progress(b.done, len(b.keys))
			}
			continue
		}
		b.insert(child, depth+1, s.lo, s.hi)
	}
}

func (b *builder) findBase(sibs []sibling) int {
	first := sibs[0].label
	pos := max(b.nextFree, first+1)
	for ; ; pos++ {
		base := pos - first
		if b.fits(base, sibs) {
			b.grow(base + sibs[len(sibs)-1].label + 1)
			return base
		}
	}
}

func (b *builder) fits(base int, sibs []sibling) bool {
	for _, s := range sibs {
		i := base + s.label
		if i < len(b.check) && b.check[i] != freeCheck {
			return false
		}
	}
	return true
}

func (b *builder) grow(n int) {
	for len(b.check) < n {
		b.base = append(b.base, 0)
		b.check = append(b.check, freeCheck)
	}
}
