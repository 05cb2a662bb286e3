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

// Package codec implements the little-endian primitives of the synonym
// dictionary format.
//
// Strings are stored as UTF-16 code units. The length, counted in code
// units, is one byte when it is at most 127. Longer strings use two bytes,
// the first with its high bit set:
//
//	len <= 127:  | len |
//	len >  127:  | (len>>8)|0x80 | len&0xff |
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
)

// MaxStringLength is the maximum string length in UTF-16 code units.
const MaxStringLength = 1<<15 - 1

// MaxArrayLength is the maximum number of elements in a count-prefixed
// array.
const MaxArrayLength = 255

var (
	// ErrShortBuffer indicates that a value extends past the end of the
	// buffer.
	ErrShortBuffer = errors.New("short buffer")

	// ErrTooLong indicates that a value cannot be encoded because it
	// exceeds a length limit.
	ErrTooLong = errors.New("value too long")
)

// AppendString appends the encoding of s to b.
func AppendString(b []byte, s string) ([]byte, error) {
	units := utf16.Encode([]rune(s))
	n := len(units)
	if n > MaxStringLength {
		return b, fmt.Errorf("%w: string of %d code units", ErrTooLong, n)
	}
	if n <= 127 {
		b = append(b, byte(n))
	} else {
		b = append(b, byte(n>>8)|0x80, byte(n&0xff))
	}
	for _, u := range units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b, nil
}

// AppendShortArray appends a one byte count followed by the elements of a.
func AppendShortArray(b []byte, a []uint16) ([]byte, error) {
	if len(a) > MaxArrayLength {
		return b, fmt.Errorf("%w: array of %d elements", ErrTooLong, len(a))
	}
	b = append(b, byte(len(a)))
	for _, v := range a {
		b = binary.LittleEndian.AppendUint16(b, v)
	}
	return b, nil
}

// AppendIDs appends a one byte count followed by the 32-bit ids.
func AppendIDs(b []byte, ids []int32) ([]byte, error) {
	if len(ids) > MaxArrayLength {
		return b, fmt.Errorf("%w: %d ids", ErrTooLong, len(ids))
	}
	b = append(b, byte(len(ids)))
	for _, id := range ids {
		//nolint:gosec // two's complement reinterpretation.
		b = binary.LittleEndian.AppendUint32(b, uint32(id))
	}
	return b, nil
}

// Decoder reads values sequentially from a byte slice. The first error is
// sticky; once set, every read returns the zero value.
type Decoder struct {
	b   []byte
	off int
	err error
}

// NewDecoder returns a Decoder reading b from off.
func NewDecoder(b []byte, off int) *Decoder {
	d := &Decoder{b: b, off: off}
	if off < 0 || off > len(b) {
		d.err = fmt.Errorf("%w: offset %d of %d", ErrShortBuffer, off, len(b))
	}
	return d
}

// Offset returns the position of the next read.
func (d *Decoder) Offset() int {
	return d.off
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) next(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n > len(d.b)-d.off {
		d.err = fmt.Errorf("%w: need %d bytes at offset %d of %d", ErrShortBuffer, n, d.off, len(d.b))
		return nil
	}
	p := d.b[d.off : d.off+n]
	d.off += n
	return p
}

// Bytes returns the next n bytes without copying.
func (d *Decoder) Bytes(n int) []byte {
	return d.next(n)
}

// Uint8 reads a byte.
func (d *Decoder) Uint8() uint8 {
	p := d.next(1)
	if p == nil {
		return 0
	}
	return p[0]
}

// Uint16 reads a 16-bit value.
func (d *Decoder) Uint16() uint16 {
	p := d.next(2)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(p)
}

// Uint32 reads a 32-bit value.
func (d *Decoder) Uint32() uint32 {
	p := d.next(4)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(p)
}

// Int32 reads a signed 32-bit value.
func (d *Decoder) Int32() int32 {
	return int32(d.Uint32()) //nolint:gosec // two's complement reinterpretation.
}

// Uint64 reads a 64-bit value.
func (d *Decoder) Uint64() uint64 {
	p := d.next(8)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(p)
}

// String reads a length-prefixed UTF-16 string.
func (d *Decoder) String() string {
	n := int(d.Uint8())
	if n&0x80 != 0 {
		n = (n&0x7f)<<8 | int(d.Uint8())
	}
	p := d.next(2 * n)
	if p == nil {
		return ""
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(p[2*i:])
	}
	return string(utf16.Decode(units))
}

// ShortArray reads a one byte count followed by that many 16-bit values.
func (d *Decoder) ShortArray() []uint16 {
	n := int(d.Uint8())
	p := d.next(2 * n)
	if p == nil || n == 0 {
		return nil
	}
	a := make([]uint16, n)
	for i := range a {
		a[i] = binary.LittleEndian.Uint16(p[2*i:])
	}
	return a
}

// IDs reads a one byte count followed by that many 32-bit ids.
func (d *Decoder) IDs() []int32 {
	n := int(d.Uint8())
	p := d.next(4 * n)
	if p == nil || n == 0 {
		return nil
	}
	ids := make([]int32, n)
	for i := range ids {
		ids[i] = int32(binary.LittleEndian.Uint32(p[4*i:])) //nolint:gosec // two's complement reinterpretation.
	}
	return ids
}
