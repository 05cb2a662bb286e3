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
	"time"

	"github.com/ianlewis/go-synonyms/internal/codec"
)

// Version is the format version of synonym dictionaries.
const Version uint64 = 0xeb5b87cc8b3f406c

// Header is the dictionary file header.
type Header struct {
	// Version is the format version.
	Version uint64

	// CreateTime is the build time in seconds since the Unix epoch.
	CreateTime int64

	// Description is a free-text description of the dictionary.
	Description string
}

// NewHeader returns a header for the current format version.
func NewHeader(createTime time.Time, description string) *Header {
	return &Header{
		Version:     Version,
		CreateTime:  createTime.Unix(),
		Description: description,
	}
}

// IsDictionary reports whether the header has the known format version.
func (h *Header) IsDictionary() bool {
	return h.Version == Version
}

// Time returns the creation time.
func (h *Header) Time() time.Time {
	return time.Unix(h.CreateTime, 0)
}

// AppendBinary appends the encoded header to b.
func (h *Header) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint64(b, h.Version)
	//nolint:gosec // two's complement reinterpretation.
	b = binary.LittleEndian.AppendUint64(b, uint64(h.CreateTime))
	b, err := codec.AppendString(b, h.Description)
	if err != nil {
		return nil, fmt.Errorf("encoding description: %w", err)
	}
	return b, nil
}

// ReadHeader decodes the header at the start of b and returns it with its
// encoded size.
func ReadHeader(b []byte) (*Header, int, error) {
	d := codec.NewDecoder(b, 0)
	h := &Header{
		Version: d.Uint64(),
	}
	h.CreateTime = int64(d.Uint64()) //nolint:gosec // two's complement reinterpretation.
	h.Description = d.String()
	if err := d.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: reading header: %w", ErrNotADictionary, err)
	}
	if !h.IsDictionary() {
		return nil, 0, fmt.Errorf("%w: unknown version %#x", ErrNotADictionary, h.Version)
	}
	return h, d.Offset(), nil
}
