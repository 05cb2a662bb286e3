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
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHeader(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		description string
	}{
		"empty": {
			description: "",
		},
		"ascii": {
			description: "system synonyms",
		},
		"japanese": {
			description: "同義語辞書",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
			want := NewHeader(created, tc.description)
			b, err := want.AppendBinary(nil)
			if err != nil {
				t.Fatalf("AppendBinary: %v", err)
			}

			// Trailing bytes belong to the next section.
			b = append(b, 0xde, 0xad)

			got, n, err := ReadHeader(b)
			if err != nil {
				t.Fatalf("ReadHeader: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ReadHeader (-want, +got):\n%s", diff)
			}
			if got, want := n, len(b)-2; got != want {
				t.Errorf("ReadHeader size: want: %d, got: %d", want, got)
			}
			if !got.IsDictionary() {
				t.Errorf("IsDictionary: want: true, got: false")
			}
			if !got.Time().Equal(created) {
				t.Errorf("Time: want: %v, got: %v", created, got.Time())
			}
		})
	}
}

func TestReadHeader_errors(t *testing.T) {
	t.Parallel()

	valid, err := NewHeader(time.Unix(0, 0), "desc").AppendBinary(nil)
	if err != nil {
		t.Fatal(err)
	}
	wrongVersion := append([]byte{}, valid...)
	wrongVersion[0] ^= 0xff

	testCases := map[string][]byte{
		"empty":         {},
		"short version": valid[:4],
		"no time":       valid[:8],
		"short string":  valid[:len(valid)-1],
		"wrong version": wrongVersion,
	}

	for name, b := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := ReadHeader(b); !errors.Is(err, ErrNotADictionary) {
				t.Errorf("ReadHeader: want: %v, got: %v", ErrNotADictionary, err)
			}
		})
	}
}
