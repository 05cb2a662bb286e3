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

package folding

import (
	"testing"

	"golang.org/x/text/transform"
)

func TestWhitespace(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input string
		want  string
	}{
		"empty": {
			input: "",
			want:  "",
		},
		"spaces only": {
			input: " \t\n",
			want:  "",
		},
		"leading and trailing": {
			input: "  open\t",
			want:  "open",
		},
		"internal": {
			input: "open \t\n shop",
			want:  "open shop",
		},
		"ideographic space": {
			input: "開店　準備",
			want:  "開店 準備",
		},
		"invalid utf-8": {
			input: "a\xffb",
			want:  "a�b",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&Whitespace{}, tc.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if got != tc.want {
				t.Errorf("transform.String(%q): want: %q, got: %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input string
		want  string
	}{
		"ascii": {
			input: " open ",
			want:  "open",
		},
		"full-width": {
			input: "ｏｐｅｎ",
			want:  "open",
		},
		"half-width katakana": {
			input: "ﾃｽﾄ",
			want:  "テスト",
		},
		"japanese": {
			input: "　開店　",
			want:  "開店",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := Query(tc.input); got != tc.want {
				t.Errorf("Query(%q): want: %q, got: %q", tc.input, tc.want, got)
			}
		})
	}
}
