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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlags_Encode(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		flags Flags
		want  uint16
	}{
		"zero": {
			flags: Flags{},
			want:  0,
		},
		"ambiguous": {
			flags: Flags{Ambiguous: true},
			want:  0x1,
		},
		"noun": {
			flags: Flags{Noun: true},
			want:  0x2,
		},
		"form": {
			flags: Flags{Form: FormMisnomer},
			want:  4 << 2,
		},
		"acronym": {
			flags: Flags{Acronym: AcronymOthers},
			want:  2 << 5,
		},
		"variant": {
			flags: Flags{Variant: VariantMisspelled},
			want:  3 << 7,
		},
		"all": {
			flags: Flags{
				Ambiguous: true,
				Noun:      true,
				Form:      FormMisnomer,
				Acronym:   AcronymOthers,
				Variant:   VariantMisspelled,
			},
			want: 0x1d3,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.flags.Encode(); got != tc.want {
				t.Errorf("Encode: want: %#x, got: %#x", tc.want, got)
			}
		})
	}
}

func TestFlags_roundTrip(t *testing.T) {
	t.Parallel()

	for _, ambiguous := range []bool{false, true} {
		for _, noun := range []bool{false, true} {
			for form := FormNone; form <= FormMisnomer; form++ {
				for acronym := AcronymNone; acronym <= AcronymOthers; acronym++ {
					for variant := VariantNone; variant <= VariantMisspelled; variant++ {
						want := Flags{
							Ambiguous: ambiguous,
							Noun:      noun,
							Form:      form,
							Acronym:   acronym,
							Variant:   variant,
						}
						if !want.Valid() {
							t.Errorf("Valid(%+v): want: true, got: false", want)
						}
						got := DecodeFlags(want.Encode())
						if diff := cmp.Diff(want, got); diff != "" {
							t.Errorf("DecodeFlags (-want, +got):\n%s", diff)
						}
					}
				}
			}
		}
	}
}

func TestFlags_Valid(t *testing.T) {
	t.Parallel()

	for _, f := range []Flags{
		{Form: FormMisnomer + 1},
		{Acronym: AcronymOthers + 1},
		{Variant: VariantMisspelled + 1},
	} {
		if f.Valid() {
			t.Errorf("Valid(%+v): want: false, got: true", f)
		}
	}
}

func TestFlags_String(t *testing.T) {
	t.Parallel()

	got := []string{
		FormOldName.String(),
		AcronymAlphabet.String(),
		VariantMisspelled.String(),
		FormType(7).String(),
	}
	want := []string{"old name", "alphabet", "misspelled", "FormType(7)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String (-want, +got):\n%s", diff)
	}
}
