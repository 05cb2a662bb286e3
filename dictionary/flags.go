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

import "fmt"

// FormType is the word form of a synonym relative to its group.
type FormType uint8

const (
	// FormNone is a typical form.
	FormNone FormType = iota

	// FormTranslation is a translation into another language.
	FormTranslation

	// FormAlias is an alias or nickname.
	FormAlias

	// FormOldName is an old or former name.
	FormOldName

	// FormMisnomer is a misused name.
	FormMisnomer
)

// AcronymType is the kind of abbreviation a synonym is.
type AcronymType uint8

const (
	// AcronymNone is not an abbreviation.
	AcronymNone AcronymType = iota

	// AcronymAlphabet is an abbreviation written in the alphabet.
	AcronymAlphabet

	// AcronymOthers is any other abbreviation.
	AcronymOthers
)

// VariantType is the kind of spelling variant a synonym is.
type VariantType uint8

const (
	// VariantNone is the typical spelling.
	VariantNone VariantType = iota

	// VariantAlphabet is an alphabetic notation.
	VariantAlphabet

	// VariantGeneral is a general spelling variant.
	VariantGeneral

	// VariantMisspelled is a misspelling.
	VariantMisspelled
)

const (
	ambiguityBit = 1 << 0
	nounBit      = 1 << 1
	formShift    = 2
	acronymShift = 5
	variantShift = 7
)

// Flags are the packed attributes of a synonym.
type Flags struct {
	// Ambiguous is set when the headword's membership in the group is
	// sense-ambiguous.
	Ambiguous bool

	// Noun is set for nouns. Verbs and adjectives leave it unset.
	Noun bool

	Form    FormType
	Acronym AcronymType
	Variant VariantType
}

// Valid reports whether every field is in range.
func (f Flags) Valid() bool {
	return f.Form <= FormMisnomer && f.Acronym <= AcronymOthers && f.Variant <= VariantMisspelled
}

// Encode packs the flags into 16 bits.
func (f Flags) Encode() uint16 {
	var v uint16
	if f.Ambiguous {
		v |= ambiguityBit
	}
	if f.Noun {
		v |= nounBit
	}
	v |= uint16(f.Form&0x7) << formShift
	v |= uint16(f.Acronym&0x3) << acronymShift
	v |= uint16(f.Variant&0x3) << variantShift
	return v
}

// DecodeFlags unpacks flags encoded by Encode.
func DecodeFlags(v uint16) Flags {
	return Flags{
		Ambiguous: v&ambiguityBit != 0,
		Noun:      v&nounBit != 0,
		Form:      FormType((v >> formShift) & 0x7),
		Acronym:   AcronymType((v >> acronymShift) & 0x3),
		Variant:   VariantType((v >> variantShift) & 0x3),
	}
}

var formNames = [...]string{"none", "translation", "alias", "old name", "misnomer"}

func (t FormType) String() string {
	if int(t) < len(formNames) {
		return formNames[t]
	}
	return fmt.Sprintf("FormType(%d)", uint8(t))
}

var acronymNames = [...]string{"none", "alphabet", "others"}

func (t AcronymType) String() string {
	if int(t) < len(acronymNames) {
		return acronymNames[t]
	}
	return fmt.Sprintf("AcronymType(%d)", uint8(t))
}

var variantNames = [...]string{"none", "alphabet", "general", "misspelled"}

func (t VariantType) String() string {
	if int(t) < len(variantNames) {
		return variantNames[t]
	}
	return fmt.Sprintf("VariantType(%d)", uint8(t))
}
