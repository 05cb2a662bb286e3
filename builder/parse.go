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

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ianlewis/go-synonyms/dictionary"
)

// numFields is the number of fields of a source record.
const numFields = 9

// entry is a parsed source record.
type entry struct {
	groupID int32
	synonym *dictionary.Synonym
}

// splitFields splits a record on commas and drops trailing empty fields.
func splitFields(line string) []string {
	cols := strings.Split(line, ",")
	for len(cols) > 0 && cols[len(cols)-1] == "" {
		cols = cols[:len(cols)-1]
	}
	return cols
}

// parseLine parses a source record. It returns nil for records that are
// excluded from the dictionary.
func parseLine(line string) (*entry, error) {
	cols := splitFields(line)
	if len(cols) < numFields {
		return nil, fmt.Errorf("%w: %d fields", ErrInvalidFormat, len(cols))
	}
	if cols[2] == "2" {
		return nil, nil
	}

	groupID, err := strconv.ParseInt(cols[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: group id %q", ErrInvalidFormat, cols[0])
	}

	lexemeIDs, err := parseLexemeIDs(cols[3])
	if err != nil {
		return nil, err
	}

	ambiguous, err := parseBool(cols[2], "0", "1")
	if err != nil {
		return nil, err
	}
	noun, err := parseBool(cols[1], "2", "1")
	if err != nil {
		return nil, err
	}
	form, err := parseRange(cols[4], int(dictionary.FormMisnomer))
	if err != nil {
		return nil, err
	}
	acronym, err := parseRange(cols[5], int(dictionary.AcronymOthers))
	if err != nil {
		return nil, err
	}
	variant, err := parseRange(cols[6], int(dictionary.VariantMisspelled))
	if err != nil {
		return nil, err
	}

	return &entry{
		groupID: int32(groupID),
		synonym: &dictionary.Synonym{
			Headword:  cols[8],
			LexemeIDs: lexemeIDs,
			Flags: dictionary.Flags{
				Ambiguous: ambiguous,
				Noun:      noun,
				Form:      dictionary.FormType(form),
				Acronym:   dictionary.AcronymType(acronym),
				Variant:   dictionary.VariantType(variant),
			},
			Category: cols[7],
		},
	}, nil
}

func parseLexemeIDs(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, "/")
	ids := make([]uint16, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: lexeme id %q", ErrInvalidFormat, f)
		}
		ids = append(ids, uint16(v))
	}
	if len(ids) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d lexeme ids", ErrTooLong, len(ids))
	}
	return ids, nil
}

func parseBool(s, falseString, trueString string) (bool, error) {
	switch s {
	case falseString:
		return false, nil
	case trueString:
		return true, nil
	default:
		return false, fmt.Errorf("%w: invalid value: %q", ErrInvalidFormat, s)
	}
}

func parseRange(s string, limit int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > limit {
		return 0, fmt.Errorf("%w: invalid value: %q", ErrInvalidFormat, s)
	}
	return v, nil
}
