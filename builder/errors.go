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
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that a source record could not be parsed.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrGroupIDChanged indicates that the records of a block do not share
	// one group id.
	ErrGroupIDChanged = errors.New("group id is changed in block")

	// ErrDuplicateGroup indicates that a group id is used by more than one
	// block.
	ErrDuplicateGroup = errors.New("duplicate group id")

	// ErrTooLong indicates that a value does not fit in the dictionary
	// format.
	ErrTooLong = errors.New("value too long")
)

// BuildError is an error in a source table.
type BuildError struct {
	// File is the name of the source table.
	File string

	// Line is the 1-based line number of the offending record.
	Line int

	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *BuildError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}
