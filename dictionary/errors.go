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

import "errors"

var (
	// ErrNotADictionary indicates that a file is not a synonym dictionary
	// or that its sections do not fit in the file.
	ErrNotADictionary = errors.New("not a synonym dictionary")

	// ErrIO indicates that the dictionary file could not be read.
	ErrIO = errors.New("dictionary i/o error")

	// ErrMalformed indicates that a section of the dictionary could not be
	// decoded.
	ErrMalformed = errors.New("malformed dictionary")

	// ErrGroupNotFound indicates that a group id is not stored in the
	// dictionary.
	ErrGroupNotFound = errors.New("synonym group not found")
)
