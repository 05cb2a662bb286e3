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

// Package synonyms implements a library for looking up synonyms in
// compiled synonym dictionaries in pure Go.
//
// A synonym dictionary is a single read-only file containing:
//  1. A header with the format version, creation time and a description.
//  2. A double-array trie mapping UTF-8 headwords to synonym group ids.
//  3. A table of group offsets.
//  4. The synonym groups. Each synonym records its headword, lexeme ids,
//     flags and a category.
//
// Dictionaries are compiled from comma separated synonym tables by the
// builder package and read by the dictionary package. A Catalog combines
// several dictionaries, giving precedence to the most recently added one.
package synonyms
