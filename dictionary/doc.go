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

// Package dictionary implements reading binary synonym dictionaries.
//
// A dictionary is a single read-only file, memory mapped when opened. All
// integers are little endian. The file has four sections that follow each
// other without padding:
//
//	+--------+-------+---------------+---------------+
//	| header | index | group offsets | group records |
//	+--------+-------+---------------+---------------+
//
// The header holds the 8 byte format version, the creation time as 8 byte
// signed seconds since the epoch and a description string.
//
// The index maps headwords to synonym group ids:
//
//	+------------------+-------------------+---------------------+----------+
//	| trie size (4)    | double-array trie | id table size (4)   | id table |
//	+------------------+-------------------+---------------------+----------+
//
// The value stored for a headword in the trie is a byte offset into the id
// table. Each id table entry is a one byte count followed by that many 4
// byte group ids.
//
// The group offset table is a 4 byte count followed by (group id, offset)
// pairs of 4 bytes each. Offsets are absolute file positions of group
// records. A group record is a 2 byte entry count followed by the entries:
//
//	+----------+----------------------+-----------+----------+
//	| headword | lexeme ids           | flags (2) | category |
//	+----------+----------------------+-----------+----------+
//
// Strings are length-prefixed UTF-16. Lexeme ids are a one byte count
// followed by 2 byte ids.
package dictionary
