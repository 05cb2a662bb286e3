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

// Synonym is an entry of a synonym group.
type Synonym struct {
	// Headword is the written form of the synonym.
	Headword string

	// LexemeIDs link the synonym to the analyzer's lexical entries.
	LexemeIDs []uint16

	Flags Flags

	// Category is free-text category information.
	Category string
}

// IsAmbiguous reports whether the synonym's membership in its group is
// ambiguous.
func (s *Synonym) IsAmbiguous() bool {
	return s.Flags.Ambiguous
}

// IsNoun reports whether the synonym is a noun.
func (s *Synonym) IsNoun() bool {
	return s.Flags.Noun
}

// SynonymGroup is a set of mutually synonymous headwords.
type SynonymGroup struct {
	ID       int32
	Synonyms []*Synonym
}

// Lookup returns the first synonym whose headword equals word.
func (g *SynonymGroup) Lookup(word string) (*Synonym, bool) {
	for _, s := range g.Synonyms {
		if s.Headword == word {
			return s, true
		}
	}
	return nil, false
}
