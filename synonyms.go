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

package synonyms

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ianlewis/go-synonyms/config"
	"github.com/ianlewis/go-synonyms/dictionary"
)

// ErrInconsistentDictionary indicates that a dictionary returned a group
// for a word that the group does not contain.
var ErrInconsistentDictionary = errors.New("inconsistent synonym dictionary")

// Dictionary is a source of synonym groups.
type Dictionary interface {
	// Lookup returns the ids of the groups containing word. groupIDs are
	// ids supplied by the caller which the dictionary may use instead of
	// its own index.
	Lookup(word string, groupIDs []int32) []int32

	// SynonymGroup returns the group with the given id or an error
	// wrapping dictionary.ErrGroupNotFound.
	SynonymGroup(id int32) (*dictionary.SynonymGroup, error)
}

// Catalog finds synonyms in a set of dictionaries. Dictionaries added later
// take precedence over earlier ones.
type Catalog struct {
	// dicts are in the order they were added.
	dicts       []Dictionary
	enableVerbs bool
	closers     []io.Closer
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// AddDictionary adds a dictionary with precedence over the dictionaries
// already in the catalog.
func (c *Catalog) AddDictionary(d Dictionary) {
	c.dicts = append(c.dicts, d)
}

// Dictionaries returns the dictionaries in order of precedence.
func (c *Catalog) Dictionaries() []Dictionary {
	dicts := slices.Clone(c.dicts)
	slices.Reverse(dicts)
	return dicts
}

// EnableVerbs includes synonyms that are not nouns in results.
func (c *Catalog) EnableVerbs() {
	c.enableVerbs = true
}

// Find returns the synonyms of word.
func (c *Catalog) Find(word string) ([]string, error) {
	return c.FindWithGroupIDs(word, nil)
}

// FindWithGroupIDs returns the synonyms of word. groupIDs are the ids of
// the groups containing word as reported by the caller, or nil if unknown.
//
// Only the first dictionary in order of precedence that knows word is
// used. Groups in which word is ambiguous are skipped. Synonyms are
// returned in dictionary order and are not deduplicated.
func (c *Catalog) FindWithGroupIDs(word string, groupIDs []int32) ([]string, error) {
	for _, d := range slices.Backward(c.dicts) {
		ids := d.Lookup(word, groupIDs)
		if len(ids) == 0 {
			continue
		}
		return c.gatherHeadwords(d, word, ids)
	}
	return nil, nil
}

func (c *Catalog) gatherHeadwords(d Dictionary, word string, ids []int32) ([]string, error) {
	var headwords []string
	for _, id := range ids {
		g, err := d.SynonymGroup(id)
		if errors.Is(err, dictionary.ErrGroupNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("finding synonyms of %q: %w", word, err)
		}

		s, ok := g.Lookup(word)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in group %d", ErrInconsistentDictionary, word, id)
		}
		if s.IsAmbiguous() {
			continue
		}

		for _, syn := range g.Synonyms {
			if syn.Headword == word {
				continue
			}
			if !c.enableVerbs && !syn.IsNoun() {
				continue
			}
			headwords = append(headwords, syn.Headword)
		}
	}
	return headwords, nil
}

// Close closes the dictionaries opened by OpenConfig.
func (c *Catalog) Close() error {
	var errs []error
	for _, cl := range c.closers {
		errs = append(errs, cl.Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// OpenConfig opens the dictionaries of cfg and returns a Catalog using
// them. The Catalog must be closed when no longer needed.
func OpenConfig(cfg *config.Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := New()
	for _, dc := range cfg.Dictionaries {
		d, err := dictionary.Open(dc.Path, &dictionary.Options{
			EnableTrie: dc.EnableTrie,
		})
		if err != nil {
			return nil, errors.Join(err, c.Close())
		}
		c.AddDictionary(d)
		c.closers = append(c.closers, d)
	}
	if cfg.EnableVerbs {
		c.EnableVerbs()
	}
	return c, nil
}
