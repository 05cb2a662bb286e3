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

// Package config loads catalog configuration files.
//
// A configuration file is TOML:
//
//	enable_verbs = false
//	synonym_delimiter = ","
//
//	[[dictionaries]]
//	path = "system.dic"
//	enable_trie = false
//
//	[[dictionaries]]
//	path = "user.dic"
//	enable_trie = true
//
// Dictionaries are listed in the order they are added to the catalog, so
// later dictionaries take precedence. Relative paths are resolved against
// the directory of the configuration file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoDictionaries indicates that a configuration lists no dictionaries.
var ErrNoDictionaries = errors.New("no dictionaries configured")

// DefaultDelimiter separates synonyms in the output of the find command.
const DefaultDelimiter = ","

// DictionaryConfig configures one dictionary.
type DictionaryConfig struct {
	// Path is the path of the dictionary file.
	Path string `toml:"path"`

	// EnableTrie enables headword lookups in the dictionary's index.
	EnableTrie bool `toml:"enable_trie"`
}

// Config is a catalog configuration.
type Config struct {
	// EnableVerbs includes synonyms that are not nouns.
	EnableVerbs bool `toml:"enable_verbs"`

	// SynonymDelimiter separates synonyms in output.
	SynonymDelimiter string `toml:"synonym_delimiter"`

	// Dictionaries are the dictionaries in order of increasing precedence.
	Dictionaries []DictionaryConfig `toml:"dictionaries"`
}

// Default returns the default configuration. It has no dictionaries.
func Default() *Config {
	return &Config{
		SynonymDelimiter: DefaultDelimiter,
	}
}

// Load reads the configuration file at path. Settings missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("loading config %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	for i := range c.Dictionaries {
		p := c.Dictionaries[i].Path
		if p == "" {
			return nil, fmt.Errorf("loading config %q: dictionary %d has no path", path, i+1)
		}
		if !filepath.IsAbs(p) {
			c.Dictionaries[i].Path = filepath.Join(dir, p)
		}
	}
	return c, nil
}

// Validate checks that the configuration can be used to open a catalog.
func (c *Config) Validate() error {
	if len(c.Dictionaries) == 0 {
		return ErrNoDictionaries
	}
	return nil
}
