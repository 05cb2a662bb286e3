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

package folding

import (
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Query folds a word for lookup. Whitespace is folded as by Whitespace,
// full-width ASCII becomes narrow and half-width katakana becomes wide.
func Query(s string) string {
	t := transform.Chain(&Whitespace{}, width.Fold)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
