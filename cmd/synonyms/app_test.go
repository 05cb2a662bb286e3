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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-synonyms"
	"github.com/ianlewis/go-synonyms/internal/testutil"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newSynonymsApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"synonyms"}, args...))
	return result{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}

// buildDict compiles table with the build command and returns the path of
// the dictionary.
func buildDict(t *testing.T, table, description string) string {
	t.Helper()

	output := filepath.Join(t.TempDir(), "synonyms.dic")
	r := run(t, "", "--quiet", "build", "-o", output, "-d", description, testutil.WriteTable(t, table, nil))
	if r.err != nil {
		t.Fatalf("build: %v", r.err)
	}
	return output
}

func TestBuild(t *testing.T) {
	t.Parallel()

	input := testutil.WriteTable(t, testutil.SystemTable, &testutil.TableOptions{DictZip: true})
	output := filepath.Join(t.TempDir(), "system.dic")

	r := run(t, "", "build", "-o", output, "-d", "system", input)
	if r.err != nil {
		t.Fatalf("build: %v", r.err)
	}
	if !strings.Contains(r.stderr, "bytes") {
		t.Errorf("build log %q does not report sizes", r.stderr)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("Stat(%q): %v", output, err)
	}
}

func TestBuild_errors(t *testing.T) {
	t.Parallel()

	testCases := map[string][]string{
		"no output": {"build", "input.csv"},
		"no input":  {"build", "-o", "out.dic"},
		"bad flag":  {"build", "--bogus"},
	}

	for name, args := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if r := run(t, "", args...); r.err == nil {
				t.Errorf("run(%q): want error, got nil", args)
			}
		})
	}

	r := run(t, "", "build", "--bogus")
	if !errors.Is(r.err, ErrFlagParse) {
		t.Errorf("build --bogus: want: %v, got: %v", ErrFlagParse, r.err)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	system := buildDict(t, testutil.SystemTable, "system")
	user := buildDict(t, testutil.UserTable, "user")

	testCases := map[string]struct {
		args  []string
		stdin string
		want  string
	}{
		"system hints": {
			args:  []string{"find", "-s", system},
			stdin: "開店\t6\nオープン\t6\n\nopen\n",
			want: "開店\t始業,営業開始,店開き,オープン,open\n" +
				"オープン\t\n" +
				"open\t開店,始業,営業開始,店開き,オープン,開放\n",
		},
		"folded query": {
			args:  []string{"find", "-s", system},
			stdin: "  ｏｐｅｎ \t100006\n",
			want:  "open\t開放\n",
		},
		"user precedence": {
			args:  []string{"find", "-s", system, "-u", user},
			stdin: "open\n始業\t6\n",
			want: "open\t開放,オープン\n" +
				"始業\t開店,営業開始,店開き,オープン,open\n",
		},
		"command line order": {
			args:  []string{"find", "-u", user, "-s", system},
			stdin: "open\n",
			want:  "open\t開店,始業,営業開始,店開き,オープン,開放\n",
		},
		"verbs and delimiter": {
			args:  []string{"find", "-s", system, "-u", user, "-v", "--delimiter", " | "},
			stdin: "open\n",
			want:  "open\t開放 | 開け放す | 開く | オープン\n",
		},
		"empty hints": {
			args:  []string{"find", "-s", system},
			stdin: "nothing\t\n",
			want:  "nothing\t\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := run(t, tc.stdin, tc.args...)
			if r.err != nil {
				t.Fatalf("find: %v", r.err)
			}
			if diff := cmp.Diff(tc.want, r.stdout); diff != "" {
				t.Errorf("find (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFind_force(t *testing.T) {
	t.Parallel()

	system := buildDict(t, testutil.SystemTable, "")
	stdin := "nothing\t6\nbad\tx\n開店\t6\n"

	r := run(t, stdin, "find", "-s", system)
	if !errors.Is(r.err, synonyms.ErrInconsistentDictionary) {
		t.Errorf("find: want: %v, got: %v", synonyms.ErrInconsistentDictionary, r.err)
	}

	r = run(t, stdin, "find", "-f", "-s", system)
	if r.err != nil {
		t.Fatalf("find -f: %v", r.err)
	}
	if diff := cmp.Diff("開店\t始業,営業開始,店開き,オープン,open\n", r.stdout); diff != "" {
		t.Errorf("find -f (-want, +got):\n%s", diff)
	}
	if got := strings.Count(r.stderr, "skipping query"); got != 2 {
		t.Errorf("find -f: want 2 warnings, got %d: %q", got, r.stderr)
	}
}

func TestFind_configAndFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	system := buildDict(t, testutil.SystemTable, "")
	user := buildDict(t, testutil.UserTable, "")
	cfg := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(`enable_verbs = true
synonym_delimiter = "/"

[[dictionaries]]
path = %q

[[dictionaries]]
path = %q
enable_trie = true
`, system, user)
	if err := os.WriteFile(cfg, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	input := filepath.Join(dir, "queries.txt")
	if err := os.WriteFile(input, []byte("open\n開店\t6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.tsv")

	r := run(t, "", "find", "-c", cfg, "-o", output, input)
	if r.err != nil {
		t.Fatalf("find: %v", r.err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "open\t開放/開け放す/開く/オープン\n" +
		"開店\t始業/営業開始/店開き/オープン/open\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("find (-want, +got):\n%s", diff)
	}

	// Dictionaries named by flags are added after the configured ones.
	r = run(t, "open\n", "find", "-c", cfg, "-s", system)
	if r.err != nil {
		t.Fatalf("find -s: %v", r.err)
	}
	if diff := cmp.Diff("open\t開店/始業/営業開始/店開き/オープン/開放\n", r.stdout); diff != "" {
		t.Errorf("find -s (-want, +got):\n%s", diff)
	}
}

func TestInfo(t *testing.T) {
	t.Parallel()

	system := buildDict(t, testutil.SystemTable, "system synonyms")

	r := run(t, "", "info", system)
	if r.err != nil {
		t.Fatalf("info: %v", r.err)
	}
	for _, want := range []string{"Dictionary", system, "system synonyms"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("info output %q does not contain %q", r.stdout, want)
		}
	}

	if r := run(t, "", "info", filepath.Join(t.TempDir(), "missing.dic")); r.err == nil {
		t.Errorf("info: want error, got nil")
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	system := buildDict(t, testutil.SystemTable, "")

	r := run(t, "", "group", system, "6")
	if r.err != nil {
		t.Fatalf("group: %v", r.err)
	}
	for _, want := range []string{"開店", "1/2", "alias", "alphabet", "(商売)"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("group output %q does not contain %q", r.stdout, want)
		}
	}
	if strings.Contains(r.stdout, "開放") {
		t.Errorf("group output %q contains group 100006", r.stdout)
	}

	r = run(t, "", "group", system)
	if r.err != nil {
		t.Fatalf("group: %v", r.err)
	}
	if !strings.Contains(r.stdout, "開放") {
		t.Errorf("group output %q does not contain every group", r.stdout)
	}

	if r := run(t, "", "group", system, "200"); r.err == nil {
		t.Errorf("group 200: want error, got nil")
	}
}

func TestGroup_invalidFlags(t *testing.T) {
	t.Parallel()

	path := buildDict(t, "1,1,0,,0,0,0,,a\n", "")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// The last record ends with its flags and an empty category. Set the
	// form to 7.
	b[len(b)-3] |= 7 << 2
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}

	r := run(t, "", "group", path)
	if r.err != nil {
		t.Fatalf("group: %v", r.err)
	}
	if !strings.Contains(r.stdout, "FormType(7)") {
		t.Errorf("group output %q does not contain %q", r.stdout, "FormType(7)")
	}
	if !strings.Contains(r.stderr, "invalid synonym flags") {
		t.Errorf("group stderr %q does not contain a warning", r.stderr)
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	system := buildDict(t, testutil.SystemTable, "")

	r := run(t, "", "prefix", "--offset", "2", system, "reopening")
	if r.err != nil {
		t.Fatalf("prefix: %v", r.err)
	}
	for _, want := range []string{"100006", "open"} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("prefix output %q does not contain %q", r.stdout, want)
		}
	}

	if r := run(t, "", "prefix", "--offset", "20", system, "open"); !errors.Is(r.err, ErrFlagParse) {
		t.Errorf("prefix: want: %v, got: %v", ErrFlagParse, r.err)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--version")
	if r.err != nil {
		t.Fatalf("--version: %v", r.err)
	}
	if r.stdout == "" {
		t.Errorf("--version: want output, got none")
	}
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		line string
		word string
		ids  []int32
		err  error
	}{
		"word": {
			line: "open",
			word: "open",
		},
		"hints": {
			line: "open\t6,100006",
			word: "open",
			ids:  []int32{6, 100006},
		},
		"empty hints": {
			line: "open\t",
			word: "open",
			ids:  []int32{},
		},
		"bad hint": {
			line: "open\t6,x",
			err:  ErrQuery,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			word, ids, err := parseQuery(tc.line)
			if !errors.Is(err, tc.err) {
				t.Fatalf("parseQuery(%q) error: want: %v, got: %v", tc.line, tc.err, err)
			}
			if got, want := word, tc.word; got != want {
				t.Errorf("parseQuery(%q) word: want: %q, got: %q", tc.line, want, got)
			}
			if diff := cmp.Diff(tc.ids, ids); diff != "" {
				t.Errorf("parseQuery(%q) ids (-want, +got):\n%s", tc.line, diff)
			}
		})
	}
}
