// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package textdiff

import (
	"bytes"
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"znkr.io/sidediff"
)

var update = flag.Bool("update", false, "update golden files")

func TestSideBySide(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					t.Parallel()
					res := Compare(string(tt.x), string(tt.y), st.opts...)
					got := SideBySide(res, st.fopts...)
					if diff := cmp.Diff(st.want, got); diff != "" {
						t.Errorf("SideBySide(...) result are different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", got, st.want, diff)
					}
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to makes sure to runs after the subtests have finished.
			t.Cleanup(func() {
				if *update {
					ar := &txtar.Archive{Comment: tt.comment}
					ar.Files = append(ar.Files, txtar.File{Name: "x", Data: tt.x}, txtar.File{Name: "y", Data: tt.y})
					for _, st := range tt.subtests {
						data := append(bytes.Clone(st.pragmas), st.want...)
						ar.Files = append(ar.Files, txtar.File{Name: "sidebyside", Data: data})
					}
					if err := os.WriteFile(tt.filename, txtar.Format(ar), 0o644); err != nil {
						t.Fatalf("error writing golden file: %v", err)
					}
				}
			})
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		x, y      string
		opts      []sidediff.Option
		wantLeft  []sidediff.Line
		wantRight []sidediff.Line
	}{
		{
			name: "empty",
		},
		{
			name: "identical",
			x:    "a\nb\n",
			y:    "a\nb",
			wantLeft: []sidediff.Line{
				{Num: 1, Content: "a", Kind: sidediff.Equal},
				{Num: 2, Content: "b", Kind: sidediff.Equal},
			},
			wantRight: []sidediff.Line{
				{Num: 1, Content: "a", Kind: sidediff.Equal},
				{Num: 2, Content: "b", Kind: sidediff.Equal},
			},
		},
		{
			name: "line-endings",
			x:    "a\r\nb\r\n",
			y:    "a\nc\n",
			wantLeft: []sidediff.Line{
				{Num: 1, Content: "a", Kind: sidediff.Equal},
				{Num: 2, Content: "b", Kind: sidediff.Replace},
			},
			wantRight: []sidediff.Line{
				{Num: 1, Content: "a", Kind: sidediff.Equal},
				{Num: 2, Content: "c", Kind: sidediff.Replace},
			},
		},
		{
			name: "whitespace-matters",
			x:    "a  b\n",
			y:    "a b\n",
			wantLeft: []sidediff.Line{
				{Num: 1, Content: "a  b", Kind: sidediff.Replace},
			},
			wantRight: []sidediff.Line{
				{Num: 1, Content: "a b", Kind: sidediff.Replace},
			},
		},
		{
			name: "ignore-whitespace-keeps-original-content",
			x:    "a  b\n\tc\n",
			y:    "a b\nc  \nd\n",
			opts: []sidediff.Option{IgnoreWhitespace()},
			wantLeft: []sidediff.Line{
				{Num: 1, Content: "a  b", Kind: sidediff.Equal},
				{Num: 2, Content: "\tc", Kind: sidediff.Equal},
				{Kind: sidediff.Insert},
			},
			wantRight: []sidediff.Line{
				{Num: 1, Content: "a b", Kind: sidediff.Equal},
				{Num: 2, Content: "c  ", Kind: sidediff.Equal},
				{Num: 3, Content: "d", Kind: sidediff.Insert},
			},
		},
		{
			name: "autojunk",
			x:    "a\nb\n",
			y:    "a\nb\n",
			opts: []sidediff.Option{sidediff.AutoJunk(), IgnoreWhitespace()},
			wantLeft: []sidediff.Line{
				{Num: 1, Content: "a", Kind: sidediff.Equal},
				{Num: 2, Content: "b", Kind: sidediff.Equal},
			},
			wantRight: []sidediff.Line{
				{Num: 1, Content: "a", Kind: sidediff.Equal},
				{Num: 2, Content: "b", Kind: sidediff.Equal},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.x, tt.y, tt.opts...)
			if diff := cmp.Diff(tt.wantLeft, got.Left); diff != "" {
				t.Errorf("Compare(...).Left result are different [-want,+got]:\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRight, got.Right); diff != "" {
				t.Errorf("Compare(...).Right result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{
			name: "empty",
			data: nil,
			want: nil,
		},
		{
			name: "utf8",
			data: []byte("grüße\nwelt\n"),
			want: []string{"grüße", "welt"},
		},
		{
			name: "latin1",
			data: []byte("gr\xfc\xdfe\r\nwelt"),
			want: []string{"grüße", "welt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(write(tt.name, tt.data))
			if err != nil {
				t.Fatalf("ReadFile(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadFile(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(dir, "does-not-exist"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(...) error = %v, want %v", err, fs.ErrNotExist)
		}
	})
}

func TestFormatColors(t *testing.T) {
	res := Compare("a\nb\nc\n", "a\nB\nc\nd\n")
	got := SideBySide(res, Width(31), TerminalColors())

	const (
		dim   = "\033[2m"
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)
	want := strings.Join([]string{
		dim + "   1" + reset + " a" + strings.Repeat(" ", 8) + " | " + dim + "   1" + reset + " a",
		red + "   2" + reset + " " + red + "~ b" + reset + strings.Repeat(" ", 6) + " | " + green + "   2" + reset + " " + green + "~ B" + reset,
		dim + "   3" + reset + " c" + strings.Repeat(" ", 8) + " | " + dim + "   3" + reset + " c",
		strings.Repeat(" ", 14) + " | " + green + "   4" + reset + " " + green + "+ d" + reset,
	}, "\n") + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SideBySide(...) result are different [-want,+got]:\n%s", diff)
	}
}

func TestFormatWideCharacters(t *testing.T) {
	// Every CJK character occupies two cells.
	res := Compare("世界世界世界\n", "世界世界世界\n")
	got := SideBySide(res, Width(23))
	want := "   1 世... |    1 世...\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SideBySide(...) result are different [-want,+got]:\n%s", diff)
	}
}

func TestFormatStats(t *testing.T) {
	s := Compare("a\nb\nc\n", "a\nB\nc\nd\n").Stats()

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		if err := FormatStats(&buf, s); err != nil {
			t.Fatalf("FormatStats(...) failed: %v", err)
		}
		want := "\nStatistics:\n" +
			"  Lines added:     1\n" +
			"  Lines deleted:   0\n" +
			"  Lines changed:   1 left, 1 right\n" +
			"  Lines unchanged: 2\n"
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("FormatStats(...) result are different [-want,+got]:\n%s", diff)
		}
	})

	t.Run("colors", func(t *testing.T) {
		var buf bytes.Buffer
		if err := FormatStats(&buf, s, TerminalColors()); err != nil {
			t.Fatalf("FormatStats(...) failed: %v", err)
		}
		want := "\n\033[1mStatistics:\033[0m\n" +
			"  Lines added:     \033[32m1\033[0m\n" +
			"  Lines deleted:   \033[31m0\033[0m\n" +
			"  Lines changed:   \033[33m1 left, 1 right\033[0m\n" +
			"  Lines unchanged: 2\n"
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("FormatStats(...) result are different [-want,+got]:\n%s", diff)
		}
	})
}

func BenchmarkSideBySide(b *testing.B) {
	for _, tt := range parseTests(b) {
		b.Run(tt.name, func(b *testing.B) {
			for _, st := range tt.subtests {
				b.Run(st.name, func(b *testing.B) {
					b.ReportAllocs()
					for b.Loop() {
						res := Compare(string(tt.x), string(tt.y), st.opts...)
						_ = SideBySide(res, st.fopts...)
					}
				})
			}
		})
	}
}

type test struct {
	name     string
	filename string
	comment  []byte
	x, y     []byte
	subtests []subtest
}

type subtest struct {
	name    string
	pragmas []byte
	opts    []sidediff.Option
	fopts   []FormatOption
	want    string
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(filename, "testdata/"), ".test")
		test := test{
			name:     name,
			filename: filename,
			comment:  ar.Comment,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = f.Data
			case "y":
				test.y = f.Data
			case "sidebyside":
				data := f.Data
				var st subtest
				var name []string
				i := 0
				for ; i < len(data); i++ {
					if data[i] != '#' {
						break
					}
					i++
					eol := i + bytes.IndexByte(data[i:], '\n')
					if eol < i {
						t.Fatal("failed to parse test case: missing newline after pragma line")
					}
					k, v, found := bytes.Cut(data[i:eol], []byte{':'})
					if !found {
						t.Fatal("failed to parse test case: missing ':' in pragma line")
					}
					switch k, v := strings.TrimSpace(string(k)), strings.TrimSpace(string(v)); k {
					case "ignore-whitespace":
						switch v {
						case "true":
							st.opts = append(st.opts, IgnoreWhitespace())
						case "false":
							// do nothing
						default:
							t.Fatalf("invalid value for ignore-whitespace: %q", v)
						}
						name = append(name, k)
					case "width":
						n, err := strconv.Atoi(v)
						if err != nil {
							t.Fatalf("invalid value for width: %v", err)
						}
						st.fopts = append(st.fopts, Width(n))
						name = append(name, k+"="+v)
					case "context":
						n, err := strconv.Atoi(v)
						if err != nil {
							t.Fatalf("invalid value for context: %v", err)
						}
						st.fopts = append(st.fopts, Context(n))
						name = append(name, k+"="+v)
					case "names":
						x, y, ok := strings.Cut(v, " ")
						if !ok {
							t.Fatalf("invalid value for names: %q", v)
						}
						st.fopts = append(st.fopts, Names(x, y))
						name = append(name, k)
					default:
						t.Fatalf("unknown option: %q", k)
					}
					i = eol
				}
				if len(name) == 0 {
					name = append(name, "default")
				}
				st.name = strings.Join(name, ",")
				st.pragmas = data[:i]
				st.want = string(data[i:])
				test.subtests = append(test.subtests, st)
			default:
				t.Fatalf("unknown file in test case: %q", f.Name)
			}
		}
		tests = append(tests, test)
	}
	return tests
}
