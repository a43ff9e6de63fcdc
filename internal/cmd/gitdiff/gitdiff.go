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

// gitdiff renders side-by-side comparisons for git using GIT_EXTERNAL_DIFF.
//
// git invokes the command once per changed file with seven arguments:
//
//	path old-file old-hex old-mode new-file new-hex new-mode
//
// Use it like this:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff
//
// The output is limited to three lines of context around each change and fills the terminal if
// stdout is one.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"znkr.io/sidediff/textdiff"
)

const defaultWidth = 120

func main() {
	width := defaultWidth
	colors := false
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		colors = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	if err := run(os.Args, os.Stdout, width, colors); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, w io.Writer, width int, colors bool) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, newFile, newHex, newMode := args[1], args[2], args[3], args[5], args[6], args[7]

	old, err := load(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %w", err)
	}
	new, err := load(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %w", err)
	}

	res := textdiff.CompareLines(old, new)
	if res.Identical() {
		return nil
	}

	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", short(oldHex), short(newHex), newMode)

	opts := []textdiff.FormatOption{
		textdiff.Width(width),
		textdiff.Context(3),
		textdiff.Names("a/"+path, "b/"+path),
	}
	if colors {
		opts = append(opts, textdiff.TerminalColors())
	}
	return textdiff.Format(w, res, opts...)
}

// load reads a file, treating /dev/null as an empty file on every platform.
func load(name string) ([]string, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	return textdiff.ReadFile(name)
}

func short(hex string) string {
	return hex[:min(10, len(hex))]
}
