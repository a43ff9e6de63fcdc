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

// sidediff compares two files line by line and prints them side by side.
//
// Usage:
//
//	sidediff [flags] file1 file2
//
// The exit status is 0 if the files are identical, 1 if they differ and 2 if an error occurred.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"znkr.io/sidediff"
	"znkr.io/sidediff/textdiff"
)

const defaultWidth = 120

type config struct {
	ignoreWhitespace bool
	context          int
	color            bool
	width            int
	stats            bool
	autojunk         bool
	timeout          time.Duration
	maxLines         int
}

func main() {
	var cfg config
	var noColor bool
	flag.BoolVar(&cfg.ignoreWhitespace, "w", false, "ignore whitespace differences")
	flag.BoolVar(&cfg.ignoreWhitespace, "ignore-whitespace", false, "ignore whitespace differences")
	flag.IntVar(&cfg.context, "c", -1, "number of matching lines to show around changes, all lines if <0")
	flag.IntVar(&cfg.context, "context", -1, "number of matching lines to show around changes, all lines if <0")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.IntVar(&cfg.width, "width", defaultWidth, "output width, terminal width if 0")
	flag.BoolVar(&cfg.stats, "s", false, "show statistics")
	flag.BoolVar(&cfg.stats, "stats", false, "show statistics")
	flag.BoolVar(&cfg.autojunk, "autojunk", false, "ignore very frequent lines when searching for matches")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "abort the comparison after this duration, no limit if 0")
	flag.IntVar(&cfg.maxLines, "max-lines", 0, "refuse to compare files with more lines, no limit if 0")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: sidediff [flags] file1 file2\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: expected 2 files, got %d arguments\n", flag.NArg())
		flag.Usage()
		os.Exit(2)
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	cfg.color = !noColor && isTerminal
	if cfg.width <= 0 {
		cfg.width = defaultWidth
		if isTerminal {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				cfg.width = w
			}
		}
	}

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	differ, err := run(ctx, &cfg, flag.Arg(0), flag.Arg(1), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if differ {
		os.Exit(1)
	}
}

// run compares the files x and y, writes the result to w, and reports whether the files differ.
func run(ctx context.Context, cfg *config, x, y string, w io.Writer) (differ bool, err error) {
	var xlines, ylines []string
	var g errgroup.Group
	g.Go(func() error {
		var err error
		xlines, err = load(x, cfg.maxLines)
		return err
	})
	g.Go(func() error {
		var err error
		ylines, err = load(y, cfg.maxLines)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, err
	}

	var opts []sidediff.Option
	if cfg.ignoreWhitespace {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}
	if cfg.autojunk {
		opts = append(opts, sidediff.AutoJunk())
	}
	res, err := compare(ctx, xlines, ylines, opts)
	if err != nil {
		return false, err
	}

	fopts := []textdiff.FormatOption{
		textdiff.Width(cfg.width),
		textdiff.Names(filepath.Base(x), filepath.Base(y)),
	}
	if cfg.context >= 0 {
		fopts = append(fopts, textdiff.Context(cfg.context))
	}
	if cfg.color {
		fopts = append(fopts, textdiff.TerminalColors())
	}
	if err := textdiff.Format(w, res, fopts...); err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}
	if cfg.stats {
		if err := textdiff.FormatStats(w, res.Stats(), fopts...); err != nil {
			return false, fmt.Errorf("writing output: %w", err)
		}
	}
	return !res.Identical(), nil
}

func load(name string, maxLines int) ([]string, error) {
	lines, err := textdiff.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if maxLines > 0 && len(lines) > maxLines {
		return nil, fmt.Errorf("%s has %d lines, the limit is %d", name, len(lines), maxLines)
	}
	return lines, nil
}

// compare runs the comparison until it's done or ctx is done. The comparison itself can't be
// interrupted, if ctx is done first, it continues in the background until it finishes.
func compare(ctx context.Context, x, y []string, opts []sidediff.Option) (sidediff.Result, error) {
	if err := ctx.Err(); err != nil {
		return sidediff.Result{}, fmt.Errorf("comparison aborted: %w", err)
	}
	done := make(chan sidediff.Result, 1)
	go func() {
		done <- textdiff.CompareLines(x, y, opts...)
	}()
	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		return sidediff.Result{}, fmt.Errorf("comparison aborted: %w", ctx.Err())
	}
}
