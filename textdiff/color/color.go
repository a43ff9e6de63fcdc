// Package color provides configuration for coloring side-by-side diffs using ANSI escape
// sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents deleted lines in bold red:
//
//	Deletes(1, 31)
//
// This is equivalent to the following raw ANSI sequence: \033[1;31m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"strconv"
	"strings"

	"znkr.io/sidediff/internal/config"
)

// A Option makes it possible to configure custom colors in [textdiff.TerminalColors].
//
// [textdiff.TerminalColors]: https://pkg.go.dev/znkr.io/sidediff/textdiff#TerminalColors
type Option func(*config.ColorConfig)

// Headers colors the file names at the top of the output.
func Headers(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Header })
}

// HunkHeaders colors hunk headers, the "@@ ... @@" lines between hunks.
func HunkHeaders(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.HunkHeader })
}

// Dim colors line numbers of matching lines.
func Dim(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Dim })
}

// Deletes colors deleted lines and the left side of replaced lines.
func Deletes(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Delete })
}

// Inserts colors inserted lines and the right side of replaced lines.
func Inserts(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Insert })
}

// Changes colors the number of changed lines in statistics.
func Changes(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Change })
}

func set(params []int, field func(*config.ColorConfig) *string) Option {
	code := sgr(params)
	return func(cc *config.ColorConfig) {
		*field(cc) = code
	}
}

// sgr returns the escape sequence "ESC [ p1 ; p2 ; ... m".
func sgr(params []int) string {
	ps := make([]string, len(params))
	for i, p := range params {
		ps[i] = strconv.Itoa(p)
	}
	return "\033[" + strings.Join(ps, ";") + "m"
}
