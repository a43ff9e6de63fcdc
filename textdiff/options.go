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
	"znkr.io/sidediff"
	"znkr.io/sidediff/internal/config"
	"znkr.io/sidediff/textdiff/color"
)

// IgnoreWhitespace compares lines with all runs of whitespace collapsed into a single space and
// with leading and trailing whitespace removed.
//
// Only the comparison is affected. The resulting lines keep their original content and line
// numbers.
func IgnoreWhitespace() sidediff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// FormatOption configures the output of [Format] and [SideBySide].
type FormatOption = config.FormatOption

// Width sets the total width of the output in terminal cells. Both sides get half of the width
// minus the separator. Lines that don't fit are truncated. The default is 120, the minimum is 23.
func Width(n int) FormatOption {
	return func(cfg *config.FormatConfig) {
		cfg.Width = max(minWidth, n)
	}
}

// Context limits the output to changed rows and n matching rows around them. Groups of changes
// are separated by a "@@ -l,n +r,m @@" line. By default, all rows are shown.
func Context(n int) FormatOption {
	return func(cfg *config.FormatConfig) {
		cfg.Context = max(0, n)
	}
}

// Names adds a header with the names of both inputs to the output.
func Names(x, y string) FormatOption {
	return func(cfg *config.FormatConfig) {
		cfg.NameX, cfg.NameY = x, y
	}
}

// TerminalColors enables colored output using ANSI escape sequences. Without any options, a
// default palette is used. The palette can be modified by passing options from
// [znkr.io/sidediff/textdiff/color].
func TerminalColors(opts ...color.Option) FormatOption {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.FormatConfig) {
		cfg.Colors = &cc
	}
}
