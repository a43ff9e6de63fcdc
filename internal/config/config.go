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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// sidediff.Option and textdiff.FormatOption.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, elements that are very frequent in the right input are not used as anchors for the
	// longest match search.
	AutoJunk bool

	// If set, textdiff compares lines with runs of whitespace collapsed and leading and trailing
	// whitespace removed.
	IgnoreWhitespace bool
}

// Default is the default configuration.
var Default = Config{
	AutoJunk:         false,
	IgnoreWhitespace: false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the function they are passed to.
type Flag int

const (
	AutoJunk Flag = 1 << iota
	IgnoreWhitespace
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case AutoJunk:
		return "sidediff.AutoJunk"
	case IgnoreWhitespace:
		return "textdiff.IgnoreWhitespace"
	default:
		panic("never reached")
	}
}

// ColorConfig holds the ANSI escape sequences used to color side-by-side output.
type ColorConfig struct {
	Header     string // file names
	HunkHeader string // "@@ ... @@" lines between hunks
	Dim        string // line numbers of matching rows
	Delete     string // deleted lines and the left side of replaced lines
	Insert     string // inserted lines and the right side of replaced lines
	Change     string // number of changed lines in statistics
	Reset      string
}

// DefaultColors is the default color palette.
var DefaultColors = ColorConfig{
	Header:     "\033[1m",
	HunkHeader: "\033[36m",
	Dim:        "\033[2m",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
	Change:     "\033[33m",
	Reset:      "\033[0m",
}

// FormatConfig collects all configurable parameters for rendering a side-by-side diff.
type FormatConfig struct {
	// Total output width in terminal cells.
	Width int

	// Number of matching rows shown around changes. A negative value shows all rows.
	Context int

	// Names shown in the header. If both are empty, no header is written.
	NameX, NameY string

	// Colors, nil if output is not colored.
	Colors *ColorConfig
}

// DefaultFormat is the default rendering configuration.
var DefaultFormat = FormatConfig{
	Width:   120,
	Context: -1,
}

// FormatOption is the mechanism used to expose the rendering configuration to users.
type FormatOption func(*FormatConfig)

// FromFormatOptions creates a rendering configuration from a set of options.
func FromFormatOptions(opts []FormatOption) FormatConfig {
	cfg := DefaultFormat
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
