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

// Package textdiff provides functions to compare text line by line and to present the result side
// by side.
package textdiff

import (
	"fmt"
	"os"

	"znkr.io/sidediff"
	"znkr.io/sidediff/internal/config"
	"znkr.io/sidediff/internal/lines"
)

// Compare splits x and y into lines and compares them.
//
// Lines end with "\n", "\r\n" or "\r"; line terminators are not part of the result. A terminator
// at the end of the input doesn't start a new line.
//
// The following options are supported: [sidediff.AutoJunk], [IgnoreWhitespace]
func Compare(x, y string, opts ...sidediff.Option) sidediff.Result {
	return CompareLines(lines.Split(x), lines.Split(y), opts...)
}

// CompareLines compares the lines in x and y. Lines must not contain line terminators.
//
// The following options are supported: [sidediff.AutoJunk], [IgnoreWhitespace]
func CompareLines(x, y []string, opts ...sidediff.Option) sidediff.Result {
	cfg := config.FromOptions(opts, config.AutoJunk|config.IgnoreWhitespace)

	// The comparison uses normalized lines, but the result shows the original lines.
	mx, my := x, y
	if cfg.IgnoreWhitespace {
		mx, my = lines.NormalizeAll(x), lines.NormalizeAll(y)
	}
	var mopts []sidediff.Option
	if cfg.AutoJunk {
		mopts = append(mopts, sidediff.AutoJunk())
	}
	return sidediff.Align(x, y, sidediff.Match(mx, my, mopts...))
}

// ReadFile reads the named file and splits it into lines as described in [Compare].
//
// Files that are not valid UTF-8 are decoded as Latin-1.
func ReadFile(name string) ([]string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines.Split(lines.Decode(data)), nil
}
