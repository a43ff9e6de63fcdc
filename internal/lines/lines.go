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

// Package lines turns raw file contents into the lines that are compared.
package lines

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode returns data as a string. If data is not valid UTF-8, it's decoded as Latin-1 instead,
// which never fails because every byte is a valid Latin-1 character.
func Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		panic("never reached")
	}
	return string(out)
}

// Split splits s into lines. "\n", "\r\n" and "\r" all terminate a line and are not part of the
// returned lines. A terminator at the very end of s doesn't start another line.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	n := strings.Count(s, "\n") + strings.Count(s, "\r") - strings.Count(s, "\r\n")
	if !strings.HasSuffix(s, "\n") && !strings.HasSuffix(s, "\r") {
		n++
	}
	a := make([]string, 0, n)
	for len(s) > 0 {
		m := strings.IndexAny(s, "\r\n")
		if m < 0 {
			a = append(a, s)
			break
		}
		a = append(a, s[:m])
		if s[m] == '\r' && m+1 < len(s) && s[m+1] == '\n' {
			m++
		}
		s = s[m+1:]
	}
	return a
}

// Normalize collapses all runs of whitespace in s into a single space and removes leading and
// trailing whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeAll applies [Normalize] to every line. The input is not modified.
func NormalizeAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Normalize(l)
	}
	return out
}
