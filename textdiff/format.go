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
	"fmt"
	"io"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
	"znkr.io/sidediff"
	"znkr.io/sidediff/internal/config"
)

const (
	minWidth  = 23 // leaves room for a line number, a marker and an ellipsis on each side
	separator = " | "
	ellipsis  = "..."
	tabWidth  = 4
)

// Format writes res side by side to w. Every row of res becomes one line of output: The left side
// is padded to half the width, followed by " | " and the right side.
//
// Every side starts with the line number and a marker for the kind of change ("-" for deleted
// lines, "+" for inserted lines and "~" for replaced lines). Padding rows are empty.
//
// The following options are supported: [Width], [Context], [Names], [TerminalColors]
func Format(w io.Writer, res sidediff.Result, opts ...FormatOption) error {
	f := newFormatter(opts)
	f.format(res)
	_, err := w.Write(f.buf.Bytes())
	return err
}

// SideBySide returns res formatted as described in [Format].
//
// The following options are supported: [Width], [Context], [Names], [TerminalColors]
func SideBySide(res sidediff.Result, opts ...FormatOption) string {
	f := newFormatter(opts)
	f.format(res)
	return f.buf.String()
}

// FormatStats writes a summary of s to w.
//
// The following option is supported: [TerminalColors]
func FormatStats(w io.Writer, s sidediff.Stats, opts ...FormatOption) error {
	f := newFormatter(opts)
	f.stats(s)
	_, err := w.Write(f.buf.Bytes())
	return err
}

type formatter struct {
	cfg  config.FormatConfig
	cc   config.ColorConfig // zero value if colors are disabled
	half int                // width of each side
	cond *runewidth.Condition
	buf  bytes.Buffer
}

func newFormatter(opts []FormatOption) *formatter {
	cfg := config.FromFormatOptions(opts)
	f := &formatter{
		cfg:  cfg,
		half: (max(minWidth, cfg.Width) - len(separator)) / 2,
		cond: runewidth.NewCondition(),
	}
	f.cond.EastAsianWidth = false
	f.cond.StrictEmojiNeutral = true
	if cfg.Colors != nil {
		f.cc = *cfg.Colors
	}
	return f
}

func (f *formatter) format(res sidediff.Result) {
	if f.cfg.NameX != "" || f.cfg.NameY != "" {
		f.header()
	}
	if f.cfg.Context < 0 {
		for i := range res.Len() {
			f.row(res.Left[i], res.Right[i])
		}
		return
	}
	for h := range res.Hunks(f.cfg.Context) {
		f.hunkHeader(res, h)
		for i := range h.Left {
			f.row(h.Left[i], h.Right[i])
		}
	}
}

func (f *formatter) header() {
	left := "< " + f.cfg.NameX
	f.style(f.cc.Header, left+strings.Repeat(" ", max(0, f.half-f.width(left))))
	f.buf.WriteString(separator)
	f.style(f.cc.Header, "> "+f.cfg.NameY)
	f.buf.WriteByte('\n')
	f.buf.WriteString(strings.Repeat("=", max(minWidth, f.cfg.Width)))
	f.buf.WriteByte('\n')
}

// hunkHeader writes a header for h similar to the ones in unified diffs. For a side without any
// lines in h, the start is the line before the hunk.
func (f *formatter) hunkHeader(res sidediff.Result, h sidediff.Hunk) {
	l, n := span(res.Left, h.Start, h.Left)
	r, m := span(res.Right, h.Start, h.Right)
	f.style(f.cc.HunkHeader, fmt.Sprintf("@@ -%d,%d +%d,%d @@", l, n, r, m))
	f.buf.WriteByte('\n')
}

// span returns the first line number and the number of lines in hunk, which starts at row start in
// all.
func span(all []sidediff.Line, start int, hunk []sidediff.Line) (first, n int) {
	for _, l := range hunk {
		if l.IsPadding() {
			continue
		}
		if n == 0 {
			first = l.Num
		}
		n++
	}
	if n > 0 {
		return first, n
	}
	for i := start - 1; i >= 0; i-- {
		if !all[i].IsPadding() {
			return all[i].Num, 0
		}
	}
	return 0, 0
}

func (f *formatter) row(left, right sidediff.Line) {
	w := f.cell(left, true)
	f.buf.WriteString(strings.Repeat(" ", max(0, f.half-w)))
	if right.IsPadding() {
		// Avoid trailing whitespace.
		f.buf.WriteString(strings.TrimRight(separator, " "))
	} else {
		f.buf.WriteString(separator)
		f.cell(right, false)
	}
	f.buf.WriteByte('\n')
}

// cell writes one side of a row and returns its width in terminal cells.
func (f *formatter) cell(l sidediff.Line, left bool) int {
	if l.IsPadding() {
		return 0
	}

	var marker, code string
	switch l.Kind {
	case sidediff.Equal:
		// no marker, no color
	case sidediff.Delete:
		marker, code = "- ", f.cc.Delete
	case sidediff.Insert:
		marker, code = "+ ", f.cc.Insert
	case sidediff.Replace:
		marker, code = "~ ", f.cc.Insert
		if left {
			code = f.cc.Delete
		}
	default:
		panic("never reached")
	}
	numCode := code
	if l.Kind == sidediff.Equal {
		numCode = f.cc.Dim
	}

	num := fmt.Sprintf("%4d", l.Num)
	content := f.expandTabs(l.Content)
	budget := f.half - len(num) - 1 - len(marker)
	if f.width(content) > budget {
		content = f.truncate(content, budget-len(ellipsis)) + ellipsis
	}

	f.style(numCode, num)
	rest := marker + content
	if content == "" {
		rest = strings.TrimSpace(marker)
	}
	if rest == "" {
		return len(num)
	}
	f.buf.WriteByte(' ')
	f.style(code, rest)
	return len(num) + 1 + f.width(rest)
}

func (f *formatter) stats(s sidediff.Stats) {
	f.buf.WriteByte('\n')
	f.style(f.cc.Header, "Statistics:")
	f.buf.WriteByte('\n')
	f.buf.WriteString("  Lines added:     ")
	f.style(f.cc.Insert, fmt.Sprint(s.Added))
	f.buf.WriteString("\n  Lines deleted:   ")
	f.style(f.cc.Delete, fmt.Sprint(s.Deleted))
	f.buf.WriteString("\n  Lines changed:   ")
	f.style(f.cc.Change, fmt.Sprintf("%d left, %d right", s.ChangedLeft, s.ChangedRight))
	fmt.Fprintf(&f.buf, "\n  Lines unchanged: %d\n", s.Unchanged)
}

// style writes s, wrapped in the escape sequence code if colors are enabled.
func (f *formatter) style(code, s string) {
	if code == "" || s == "" {
		f.buf.WriteString(s)
		return
	}
	f.buf.WriteString(code)
	f.buf.WriteString(s)
	f.buf.WriteString(f.cc.Reset)
}

// width returns the width of s in terminal cells.
func (f *formatter) width(s string) int {
	return f.cond.StringWidth(s)
}

// truncate returns the longest prefix of s that fits into w cells without splitting grapheme
// clusters.
func (f *formatter) truncate(s string, w int) string {
	iter := graphemes.FromString(s)
	width := 0
	for iter.Next() {
		width += f.cond.StringWidth(iter.Value())
		if width > w {
			return s[:iter.Start()]
		}
	}
	return s
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func (f *formatter) expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for {
		i := strings.IndexByte(s, '\t')
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:i])
		col += f.width(s[:i])
		n := tabWidth - col%tabWidth
		sb.WriteString(strings.Repeat(" ", n))
		col += n
		s = s[i+1:]
	}
}
