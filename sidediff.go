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

package sidediff

import (
	"fmt"

	"znkr.io/sidediff/internal/config"
	"znkr.io/sidediff/internal/matcher"
)

// Kind describes the kind of an operation or of an aligned row.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Equal   Kind = iota // Matching elements on both sides
	Delete              // Elements that only exist on the left side
	Insert              // Elements that only exist on the right side
	Replace             // Elements on the left side that were replaced by elements on the right side
)

// Op describes a single operation that turns a[I1:I2] into b[J1:J2].
//
//   - For Equal, both ranges have the same length and all elements match.
//   - For Delete, I1 < I2 and J1 == J2.
//   - For Insert, I1 == I2 and J1 < J2.
//   - For Replace, both ranges are non-empty.
type Op struct {
	Kind   Kind
	I1, I2 int // Range in a
	J1, J2 int // Range in b
}

// Line is one row on one side of an aligned result.
type Line struct {
	Num     int    // 1-based line number in the input or 0 for a padding row
	Content string // Line content, always empty for padding rows
	Kind    Kind
}

// IsPadding reports whether l is a placeholder without a corresponding input line.
func (l Line) IsPadding() bool { return l.Num == 0 }

// Result is the aligned, side-by-side representation of a comparison. Left and Right always have
// the same length, Left[i] and Right[i] form one visual row.
type Result struct {
	Left, Right []Line
}

// Len returns the number of rows in r.
func (r Result) Len() int { return len(r.Left) }

// Identical reports whether r contains no differences.
func (r Result) Identical() bool {
	for _, l := range r.Left {
		if l.Kind != Equal {
			return false
		}
	}
	for _, l := range r.Right {
		if l.Kind != Equal {
			return false
		}
	}
	return true
}

// Match compares the contents of a and b and returns the operations necessary to convert from
// one to the other.
//
// The operations cover a and b entirely and in order. Matching runs become Equal operations and
// every gap between them becomes exactly one Delete, Insert or Replace operation. If a and b are
// identical and not empty, the output is a single Equal operation. If both are empty, the output
// is empty.
//
// The following option is supported: [AutoJunk]
func Match[T comparable](a, b []T, opts ...Option) []Op {
	cfg := config.FromOptions(opts, config.AutoJunk)
	return match(a, b, cfg)
}

func match[T comparable](a, b []T, cfg config.Config) []Op {
	opcodes := matcher.Opcodes(matcher.New(a, b, cfg.AutoJunk).Blocks())
	if len(opcodes) == 0 {
		return nil
	}
	ops := make([]Op, len(opcodes))
	for i, op := range opcodes {
		ops[i] = Op{
			Kind: kindOf(op.Tag),
			I1:   op.I1,
			I2:   op.I2,
			J1:   op.J1,
			J2:   op.J2,
		}
	}
	return ops
}

func kindOf(tag matcher.Tag) Kind {
	switch tag {
	case matcher.Equal:
		return Equal
	case matcher.Delete:
		return Delete
	case matcher.Insert:
		return Insert
	case matcher.Replace:
		return Replace
	default:
		panic("never reached")
	}
}

// Align expands ops into two parallel sequences of lines.
//
// Every operation produces max(I2-I1, J2-J1) rows. Delete and Insert operations are padded on the
// side without content. For Replace operations, the lines of both sides are paired up in order
// and the shorter side is padded at the end.
//
// a and b are used for the line contents only. They may differ from the inputs given to [Match],
// e.g., if the comparison was done on normalized lines, but they must have the same length.
//
// Align panics if ops doesn't cover a and b in order or if an operation is inconsistent with its
// kind.
func Align(a, b []string, ops []Op) Result {
	// Validate and compute the number of rows, this is relatively cheap and allows us to
	// preallocate the return values.
	n := 0
	i, j := 0, 0
	for k, op := range ops {
		if err := check(op, i, j); err != nil {
			panic(fmt.Sprintf("sidediff.Align: invalid operation %d %+v: %v", k, op, err))
		}
		n += max(op.I2-op.I1, op.J2-op.J1)
		i, j = op.I2, op.J2
	}
	if i != len(a) || j != len(b) {
		panic(fmt.Sprintf("sidediff.Align: operations cover a[:%d] and b[:%d], want a[:%d] and b[:%d]", i, j, len(a), len(b)))
	}
	if n == 0 {
		return Result{}
	}

	left := make([]Line, 0, n)
	right := make([]Line, 0, n)
	for _, op := range ops {
		switch op.Kind {
		case Equal:
			for k := range op.I2 - op.I1 {
				left = append(left, Line{op.I1 + k + 1, a[op.I1+k], Equal})
				right = append(right, Line{op.J1 + k + 1, b[op.J1+k], Equal})
			}
		case Delete:
			for k := range op.I2 - op.I1 {
				left = append(left, Line{op.I1 + k + 1, a[op.I1+k], Delete})
				right = append(right, Line{Kind: Delete})
			}
		case Insert:
			for k := range op.J2 - op.J1 {
				left = append(left, Line{Kind: Insert})
				right = append(right, Line{op.J1 + k + 1, b[op.J1+k], Insert})
			}
		case Replace:
			for k := range max(op.I2-op.I1, op.J2-op.J1) {
				l := Line{Kind: Replace}
				if op.I1+k < op.I2 {
					l = Line{op.I1 + k + 1, a[op.I1+k], Replace}
				}
				r := Line{Kind: Replace}
				if op.J1+k < op.J2 {
					r = Line{op.J1 + k + 1, b[op.J1+k], Replace}
				}
				left = append(left, l)
				right = append(right, r)
			}
		}
	}
	return Result{Left: left, Right: right}
}

// check verifies that op starts at a[i] and b[j] and is consistent with its kind.
func check(op Op, i, j int) error {
	if op.I1 != i || op.J1 != j {
		return fmt.Errorf("starts at (%d, %d), want (%d, %d)", op.I1, op.J1, i, j)
	}
	if op.I2 < op.I1 || op.J2 < op.J1 {
		return fmt.Errorf("negative range")
	}
	dx, dy := op.I2-op.I1, op.J2-op.J1
	switch op.Kind {
	case Equal:
		if dx != dy {
			return fmt.Errorf("ranges of different length")
		}
	case Delete:
		if dx == 0 || dy != 0 {
			return fmt.Errorf("delete must have an empty range in b only")
		}
	case Insert:
		if dx != 0 || dy == 0 {
			return fmt.Errorf("insert must have an empty range in a only")
		}
	case Replace:
		if dx == 0 || dy == 0 {
			return fmt.Errorf("replace must have non-empty ranges")
		}
	default:
		return fmt.Errorf("unknown kind %v", op.Kind)
	}
	return nil
}

// Compare compares the contents of a and b and returns them aligned side by side.
//
// It's equivalent to Align(a, b, Match(a, b, opts...)).
//
// The following option is supported: [AutoJunk]
func Compare(a, b []string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.AutoJunk)
	return Align(a, b, match(a, b, cfg))
}
