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

// Package rows contains functions to work with aligned rows, the representation that's produced by
// sidediff.Align. It only needs to know which rows contain changes.
package rows

import "iter"

// Hunk describes a sequence of consecutive rows: rows[Start:End].
type Hunk struct {
	Start, End int
}

// Hunks groups the changed rows in rows[0:n] into hunks. Every hunk includes up to context
// unchanged rows before the first and after the last change. Hunks that would overlap or touch
// are merged.
func Hunks(n int, changed func(i int) bool, context int) iter.Seq[Hunk] {
	context = max(0, context)
	return func(yield func(Hunk) bool) {
		start := -1 // start of the current hunk
		last := -1  // last changed row in the current hunk
		for i := range n {
			if changed(i) {
				if start < 0 {
					start = max(0, i-context)
				}
				last = i
				continue
			}
			// Active in-progress hunk and we've seen enough unchanged rows that the next change
			// can't share the context, finish the hunk.
			if start >= 0 && i-last > 2*context {
				if !yield(Hunk{start, last + 1 + context}) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(Hunk{start, min(n, last+1+context)})
		}
	}
}
