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
	"iter"

	"znkr.io/sidediff/internal/rows"
)

// Hunk describes a sequence of consecutive rows of a [Result] that contains changes and some
// surrounding context.
type Hunk struct {
	Start, End  int    // Start and end row in the result.
	Left, Right []Line // Rows Start to End of the left and right side.
}

// Hunks groups the changed rows of r into hunks.
//
// Every hunk contains a contiguous block of changed rows along with up to context unchanged rows
// before and after it. Hunks whose context would overlap are merged. A negative context is
// treated as 0.
//
// If r contains no changes, the sequence is empty.
func (r Result) Hunks(context int) iter.Seq[Hunk] {
	changed := func(i int) bool { return r.Left[i].Kind != Equal }
	return func(yield func(Hunk) bool) {
		for h := range rows.Hunks(r.Len(), changed, context) {
			hunk := Hunk{
				Start: h.Start,
				End:   h.End,
				Left:  r.Left[h.Start:h.End:h.End],
				Right: r.Right[h.Start:h.End:h.End],
			}
			if !yield(hunk) {
				return
			}
		}
	}
}
