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

// Package sidediff compares two sequences of lines and aligns them for side-by-side display.
//
// The main functions are [Match], which classifies the differences between two sequences into
// a sequence of [Op]s, and [Align], which expands these operations into two parallel sequences of
// [Line]s of equal length. Row i of the left sequence belongs next to row i of the right sequence;
// where one side has no corresponding line, it gets a padding row. [Compare] combines both steps.
//
// The comparison uses the longest matching block approach known from Python's difflib (going back
// to Ratcliff and Obershelp). It doesn't produce minimal diffs, but the output tends to look right
// to people and it's stable: the same inputs always produce the same output.
//
// Performance: The expected time complexity is quadratic in the worst case and linear in the best
// case, space complexity is O(N). Inputs with many repeated lines are the most expensive; the
// [AutoJunk] option limits the cost for these inputs.
//
// Note: For a comparison of whole texts and a terminal renderer, please see
// [znkr.io/sidediff/textdiff].
//
// [znkr.io/sidediff/textdiff]: https://pkg.go.dev/znkr.io/sidediff/textdiff
package sidediff
