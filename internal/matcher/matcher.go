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

// Package matcher finds the matching blocks between two sequences and classifies the gaps between
// them.
//
// The algorithm is the one popularized by Python's difflib and goes back to Ratcliff and
// Obershelp's "gestalt pattern matching": Find the longest contiguous matching block, then apply
// the same idea to the pieces on the left and on the right of that block. This doesn't yield a
// minimal edit script, but it tends to produce matches that look right to people.
//
// Timing: The worst case is quadratic in the input size. The expected case depends on how many
// elements both inputs have in common, the best case is linear. Elements that appear very often
// in y are the main driver for the worst case, see [Matcher.AutoJunk].
package matcher

import (
	"cmp"
	"slices"
)

// Block describes a matching block: x[S:S+N] == y[T:T+N].
type Block struct {
	S, T, N int
}

// span is a pending search range x[s0:s1] × y[t0:t1].
type span struct {
	s0, s1, t0, t1 int
}

// Matcher holds the state necessary to find matching blocks between x and y.
//
// A Matcher is single use, create one with [New] for every pair of inputs.
type Matcher[T comparable] struct {
	x, y []T

	// Maps every element of y to the ascending list of positions where it appears in y. Popular
	// elements are removed if autojunk is enabled.
	index map[T][]int

	// Scratch buffers for the longest match search. lens[j+1] is the length of the match ending in
	// y[j] for the current (cur) or the previous (prev) element in x. The touched slices record
	// which entries need to be reset.
	prev, cur               []int
	prevTouched, curTouched []int
}

// New creates a new Matcher for x and y.
//
// If autojunk is set and y has at least 200 elements, elements that appear more than 1% of the
// time in y are considered popular and are not used to anchor matches. Matches are still extended
// across popular elements on both ends. This heuristic speeds up comparisons with many repeated
// elements (e.g., blank lines) considerably.
func New[T comparable](x, y []T, autojunk bool) *Matcher[T] {
	index := make(map[T][]int, len(y))
	for t, e := range y {
		index[e] = append(index[e], t)
	}

	if n := len(y); autojunk && n >= 200 {
		limit := n/100 + 1
		for e, ts := range index {
			if len(ts) > limit {
				delete(index, e)
			}
		}
	}

	return &Matcher[T]{
		x:     x,
		y:     y,
		index: index,
		prev:  make([]int, len(y)+1),
		cur:   make([]int, len(y)+1),
	}
}

// Blocks returns all matching blocks in ascending order. Adjacent blocks are merged. The last
// block is always the sentinel {len(x), len(y), 0}.
func (m *Matcher[T]) Blocks() []Block {
	var blocks []Block

	// Pending ranges are kept on an explicit stack instead of using recursion. The order in which
	// ranges are processed doesn't matter, because the blocks are sorted afterwards.
	stack := []span{{0, len(m.x), 0, len(m.y)}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b := m.longest(r)
		if b.N == 0 {
			continue
		}
		blocks = append(blocks, b)
		if r.s0 < b.S && r.t0 < b.T {
			stack = append(stack, span{r.s0, b.S, r.t0, b.T})
		}
		if b.S+b.N < r.s1 && b.T+b.N < r.t1 {
			stack = append(stack, span{b.S + b.N, r.s1, b.T + b.N, r.t1})
		}
	}

	slices.SortFunc(blocks, func(a, b Block) int {
		if c := cmp.Compare(a.S, b.S); c != 0 {
			return c
		}
		return cmp.Compare(a.T, b.T)
	})

	// Merge adjacent blocks. This can only happen if the autojunk heuristic cut a match short.
	out := blocks[:0]
	for _, b := range blocks {
		if n := len(out); n > 0 && out[n-1].S+out[n-1].N == b.S && out[n-1].T+out[n-1].N == b.T {
			out[n-1].N += b.N
			continue
		}
		out = append(out, b)
	}
	return append(out, Block{len(m.x), len(m.y), 0})
}

// longest finds the longest matching block in x[r.s0:r.s1] and y[r.t0:r.t1].
//
// Of all maximal blocks, it returns the one that starts earliest in x and of all those that start
// earliest in x, the one that starts earliest in y. If there is no match, it returns a block with
// N == 0.
func (m *Matcher[T]) longest(r span) Block {
	best := Block{r.s0, r.t0, 0}
	for s := r.s0; s < r.s1; s++ {
		for _, t := range m.index[m.x[s]] {
			if t < r.t0 {
				continue
			}
			if t >= r.t1 {
				break
			}
			k := m.prev[t] + 1
			m.cur[t+1] = k
			m.curTouched = append(m.curTouched, t+1)
			if k > best.N {
				best = Block{s - k + 1, t - k + 1, k}
			}
		}
		m.swap()
	}
	m.swap() // reset both buffers

	// Extend the match across popular elements on both ends. Without autojunk, the match is already
	// maximal and this is a no-op.
	for best.S > r.s0 && best.T > r.t0 && m.x[best.S-1] == m.y[best.T-1] {
		best.S--
		best.T--
		best.N++
	}
	for best.S+best.N < r.s1 && best.T+best.N < r.t1 && m.x[best.S+best.N] == m.y[best.T+best.N] {
		best.N++
	}
	return best
}

// swap clears prev and makes cur the new prev.
func (m *Matcher[T]) swap() {
	for _, i := range m.prevTouched {
		m.prev[i] = 0
	}
	m.prev, m.cur = m.cur, m.prev
	m.prevTouched, m.curTouched = m.curTouched, m.prevTouched[:0]
}
