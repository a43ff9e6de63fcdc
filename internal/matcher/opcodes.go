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

package matcher

// Tag classifies an opcode.
type Tag int

const (
	Equal Tag = iota
	Delete
	Insert
	Replace
)

// Opcode describes how to turn x[I1:I2] into y[J1:J2].
type Opcode struct {
	Tag    Tag
	I1, I2 int
	J1, J2 int
}

// Opcodes translates matching blocks into a sequence of opcodes that covers both inputs entirely.
//
// The gap before every block is classified as Insert if it's empty in x, Delete if it's empty in
// y and Replace otherwise. Blocks become Equal opcodes. Consecutive gaps are never merged, every
// gap yields exactly one opcode.
func Opcodes(blocks []Block) []Opcode {
	var ops []Opcode
	i, j := 0, 0
	for _, b := range blocks {
		switch {
		case i < b.S && j < b.T:
			ops = append(ops, Opcode{Replace, i, b.S, j, b.T})
		case i < b.S:
			ops = append(ops, Opcode{Delete, i, b.S, j, b.T})
		case j < b.T:
			ops = append(ops, Opcode{Insert, i, b.S, j, b.T})
		}
		i, j = b.S+b.N, b.T+b.N
		if b.N > 0 {
			ops = append(ops, Opcode{Equal, b.S, i, b.T, j})
		}
	}
	return ops
}
