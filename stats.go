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

// Stats summarizes a [Result].
//
// Changed lines are counted separately for each side, because a replacement doesn't need to
// replace the same number of lines on both sides.
type Stats struct {
	TotalLeft, TotalRight     int // Number of input lines
	Added                     int // Lines that only exist on the right side
	Deleted                   int // Lines that only exist on the left side
	ChangedLeft, ChangedRight int // Replaced lines on the left and on the right side
	Unchanged                 int // Lines that are equal on both sides
}

// Stats counts the lines in r by kind. Padding rows are never counted.
func (r Result) Stats() Stats {
	var s Stats
	for _, l := range r.Left {
		if l.IsPadding() {
			continue
		}
		s.TotalLeft++
		switch l.Kind {
		case Equal:
			s.Unchanged++
		case Delete:
			s.Deleted++
		case Replace:
			s.ChangedLeft++
		}
	}
	for _, l := range r.Right {
		if l.IsPadding() {
			continue
		}
		s.TotalRight++
		switch l.Kind {
		case Insert:
			s.Added++
		case Replace:
			s.ChangedRight++
		}
	}
	return s
}
