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

// Package edits contains the edit script representation that's produced by the O(NP) algorithm
// and exported by the user facing packages.
package edits

import "iter"

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Common  Op = iota // An element present in both inputs
	Added             // An element only present in the new input
	Removed           // An element only present in the old input
)

// Edit describes a single entry of an edit script.
//
//   - For Common, Old and New are the indices of the equal elements.
//   - For Added, New is the index of the inserted element and Old is -1.
//   - For Removed, Old is the index of the deleted element and New is -1.
type Edit struct {
	Op       Op
	Old, New int
}

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in the old input.
	T0, T1 int // Start and end of the hunk in the new input.
	I0, I1 int // Start and end of the hunk in the script.
}

// Hunks returns an iterator over the hunks in script.
//
// A hunk starts up to context common edits before a change and ends up to context common edits
// after the last change. Two changes separated by at most 2*context common edits belong to the same
// hunk.
func Hunks(script []Edit, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		context = max(0, context)
		s, t := 0, 0     // current position in the old and new input
		i0 := -1         // start of the current hunk
		s0, t0 := -1, -1 // position at the start of the current hunk
		last := -1       // index of the last change
		sl, tl := 0, 0   // position after the last change

		// end computes the hunk ending context common edits after the last change.
		end := func() Hunk {
			i1 := min(len(script), last+1+context)
			n := i1 - last - 1 // trailing common edits
			return Hunk{s0, sl + n, t0, tl + n, i0, i1}
		}

		for i, e := range script {
			if e.Op != Common {
				if i0 >= 0 && i-last-1 > 2*context {
					if !yield(end()) {
						return
					}
					i0 = -1
				}
				if i0 < 0 {
					// Everything between the last hunk and this change is a common edit, we can
					// therefore walk back on both inputs at the same time.
					i0 = max(0, i-context, last+1)
					s0, t0 = s-(i-i0), t-(i-i0)
				}
				last = i
			}

			switch e.Op {
			case Common:
				s++
				t++
			case Added:
				t++
			case Removed:
				s++
			}
			if i == last {
				sl, tl = s, t
			}
		}
		if i0 >= 0 {
			yield(end())
		}
	}
}
