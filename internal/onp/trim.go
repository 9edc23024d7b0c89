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

package onp

import "znkr.io/wudiff/internal/edits"

// bounds are the lengths of the common prefix and suffix of two inputs.
type bounds struct {
	prefix, suffix int
}

// trim finds the common prefix and suffix of x and y. The prefix and suffix never overlap.
func trim[T any](x, y []T, eq func(a, b T) bool) bounds {
	n := min(len(x), len(y))
	var b bounds

	// Strip common prefix.
	for b.prefix < n && eq(x[b.prefix], y[b.prefix]) {
		b.prefix++
	}

	// Strip common suffix.
	for b.suffix < n-b.prefix && eq(x[len(x)-1-b.suffix], y[len(y)-1-b.suffix]) {
		b.suffix++
	}

	return b
}

// problem is the part of x and y between the common prefix and suffix, arranged such that a is
// not longer than b.
type problem[T any] struct {
	a, b    []T
	eq      func(a, b T) bool // compares elements of a and b
	swapped bool              // if set, a is taken from y and b from x
	delta   int               // len(b) - len(a)
	offset  int               // position of a[0] and b[0] in x and y
}

// orient creates the problem for the O(NP) algorithm from x and y.
func orient[T any](x, y []T, bd bounds, eq func(a, b T) bool) problem[T] {
	xb := x[bd.prefix : len(x)-bd.suffix]
	yb := y[bd.prefix : len(y)-bd.suffix]
	if len(yb) < len(xb) {
		return problem[T]{
			a:       yb,
			b:       xb,
			eq:      func(u, v T) bool { return eq(v, u) },
			swapped: true,
			delta:   len(xb) - len(yb),
			offset:  bd.prefix,
		}
	}
	return problem[T]{
		a:      xb,
		b:      yb,
		eq:     eq,
		delta:  len(yb) - len(xb),
		offset: bd.prefix,
	}
}

func (pr *problem[T]) m() int { return len(pr.a) }
func (pr *problem[T]) n() int { return len(pr.b) }

// common returns the edit for a match of a[i] and b[j].
func (pr *problem[T]) common(i, j int) edits.Edit {
	if pr.swapped {
		return edits.Edit{Op: edits.Common, Old: j + pr.offset, New: i + pr.offset}
	}
	return edits.Edit{Op: edits.Common, Old: i + pr.offset, New: j + pr.offset}
}

// add returns the edit that adds b[j].
func (pr *problem[T]) add(j int) edits.Edit {
	if pr.swapped {
		return edits.Edit{Op: edits.Removed, Old: j + pr.offset, New: -1}
	}
	return edits.Edit{Op: edits.Added, Old: -1, New: j + pr.offset}
}

// remove returns the edit that removes a[i].
func (pr *problem[T]) remove(i int) edits.Edit {
	if pr.swapped {
		return edits.Edit{Op: edits.Added, Old: -1, New: i + pr.offset}
	}
	return edits.Edit{Op: edits.Removed, Old: i + pr.offset, New: -1}
}
