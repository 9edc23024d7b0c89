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

// Result is the outcome of a comparison.
type Result struct {
	// Edit script to transform x into y, nil if both x and y are empty.
	Edits []edits.Edit

	// Length difference of x and y after stripping the common prefix and suffix.
	Delta int

	// Number of removals from the shorter of the two inputs (after stripping the common prefix and
	// suffix). This is the p at which the search ended.
	P int
}

// Distance returns the number of insertions and deletions of the edit script found by the search.
// It's only meaningful if the search wasn't cut short by the cost limit.
func (r Result) Distance() int { return r.Delta + 2*r.P }

// Compare compares the contents of x and y and returns the edit script to convert from one to the
// other.
//
// The search is aborted if the cost exceeds costLimit, a costLimit <= 0 disables the limit.
func Compare[T comparable](x, y []T, costLimit int) Result {
	return CompareFunc(x, y, func(a, b T) bool { return a == b }, costLimit)
}

// CompareFunc compares the contents of x and y using the provided equality comparison and returns
// the edit script to convert from one to the other.
//
// eq is always called with an element of x as the first and an element of y as the second argument.
//
// The search is aborted if the cost exceeds costLimit, a costLimit <= 0 disables the limit.
func CompareFunc[T any](x, y []T, eq func(a, b T) bool, costLimit int) Result {
	b := trim(x, y, eq)
	pr := orient(x, y, b, eq)
	var fp table
	var P int
	if pr.m() > 0 {
		fp, P = search(pr, costLimit)
	}
	return Result{
		Edits: reconstruct(pr, &fp, P, b, len(x), len(y)),
		Delta: pr.delta,
		P:     P,
	}
}
