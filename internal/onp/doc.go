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

// Package onp contains an implementation of the O(NP) sequence comparison algorithm by Wu, Manber,
// Myers, and Miller.
//
// # The O(NP) Algorithm
//
// Like Myers' algorithm, the O(NP) algorithm is a graph search on the edit graph of two sequences
// A and B. In contrast to Myers' algorithm, it requires that A is not longer than B: M = len(A) <=
// N = len(B). For A = "ing" and B = "ength", the edit graph is:
//
//	        i   n   g
//	(0,0)   ┌───┬───┬───┐ 0
//	   e    │   │   │   │
//	        ├───┼───┼───┤ 1
//	   n    │   │ ╲ │   │
//	        ├───┼───┼───┤ 2
//	   g    │   │   │ ╲ │
//	        ├───┼───┼───┤ 3
//	   t    │   │   │   │
//	        ├───┼───┼───┤ 4
//	   h    │   │   │   │
//	        └───┴───┴───┘ 5
//	        0   1   2   3  (3,5)
//
// We use x for the horizontal position in A and y for the vertical position in B. A step down
// corresponds to adding an element of B, a step right to removing an element of A, and a diagonal
// step, which is only available where A[x] == B[y], keeps an element. The diagonal k = y - x
// contains all positions with the same difference between row and column. The origin is on k = 0
// and the target (M, N) is on k = Δ = N - M >= 0.
//
// Every path from the origin to the target has Δ + 2P non-diagonal edges, where P is the number of
// steps right (removals). A path with the smallest P is a shortest edit script. The insight of the
// paper is that a path with at most P removals can only visit the diagonals -P <= k <= Δ + P. The
// algorithm therefore searches for increasing values of p, only ever looking at the band of
// diagonals [-p, Δ+p].
//
// For each p, fp[k, p] is the furthest row y that can be reached on diagonal k with p removals. It
// is the furthest of
//
//   - one step down from diagonal k-1 (an addition): fp[k-1, ·] + 1, or
//   - one step right from diagonal k+1 (a removal): fp[k+1, ·],
//
// followed by the longest possible sequence of diagonal edges (a snake). A step right on a diagonal
// below Δ costs an additional removal, just like a step down on a diagonal above Δ. Diagonals below
// Δ are therefore computed in ascending order reusing fp[k-1, p] and fp[k+1, p-1], diagonals above Δ
// in descending order reusing fp[k-1, p-1] and fp[k+1, p], and finally diagonal Δ using the two
// neighbours computed in the current iteration. The search is done as soon as fp[Δ, p] = N.
//
// The time complexity is O((M+N)P) and, because P is at most the number of removals of the
// shortest edit script, the algorithm is especially fast if one sequence is mostly a super
// sequence of the other.
//
// In addition to the furthest row, every table entry records where the path came from: the row
// before the snake, the p of the predecessor and the kind of the step. This allows to recover the
// path by walking backwards from fp[Δ, P] to the origin.
//
// ## References:
//
// Wu, S., Manber, U., Myers, G., Miller, W. An O(NP) sequence comparison algorithm. Information
// Processing Letters, Volume 35, Issue 6, 317-323 (1990).
// https://doi.org/10.1016/0020-0190(90)90035-V
//
// # Cost Limit
//
// The search for increasing p is aborted once p exceeds a cost limit (20 by default). In that case,
// the path recovered from fp[Δ, p] is the furthest the search got and the resulting edit script is
// incomplete. This bounds the time complexity to O((M+N)·limit).
package onp
