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

// point is the furthest reaching point on a diagonal k for a given p.
type point struct {
	y     int      // Furthest row, -1 if the diagonal hasn't been reached.
	prevY int      // Row before following the snake.
	prevP int      // The p of the predecessor.
	op    edits.Op // Step from the predecessor: Added from k-1, Removed from k+1.
}

var unreached = point{y: -1, prevY: -1}

// table stores the furthest reaching points for all p searched so far.
//
// The iteration for p computes the diagonals k in [-p, Δ+p], but reads from the diagonals -p-1 and
// Δ+p+1. Every row therefore has Δ+2p+3 entries and fp[k, p] is stored in rows[p][k+p+1]. Reads
// outside of the rows return unreached.
type table struct {
	delta int
	rows  [][]point
}

func (t *table) at(k, p int) point {
	if p < 0 || p >= len(t.rows) {
		return unreached
	}
	row := t.rows[p]
	if i := k + p + 1; 0 <= i && i < len(row) {
		return row[i]
	}
	return unreached
}

// grow adds the row for the next p.
func (t *table) grow() {
	p := len(t.rows)
	row := make([]point, t.delta+2*p+3)
	for i := range row {
		row[i] = unreached
	}
	t.rows = append(t.rows, row)
}

// zone describes the position of a diagonal relative to Δ.
type zone int

const (
	below zone = iota // k < Δ
	above             // k > Δ
	on                // k = Δ
)

type searcher[T any] struct {
	pr *problem[T]
	fp table
}

// search fills the table for increasing p until the target is reached or p exceeds the costLimit.
// It returns the table and the p the search ended with.
//
// Important: a must not be empty.
func search[T any](pr problem[T], costLimit int) (table, int) {
	s := searcher[T]{pr: &pr}
	s.fp.delta = pr.delta
	delta, N := pr.delta, pr.n()
	for p := 0; ; p++ {
		s.fp.grow()
		for k := -p; k < delta; k++ {
			s.step(k, p, s.fp.at(k-1, p).y+1, s.fp.at(k+1, p-1).y, below)
		}
		for k := delta + p; k > delta; k-- {
			s.step(k, p, s.fp.at(k-1, p-1).y+1, s.fp.at(k+1, p).y, above)
		}
		s.step(delta, p, s.fp.at(delta-1, p).y+1, s.fp.at(delta+1, p).y, on)

		if s.fp.at(delta, p).y == N || costLimit > 0 && p > costLimit {
			return s.fp, p
		}
	}
}

// step computes fp[k, p] from the candidate rows of an addition (coming from k-1) and a removal
// (coming from k+1). The furthest candidate wins, a tie goes to the removal.
func (s *searcher[T]) step(k, p, added, removed int, z zone) {
	var pt point
	if added > removed {
		pt = point{prevY: added, prevP: p, op: edits.Added}
		if z == above {
			pt.prevP = p - 1
		}
	} else {
		pt = point{prevY: removed, prevP: p, op: edits.Removed}
		if z == below {
			pt.prevP = p - 1
		}
	}
	pt.y = s.snake(k, pt.prevY)
	s.fp.rows[p][k+p+1] = pt
}

// snake follows the diagonal k from row y as long as the elements match.
func (s *searcher[T]) snake(k, y int) int {
	a, b, eq := s.pr.a, s.pr.b, s.pr.eq
	M, N := len(a), len(b)
	for y-k < M && y < N && eq(a[y-k], b[y]) {
		y++
	}
	return y
}
