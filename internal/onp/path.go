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

import (
	"slices"

	"znkr.io/wudiff/internal/edits"
)

// reconstruct assembles the edit script for inputs of length n and m: the common prefix, the path
// found by the search from (0, 0) to fp[Δ, P], and the common suffix.
func reconstruct[T any](pr problem[T], fp *table, P int, bd bounds, n, m int) []edits.Edit {
	if n == 0 && m == 0 {
		return nil
	}

	// Every element of the longer input is part of exactly one edit. The script is therefore at
	// least that long.
	script := make([]edits.Edit, 0, max(n, m))

	for i := range bd.prefix {
		script = append(script, edits.Edit{Op: edits.Common, Old: i, New: i})
	}

	if pr.m() == 0 {
		// a is empty, therefore everything in b is an addition.
		for j := range pr.n() {
			script = append(script, pr.add(j))
		}
	} else {
		start := len(script)
		script = backtrack(&pr, fp, P, script)
		slices.Reverse(script[start:])
	}

	for i := range bd.suffix {
		script = append(script, edits.Edit{Op: edits.Common, Old: n - bd.suffix + i, New: m - bd.suffix + i})
	}
	return script
}

// backtrack walks the path from fp[Δ, P] back to the origin and appends the edits along the way in
// reverse order to script.
func backtrack[T any](pr *problem[T], fp *table, P int, script []edits.Edit) []edits.Edit {
	k, p := pr.delta, P
	for k != 0 || p != 0 {
		pt := fp.at(k, p)
		if pt.y < 0 {
			// Only possible if the search was cut short, there's nothing left to follow.
			break
		}

		// The snake, row y on diagonal k is the match of a[y-k-1] and b[y-1].
		for y := pt.y; y > pt.prevY; y-- {
			script = append(script, pr.common(y-k-1, y-1))
		}

		// The step that led to the snake.
		switch pt.op {
		case edits.Added:
			script = append(script, pr.add(pt.prevY-1))
			k--
		case edits.Removed:
			script = append(script, pr.remove(pt.prevY-k-1))
			k++
		default:
			panic("never reached")
		}
		p = pt.prevP
	}
	return script
}
