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

package edits

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ABCABBA -> CBABAC
var abcabba = []Edit{
	{Removed, 0, -1}, // -A
	{Removed, 1, -1}, // -B
	{Common, 2, 0},   //  C
	{Added, -1, 1},   // +B
	{Common, 3, 2},   //  A
	{Common, 4, 3},   //  B
	{Removed, 5, -1}, // -B
	{Common, 6, 4},   //  A
	{Added, -1, 5},   // +C
}

func TestHunks(t *testing.T) {
	tests := []struct {
		name    string
		script  []Edit
		context int
		want    []Hunk
	}{
		{
			name:    "empty",
			script:  nil,
			context: 3,
			want:    nil,
		},
		{
			name: "only-common",
			script: []Edit{
				{Common, 0, 0},
				{Common, 1, 1},
			},
			context: 3,
			want:    nil,
		},
		{
			name: "only-added",
			script: []Edit{
				{Added, -1, 0},
				{Added, -1, 1},
			},
			context: 3,
			want: []Hunk{
				{0, 0, 0, 2, 0, 2},
			},
		},
		{
			name:    "ABCABBA_to_CBABAC_context_3",
			script:  abcabba,
			context: 3,
			want: []Hunk{
				{0, 7, 0, 6, 0, 9},
			},
		},
		{
			name:    "ABCABBA_to_CBABAC_context_1",
			script:  abcabba,
			context: 1,
			want: []Hunk{
				{0, 7, 0, 6, 0, 9}, // overlapping hunks are merged
			},
		},
		{
			name:    "ABCABBA_to_CBABAC_context_0",
			script:  abcabba,
			context: 0,
			want: []Hunk{
				{0, 2, 0, 0, 0, 2},
				{3, 3, 1, 2, 3, 4},
				{5, 6, 4, 4, 6, 7},
				{7, 7, 5, 6, 8, 9},
			},
		},
		{
			name: "context-is-trimmed",
			script: []Edit{
				{Common, 0, 0},
				{Common, 1, 1},
				{Common, 2, 2},
				{Removed, 3, -1},
				{Common, 4, 3},
				{Common, 5, 4},
				{Common, 6, 5},
				{Common, 7, 6},
				{Common, 8, 7},
				{Added, -1, 8},
				{Common, 9, 9},
				{Common, 10, 10},
			},
			context: 1,
			want: []Hunk{
				{2, 5, 2, 4, 2, 5},
				{8, 10, 7, 10, 8, 11},
			},
		},
		{
			name:    "negative-context",
			script:  abcabba[:3],
			context: -1,
			want: []Hunk{
				{0, 2, 0, 0, 0, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Hunks(tt.script, tt.context))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestHunksStop(t *testing.T) {
	n := 0
	for range Hunks(abcabba, 0) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("Hunks(...) yielded %d hunks after break, want 1", n)
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{
		Common:  "Common",
		Added:   "Added",
		Removed: "Removed",
		Op(7):   "Op(7)",
	} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", int(op), got, want)
		}
	}
}
