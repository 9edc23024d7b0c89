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

package wudiff

import (
	"znkr.io/wudiff/internal/config"
	"znkr.io/wudiff/internal/edits"
	"znkr.io/wudiff/internal/onp"
)

// Op describes an edit operation.
type Op = edits.Op

const (
	Common  = edits.Common  // An element of old that is also part of new
	Added   = edits.Added   // An element of new that is not part of old
	Removed = edits.Removed // An element of old that is not part of new
)

// Edit describes a single entry of an edit script. Old and New are indices into the compared
// slices.
//
//   - For Common, Old and New are set.
//   - For Added, New is set and Old is -1.
//   - For Removed, Old is set and New is -1.
type Edit = edits.Edit

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	PosOld, EndOld int    // Start and end position in old.
	PosNew, EndNew int    // Start and end position in new.
	Edits          []Edit // Edits to transform old[PosOld:EndOld] to new[PosNew:EndNew]
}

// Compare compares the contents of old and new and returns the edit script to convert from one to
// the other.
//
// The edit script contains one edit for every element of old and new, in the order of both inputs.
// If both old and new are empty, the result is nil.
//
// The following option is supported: [wudiff.CostLimit]
func Compare[T comparable](old, new []T, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.CostLimit)
	return onp.Compare(old, new, cfg.CostLimit).Edits
}

// CompareFunc compares the contents of old and new using the provided equality comparison and
// returns the edit script to convert from one to the other.
//
// eq is called with an element of old as the first and an element of new as the second argument.
//
// The following option is supported: [wudiff.CostLimit]
func CompareFunc[T any](old, new []T, eq func(a, b T) bool, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.CostLimit)
	return onp.CompareFunc(old, new, eq, cfg.CostLimit).Edits
}

// Hunks compares the contents of old and new and returns the changes necessary to convert from one
// to the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (additions and
// removals) along with some surrounding context. The amount of context can be configured using
// [Context].
//
// If old and new are identical, the output has length zero.
//
// The following options are supported: [wudiff.Context], [wudiff.CostLimit]
func Hunks[T comparable](old, new []T, opts ...Option) []Hunk {
	cfg := config.FromOptions(opts, config.Context|config.CostLimit)
	return hunks(onp.Compare(old, new, cfg.CostLimit).Edits, cfg)
}

// HunksFunc compares the contents of old and new using the provided equality comparison and
// returns the changes necessary to convert from one to the other.
//
// The output is a sequence of hunks that each describe a number of consecutive edits. Hunks include
// a number of common elements before and after the first and last change. The number of elements
// can be configured using [Context].
//
// If old and new are identical, the output has length zero.
//
// The following options are supported: [wudiff.Context], [wudiff.CostLimit]
func HunksFunc[T any](old, new []T, eq func(a, b T) bool, opts ...Option) []Hunk {
	cfg := config.FromOptions(opts, config.Context|config.CostLimit)
	return hunks(onp.CompareFunc(old, new, eq, cfg.CostLimit).Edits, cfg)
}

func hunks(script []Edit, cfg config.Config) []Hunk {
	var out []Hunk
	for h := range edits.Hunks(script, cfg.Context) {
		out = append(out, Hunk{
			PosOld: h.S0,
			EndOld: h.S1,
			PosNew: h.T0,
			EndNew: h.T1,
			Edits:  script[h.I0:h.I1:h.I1],
		})
	}
	return out
}

// Distance returns the number of additions and removals in script.
func Distance(script []Edit) int {
	n := 0
	for _, e := range script {
		if e.Op != Common {
			n++
		}
	}
	return n
}
