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

package wudiff_test

import (
	"fmt"
	"strings"

	"znkr.io/wudiff"
)

// Compare to strings line by line and output the difference as a pseudo-unified diff output
// (i.e. it's similar to what diff -u would produce). The format is not a correct unified diff
// though, in particular line endings (esp. at the end of the input) are handled differently.
func ExampleHunks_psudoUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk`

	xlines := strings.Split(x, "\n")
	ylines := strings.Split(y, "\n")
	hunks := wudiff.Hunks(xlines, ylines)
	for _, h := range hunks {
		fmt.Printf("@@ -%d,%d +%d,%d @@\n", h.PosOld+1, h.EndOld-h.PosOld, h.PosNew+1, h.EndNew-h.PosNew)
		for _, edit := range h.Edits {
			switch edit.Op {
			case wudiff.Common:
				fmt.Printf(" %s\n", xlines[edit.Old])
			case wudiff.Removed:
				fmt.Printf("-%s\n", xlines[edit.Old])
			case wudiff.Added:
				fmt.Printf("+%s\n", ylines[edit.New])
			default:
				panic("never reached")
			}
		}
	}
	// Output:
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

// Compare two strings rune by rune.
func ExampleCompare() {
	x := []rune("Hello, World")
	y := []rune("Hello, 世界")
	for _, edit := range wudiff.Compare(x, y) {
		switch edit.Op {
		case wudiff.Common:
			fmt.Printf("%s", string(x[edit.Old]))
		case wudiff.Removed:
			fmt.Printf("-%s", string(x[edit.Old]))
		case wudiff.Added:
			fmt.Printf("+%s", string(y[edit.New]))
		default:
			panic("never reached")
		}
	}
	// Output:
	// Hello, -W-o-r-l-d+世+界
}

// Compare two slices of words, ignoring case.
func ExampleCompareFunc() {
	x := strings.Fields("The quick brown fox")
	y := strings.Fields("the QUICK red fox")
	script := wudiff.CompareFunc(x, y, strings.EqualFold)
	for _, edit := range script {
		fmt.Println(edit.Op, edit.Old, edit.New)
	}
	fmt.Println("distance:", wudiff.Distance(script))
	// Output:
	// Common 0 0
	// Common 1 1
	// Added -1 2
	// Removed 2 -1
	// Common 3 3
	// distance: 2
}
