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

// Package wudiff compares two slices and computes the shortest edit script to convert one into
// the other using the O(NP) algorithm by Wu, Manber, Myers, and Miller.
//
// The main functions are [Compare], which returns one edit for every element of both inputs, and
// [Hunks], which groups the changes into contextual blocks.
//
// Performance: The algorithm runs in O((M+N)·P) time where M and N are the lengths of the inputs
// (M <= N) and P is the number of removals from the shorter input. It's particularly fast for
// inputs of very different length and for similar inputs. Common prefixes and suffixes are
// stripped before the search.
//
// By default, the search is cut short once P exceeds 20, in which case the edit script is
// incomplete. Use [CostLimit] to raise or remove this limit.
//
// Note: For a line-by-line diff of text, please see [znkr.io/wudiff/textdiff].
//
// [znkr.io/wudiff/textdiff]: https://pkg.go.dev/znkr.io/wudiff/textdiff
package wudiff
