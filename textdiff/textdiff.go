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

// Package textdiff provides functions to compare text line by line.
package textdiff

import (
	"strconv"

	"znkr.io/wudiff"
	"znkr.io/wudiff/internal/byteview"
	"znkr.io/wudiff/internal/config"
	"znkr.io/wudiff/internal/edits"
	"znkr.io/wudiff/internal/onp"
	"znkr.io/wudiff/textdiff/color"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\n\\ No newline at end of file\n"

// Edit describes a single edit of a line-by-line diff.
type Edit[T string | []byte] struct {
	Op       wudiff.Op
	Old, New int // Line indices, -1 if the line is not part of the respective input.
	Line     T   // Line content including the trailing newline, if present.
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T string | []byte] struct {
	LineNoOld, EndLineNoOld int       // Start and end line in old (0-based).
	LineNoNew, EndLineNoNew int       // Start and end line in new (0-based).
	Edits                   []Edit[T] // Edits to transform old[LineNoOld:EndLineNoOld] to new[LineNoNew:EndLineNoNew].
}

type lines struct {
	old, new               []byteview.ByteView
	oldMissing, newMissing int // index of the line without a trailing newline, or -1
	script                 []edits.Edit
}

func compare[T string | []byte](old, new T, costLimit int) lines {
	var l lines
	l.old, l.oldMissing = byteview.SplitLines(byteview.From(old))
	l.new, l.newMissing = byteview.SplitLines(byteview.From(new))
	l.script = onp.Compare(l.old, l.new, costLimit).Edits
	return l
}

func (l *lines) line(e edits.Edit) byteview.ByteView {
	if e.Op == edits.Added {
		return l.new[e.New]
	}
	return l.old[e.Old]
}

// Unified compares the lines in old and new and returns the changes necessary to convert from one
// to the other in unified format.
//
// Lines within a hunk are printed in the order of the edit script. If the search is cut short by
// the cost limit, the output only covers the part of the inputs the search reached.
//
// The following options are supported: [wudiff.Context], [wudiff.CostLimit],
// [textdiff.TerminalColors]
func Unified[T string | []byte](old, new T, opts ...wudiff.Option) T {
	cfg := config.FromOptions(opts, config.Context|config.CostLimit|config.Colors)
	l := compare(old, new, cfg.CostLimit)

	colors := cfg.Colors
	if colors == nil {
		colors = &config.ColorConfig{}
	}

	var b byteview.Builder[T]
	for h := range edits.Hunks(l.script, cfg.Context) {
		writeHeader(&b, colors.HunkHeader, h)
		for _, e := range l.script[h.I0:h.I1] {
			switch e.Op {
			case edits.Common:
				writeLine(&b, colors.Match, prefixMatch, l.old[e.Old], e.Old == l.oldMissing)
			case edits.Removed:
				writeLine(&b, colors.Delete, prefixDelete, l.old[e.Old], e.Old == l.oldMissing)
			case edits.Added:
				writeLine(&b, colors.Insert, prefixInsert, l.new[e.New], e.New == l.newMissing)
			default:
				panic("never reached")
			}
		}
	}
	return b.Build()
}

func writeHeader[T string | []byte](b *byteview.Builder[T], code string, h edits.Hunk) {
	b.WriteString(code)
	b.WriteString("@@ -")
	writeRange(b, h.S0, h.S1)
	b.WriteString(" +")
	writeRange(b, h.T0, h.T1)
	b.WriteString(" @@")
	if code != "" {
		b.WriteString(color.Reset)
	}
	b.WriteString("\n")
}

// writeRange writes the range [start, end) as 1-based "line,count". An empty range refers to the
// line before it, as in GNU diff.
func writeRange[T string | []byte](b *byteview.Builder[T], start, end int) {
	n := end - start
	if n > 0 {
		start++
	}
	b.WriteString(strconv.Itoa(start))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(n))
}

func writeLine[T string | []byte](b *byteview.Builder[T], code, prefix string, line byteview.ByteView, missing bool) {
	if code == "" {
		b.WriteString(prefix)
		b.WriteByteView(line)
		if missing {
			b.WriteString(missingNewline)
		}
		return
	}

	// The reset must come before the newline, otherwise the color bleeds into the next line.
	b.WriteString(code)
	b.WriteString(prefix)
	b.WriteByteView(byteview.TrimNewline(line))
	b.WriteString(color.Reset)
	if missing {
		b.WriteString(missingNewline)
	} else {
		b.WriteString("\n")
	}
}

// Edits compares the lines in old and new and returns the changes necessary to convert from one
// to the other.
//
// Edits returns one edit for every line in the inputs. If old and new are identical, the output
// consists of a common edit for every line.
//
// The following option is supported: [wudiff.CostLimit]
func Edits[T string | []byte](old, new T, opts ...wudiff.Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.CostLimit)
	l := compare(old, new, cfg.CostLimit)
	if len(l.script) == 0 {
		return nil
	}
	out := make([]Edit[T], len(l.script))
	for i, e := range l.script {
		out[i] = Edit[T]{
			Op:   e.Op,
			Old:  e.Old,
			New:  e.New,
			Line: byteview.To[T](l.line(e)),
		}
	}
	return out
}

// Hunks compares the lines in old and new and returns the changes necessary to convert from one to
// the other.
//
// The output is a sequence of hunks. A hunk represents a contiguous block of changes (additions and
// removals) along with some surrounding context. The amount of context can be configured using
// [wudiff.Context].
//
// If old and new are identical, the output has length zero.
//
// The following options are supported: [wudiff.Context], [wudiff.CostLimit]
func Hunks[T string | []byte](old, new T, opts ...wudiff.Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.CostLimit)
	l := compare(old, new, cfg.CostLimit)

	// Compute the number of hunks and edits first, this is cheap and allows us to preallocate the
	// return values.
	var nhunks, nedits int
	for h := range edits.Hunks(l.script, cfg.Context) {
		nhunks++
		nedits += h.I1 - h.I0
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	hout := make([]Hunk[T], 0, nhunks)
	for h := range edits.Hunks(l.script, cfg.Context) {
		start := len(eout)
		for _, e := range l.script[h.I0:h.I1] {
			eout = append(eout, Edit[T]{
				Op:   e.Op,
				Old:  e.Old,
				New:  e.New,
				Line: byteview.To[T](l.line(e)),
			})
		}
		hout = append(hout, Hunk[T]{
			LineNoOld:    h.S0,
			EndLineNoOld: h.S1,
			LineNoNew:    h.T0,
			EndLineNoNew: h.T1,
			Edits:        eout[start:len(eout):len(eout)],
		})
	}
	return hout
}
