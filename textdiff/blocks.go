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

package textdiff

import (
	"bufio"
	"fmt"
	"io"

	"znkr.io/wudiff"
	"znkr.io/wudiff/internal/config"
	"znkr.io/wudiff/internal/edits"
	"znkr.io/wudiff/textdiff/color"
)

// WriteBlocks writes script as a sequence of blocks to w, one block per line.
//
// A run of consecutive common edits forms a single block that's prefixed with " " and contains
// the elements of the run, each followed by sep. Every added element forms a block prefixed with
// "+" and every removed element a block prefixed with "-".
//
// The script must have been computed for old and new, e.g. using [wudiff.Compare].
//
// The following option is supported: [textdiff.TerminalColors]
func WriteBlocks(w io.Writer, old, new []string, script []wudiff.Edit, sep string, opts ...wudiff.Option) error {
	cfg := config.FromOptions(opts, config.Colors)
	colors := cfg.Colors
	if colors == nil {
		colors = &config.ColorConfig{}
	}

	// bufio.Writer keeps the first write error and reports it in Flush.
	bw := bufio.NewWriter(w)
	inRun := false
	for _, e := range script {
		if e.Op != edits.Common && inRun {
			endBlock(bw, colors.Match)
			inRun = false
		}
		switch e.Op {
		case edits.Common:
			if !inRun {
				startBlock(bw, colors.Match, prefixMatch)
				inRun = true
			}
			bw.WriteString(old[e.Old])
			bw.WriteString(sep)
		case edits.Added:
			startBlock(bw, colors.Insert, prefixInsert)
			bw.WriteString(new[e.New])
			endBlock(bw, colors.Insert)
		case edits.Removed:
			startBlock(bw, colors.Delete, prefixDelete)
			bw.WriteString(old[e.Old])
			endBlock(bw, colors.Delete)
		default:
			panic("never reached")
		}
	}
	if inRun {
		endBlock(bw, colors.Match)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing blocks: %v", err)
	}
	return nil
}

func startBlock(bw *bufio.Writer, code, prefix string) {
	bw.WriteString(code)
	bw.WriteString(prefix)
}

func endBlock(bw *bufio.Writer, code string) {
	if code != "" {
		bw.WriteString(color.Reset)
	}
	bw.WriteByte('\n')
}
