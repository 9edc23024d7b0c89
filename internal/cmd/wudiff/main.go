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

// wudiff is a small CLI to compare two files.
//
// Usage:
//
//	wudiff [flags] <old> <new>
//
// By default, the output is a unified diff of the lines of both files. With -blocks, both files
// are compared word by word and the output is a sequence of blocks: runs of common words joined by
// -sep on a line prefixed with " ", and one line per added ("+") or removed ("-") word.
//
// The exit status is 0 if the inputs are equal, 1 if they differ, and 2 if an error occurred.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"znkr.io/wudiff"
	"znkr.io/wudiff/textdiff"
)

type config struct {
	context   int
	costLimit int
	blocks    bool
	sep       string
	color     string
	old, new  string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.context, "context", 3, "number of common lines around changes")
	flag.IntVar(&cfg.costLimit, "cost-limit", 0, "stop the search once the cost exceeds this limit, 0 means no limit")
	flag.BoolVar(&cfg.blocks, "blocks", false, "compare words and print edit blocks instead of a unified diff")
	flag.StringVar(&cfg.sep, "sep", " ", "separator between common words in -blocks mode")
	flag.StringVar(&cfg.color, "color", "auto", "colorize the output: auto, always, or never")
	flag.Parse()

	if flag.CommandLine.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: usage: wudiff [flags] <old> <new>\n")
		os.Exit(2)
	}
	cfg.old = flag.CommandLine.Arg(0)
	cfg.new = flag.CommandLine.Arg(1)

	differ, err := run(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if differ {
		os.Exit(1)
	}
}

// run compares the files and writes the result to out. It reports whether the files differ.
func run(cfg config, out io.Writer) (bool, error) {
	colors, err := useColors(cfg.color, out)
	if err != nil {
		return false, err
	}

	old, err := readFile(cfg.old)
	if err != nil {
		return false, err
	}
	new, err := readFile(cfg.new)
	if err != nil {
		return false, err
	}
	if bytes.Equal(old, new) {
		return false, nil
	}

	opts := []wudiff.Option{wudiff.CostLimit(cfg.costLimit)}
	if colors {
		opts = append(opts, textdiff.TerminalColors())
	}

	if cfg.blocks {
		x, y := strings.Fields(string(old)), strings.Fields(string(new))
		script := wudiff.Compare(x, y, opts[0])
		if wudiff.Distance(script) == 0 {
			return false, nil
		}
		return true, textdiff.WriteBlocks(out, x, y, script, cfg.sep, opts[1:]...)
	}

	fmt.Fprintf(out, "--- %s\n", cfg.old)
	fmt.Fprintf(out, "+++ %s\n", cfg.new)
	opts = append(opts, wudiff.Context(cfg.context))
	if _, err := out.Write(textdiff.Unified(old, new, opts...)); err != nil {
		return true, fmt.Errorf("writing diff: %v", err)
	}
	return true, nil
}

func readFile(name string) ([]byte, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", name, err)
	}
	return data, nil
}

// useColors decides whether to color the output based on the -color flag.
func useColors(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid value for -color: %q", mode)
	}
}
