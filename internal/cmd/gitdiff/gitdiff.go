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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF:
//
//	GIT_EXTERNAL_DIFF=/path/to/gitdiff git diff
//
// git calls the tool with the path, the old file, its hash and mode, and the new file, its hash and
// mode. The output mimics the output of git diff, which makes it possible to compare the diffs of
// this module to git's on real repositories.
//
// The search is never cut short. The environment variable WUDIFF_CONTEXT overrides the number of
// context lines (default 3). Colors are used if stdout is a terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
	"znkr.io/wudiff"
	"znkr.io/wudiff/textdiff"
)

func main() {
	colors := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Args, os.Getenv("WUDIFF_CONTEXT"), colors, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, context string, colors bool, out io.Writer) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}
	path, oldFile, oldHex, newFile, newHex, newMode := args[1], args[2], args[3], args[5], args[6], args[7]

	opts := []wudiff.Option{wudiff.CostLimit(0)}
	if context != "" {
		n, err := strconv.Atoi(context)
		if err != nil {
			return fmt.Errorf("invalid WUDIFF_CONTEXT: %v", err)
		}
		opts = append(opts, wudiff.Context(n))
	}
	if colors {
		opts = append(opts, textdiff.TerminalColors())
	}

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	diff := textdiff.Unified(old, new, opts...)

	fmt.Fprintf(out, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(out, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
	fmt.Fprintf(out, "--- a/%s\n", path)
	fmt.Fprintf(out, "+++ b/%s\n", path)
	if _, err := out.Write(diff); err != nil {
		return fmt.Errorf("writing diff: %v", err)
	}
	return nil
}

func readFile(name string) ([]byte, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(name)
}

// abbrev shortens an object hash the way git does by default.
func abbrev(hex string) string {
	if len(hex) > 7 {
		return hex[:7]
	}
	return hex
}
