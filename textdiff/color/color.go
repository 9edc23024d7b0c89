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

// Package color configures the ANSI escape sequences used to color unified diffs and edit blocks.
//
// Colors are specified as [Select Graphic Rendition parameters]. For example, the option below
// presents hunk headers in bold yellow:
//
//	HunkHeaders(1, 33)
//
// This is equivalent to the raw ANSI sequence \033[1;33m. Calling an option without parameters
// removes the color for that part of the output.
//
// It's the responsibility of the caller to ensure that the parameters are supported by the
// terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"strconv"
	"strings"

	"znkr.io/wudiff/internal/config"
)

// Reset is the sequence that ends a colored line.
const Reset = "\033[0m"

// An Option configures a custom color in [znkr.io/wudiff/textdiff.TerminalColors].
type Option func(*config.ColorConfig)

// HunkHeaders colors hunk headers, the "@@ ... @@" lines of a unified diff.
func HunkHeaders(params ...int) Option {
	return set(func(cc *config.ColorConfig) *string { return &cc.HunkHeader }, params)
}

// Matches colors common lines.
func Matches(params ...int) Option {
	return set(func(cc *config.ColorConfig) *string { return &cc.Match }, params)
}

// Deletes colors removed lines.
func Deletes(params ...int) Option {
	return set(func(cc *config.ColorConfig) *string { return &cc.Delete }, params)
}

// Inserts colors added lines.
func Inserts(params ...int) Option {
	return set(func(cc *config.ColorConfig) *string { return &cc.Insert }, params)
}

func set(field func(*config.ColorConfig) *string, params []int) Option {
	code := Sequence(params...)
	return func(cc *config.ColorConfig) {
		*field(cc) = code
	}
}

// Sequence returns the escape sequence for params, or "" if params is empty.
func Sequence(params ...int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('m')
	return sb.String()
}
