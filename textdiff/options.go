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
	"znkr.io/wudiff"
	"znkr.io/wudiff/internal/config"
	"znkr.io/wudiff/textdiff/color"
)

// TerminalColors colors the output using ANSI escape sequences. By default, hunk headers are cyan,
// removed lines are red, added lines are green, and common lines are not colored. The colors can
// be changed using the options in [znkr.io/wudiff/textdiff/color].
func TerminalColors(opts ...color.Option) wudiff.Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = &cc
		return config.Colors
	}
}
