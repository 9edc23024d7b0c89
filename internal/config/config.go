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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// wudiff.Option.
package config

// DefaultCostLimit is the largest cost p that is searched before the search is cut short.
const DefaultCostLimit = 20

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// CostLimit bounds the O(NP) search: once the search exceeds this cost p, the furthest
	// reaching path found so far is used as is. A value <= 0 disables the limit.
	CostLimit int

	// If set, textdiff colors unified output using ANSI escape sequences.
	Colors *ColorConfig
}

// ColorConfig contains the ANSI escape sequences used to color unified output. An empty sequence
// leaves the corresponding part uncolored.
type ColorConfig struct {
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// DefaultColors are the colors used by textdiff.TerminalColors unless overridden.
var DefaultColors = ColorConfig{
	HunkHeader: "\033[36m",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
}

// Default is the default configuration.
var Default = Config{
	Context:   3,
	CostLimit: DefaultCostLimit,
	Colors:    nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	CostLimit
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "wudiff.Context"
	case CostLimit:
		return "wudiff.CostLimit"
	case Colors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
