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

import "znkr.io/wudiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of common elements to include as a prefix and postfix for hunks returned
// in [Hunks] and [HunksFunc]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// CostLimit bounds the search for the shortest edit script. The cost is the number of removals
// from the shorter input. Once the search exceeds the limit, the comparison returns the edits
// found up to that point, which don't cover the inputs completely. The default is 20.
//
// A limit n <= 0 disables the bound, the result is then always a complete and minimal edit
// script.
func CostLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CostLimit = max(0, n)
		return config.CostLimit
	}
}
