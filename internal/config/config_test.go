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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/wudiff"
	"znkr.io/wudiff/internal/config"
	"znkr.io/wudiff/textdiff"
	"znkr.io/wudiff/textdiff/color"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "context",
			opts: []config.Option{
				wudiff.Context(5),
			},
			want: config.Config{
				Context:   5,
				CostLimit: config.Default.CostLimit,
			},
		},
		{
			name: "negative-context",
			opts: []config.Option{
				wudiff.Context(-5),
			},
			want: config.Config{
				Context:   0,
				CostLimit: config.Default.CostLimit,
			},
		},
		{
			name: "cost-limit",
			opts: []config.Option{
				wudiff.CostLimit(100),
			},
			want: config.Config{
				Context:   config.Default.Context,
				CostLimit: 100,
			},
		},
		{
			name: "unlimited",
			opts: []config.Option{
				wudiff.CostLimit(-1),
			},
			want: config.Config{
				Context:   config.Default.Context,
				CostLimit: 0,
			},
		},
		{
			name: "context-override",
			opts: []config.Option{
				wudiff.Context(5),
				wudiff.CostLimit(10),
				wudiff.Context(1),
			},
			want: config.Config{
				Context:   1,
				CostLimit: 10,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				wudiff.Context(5),
				wudiff.CostLimit(10),
				textdiff.TerminalColors(color.Matches(2)),
			},
			want: config.Config{
				Context:   5,
				CostLimit: 10,
				Colors: &config.ColorConfig{
					HunkHeader: config.DefaultColors.HunkHeader,
					Match:      "\033[2m",
					Delete:     config.DefaultColors.Delete,
					Insert:     config.DefaultColors.Insert,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Context|config.CostLimit|config.Colors)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FromOptions(...) did not panic")
		}
		if got, want := r, "Option wudiff.Context not allowed here"; got != want {
			t.Errorf("FromOptions(...) panic = %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{wudiff.Context(1)}, config.CostLimit)
}
