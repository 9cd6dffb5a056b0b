// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "github.com/TrLucas/codingtools/analyzer"
	"github.com/TrLucas/codingtools/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial []config.Behavior
		flag    config.Behavior
		invert  bool
		args    []string
		want    bool
		enabled bool
	}{
		{
			name:    "Enable",
			flag:    config.IncludeGenerated,
			args:    []string{"-value"},
			want:    true,
			enabled: true,
		},
		{
			name:    "Disable",
			initial: []config.Behavior{config.IncludeGenerated},
			flag:    config.IncludeGenerated,
			args:    []string{"-value=false"},
			want:    false,
			enabled: false,
		},
		{
			name:    "InvertedDisable",
			flag:    config.DisableNoQA,
			invert:  true,
			args:    []string{"-value=off"},
			want:    false,
			enabled: true,
		},
		{
			name:    "InvertedEnable",
			initial: []config.Behavior{config.DisableNoQA},
			flag:    config.DisableNoQA,
			invert:  true,
			args:    []string{"-value=1"},
			want:    true,
			enabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial...)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			fv := NewBehaviorValue(&flags, tt.flag, tt.invert)
			fs.Var(fv, "value", "test value")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(tt.flag) != tt.enabled {
				t.Errorf("Flag enabled = %v, want %v", flags.Enabled(tt.flag), tt.enabled)
			}
		})
	}
}

func TestFlagParseError(t *testing.T) {
	t.Parallel()

	var flags config.BitMask[config.Behavior]

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&flags, config.IncludeGenerated, false), "generated", "check generated files")

	if err := fs.Parse([]string{"-generated=maybe"}); err == nil {
		t.Error("Got no error for an invalid boolean")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	var flags config.BitMask[config.Behavior]
	fs.Var(NewBehaviorValue(&flags, config.DisableNoQA, true), "noqa", `honor "# noqa" comments`)

	const expectedUsage = `
  -noqa
    	honor "# noqa" comments (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
