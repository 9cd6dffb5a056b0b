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

package report_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/TrLucas/codingtools/internal/pyast"
	. "github.com/TrLucas/codingtools/internal/report"
)

func TestMessageAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  Message
		args []any
		want string
	}{
		{"Plain", UnusedExpression, nil, "A203 unused expression"},
		{"Percent", PercentFormat, nil, "A107 use format() instead of % operator for string formatting"},
		{"Indexed", RedundantConstructor, []any{"dict"}, "A105 use a dict literal or comprehension instead of calling dict()"},
		{"Two", ExtraneousElse, []any{"return", "if"}, "A206 Extraneous else statement after return in if-clause"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.msg.At(pyast.Pos{Line: 3, Col: 4}, tt.args...)

			if f.Message != tt.want {
				t.Errorf("Got message %q, want %q", f.Message, tt.want)
			}

			if f.Line != 3 || f.Col != 4 {
				t.Errorf("Got position %d:%d, want 3:4", f.Line, f.Col)
			}

			if got, want := f.Code(), tt.msg.Code; got != want {
				t.Errorf("Got code %q, want %q", got, want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	findings := []Finding{
		{Line: 2, Col: 0, Message: "b"},
		{Line: 1, Col: 4, Message: "a"},
		{Line: 2, Col: 0, Message: "c"},
		{Line: 1, Col: 0, Message: "d"},
	}

	Sort(findings)

	got := make([]string, 0, len(findings))
	for _, f := range findings {
		got = append(got, f.Message)
	}

	if want := []string{"d", "a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Got order %v, want %v", got, want)
	}
}

func TestCodes(t *testing.T) {
	t.Parallel()

	prev := ""
	for _, m := range Codes() {
		if m.Code < prev {
			t.Errorf("Code %s out of order after %s", m.Code, prev)
		}

		if strings.HasPrefix(m.Format, " ") || m.Format == "" {
			t.Errorf("Bad format %q for %s", m.Format, m.Code)
		}

		prev = m.Code
	}
}
