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

package tokencheck_test

import (
	"slices"
	"testing"

	"github.com/TrLucas/codingtools/internal/pytoken"
	"github.com/TrLucas/codingtools/internal/report"
	. "github.com/TrLucas/codingtools/internal/tokencheck"
)

func lines(t *testing.T, src string) []pytoken.Line {
	t.Helper()

	tokens, err := pytoken.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}

	return pytoken.Logical(tokens)
}

func format(findings []report.Finding) []string {
	var got []string
	for _, f := range findings {
		got = append(got, f.String())
	}

	return got
}

func TestCheckQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"Single", "x = 'abc'\n", nil},
		{"Double", "x = \"abc\"\n", []string{"1:4: A110 string literal doesn't match ascii()"}},
		{"DoubleWithQuote", "x = \"it's\"\n", nil},
		{"RawPlain", "x = r\"plain\"\n", []string{"1:4: A110 use single quotes for raw string"}},
		{"RawWithQuote", "x = r\"it's\"\n", nil},
		{"RawSingle", "x = r'\\d'\n", nil},
		{"UnicodePrefix", "x = u'abc'\n", []string{`1:4: A112 use "from __future__ import unicode_literals" instead of prefixing literals with "u"`}},
		{"NonASCII", "x = 'ä'\n", []string{"1:4: A110 string literal doesn't match ascii()"}},
		{"Escaped", "x = '\\xe4'\n", nil},
		{"Bytes", "x = b\"abc\"\n", []string{"1:4: A110 string literal doesn't match ascii()"}},
		{"BytesSingle", "x = b'abc'\n", nil},
		{"FString", "x = f\"{a}\"\n", nil},
		{"ModuleDocstring", "\"\"\"Doc.\"\"\"\n", nil},
		{"FunctionDocstring", "def f():\n    \"\"\"Doc.\"\"\"\n", nil},
		{"DocstringAfterComment", "class C:\n    # comment\n    \"\"\"Doc.\"\"\"\n", nil},
		{"NoDocstring", "x = 1\n\"\"\"Doc.\"\"\"\n", []string{"2:0: A110 string literal doesn't match ascii()"}},
		{"MultiLine", "x = \"\"\"a\nb\"\"\"\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				state State
				got   []string
			)

			for _, line := range lines(t, tt.src) {
				got = append(got, format(CheckQuotes(line.Tokens, line.Previous, &state))...)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnicodeLiterals(t *testing.T) {
	t.Parallel()

	var state State

	for _, line := range lines(t, "from __future__ import absolute_import, unicode_literals\n") {
		CheckQuotes(line.Tokens, line.Previous, &state)
	}

	if !state.UnicodeLiterals {
		t.Error("Got no unicode literals, want them enabled")
	}
}

func TestCheckRedundantParenthesis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"If", "if (x):\n    pass\n", []string{"1:3: A111 redundant parenthesis for if statement"}},
		{"While", "while (x and y):\n    pass\n", []string{"1:6: A111 redundant parenthesis for while statement"}},
		{"Elif", "if a:\n    pass\nelif (b):\n    pass\n", []string{"3:5: A111 redundant parenthesis for elif statement"}},
		{"Nested", "if (f(x)):\n    pass\n", []string{"1:3: A111 redundant parenthesis for if statement"}},
		{"Tuple", "if (x, y):\n    pass\n", nil},
		{"EmptyTuple", "if ():\n    pass\n", nil},
		{"PartialExpression", "if (a) and (b):\n    pass\n", nil},
		{"MultiLine", "if (a or\n        b):\n    pass\n", nil},
		{"Unparenthesized", "if x:\n    pass\n", nil},
		{"Assignment", "x = (1)\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, line := range lines(t, tt.src) {
				got = append(got, format(CheckRedundantParenthesis(line.Tokens))...)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		num   int
		found bool
	}{
		{"Declaration", "# -*- coding: utf-8 -*-\n", 1, true},
		{"SecondLine", "# vim: set fileencoding=latin-1 :\n", 2, true},
		{"ThirdLine", "# coding: utf-8\n", 3, false},
		{"TrailingComment", "x = 1  # coding: utf-8\n", 1, false},
		{"Shebang", "#!/usr/bin/env python\n", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, found := CheckEncoding(tt.line, tt.num)
			if found != tt.found {
				t.Fatalf("Got found %t, want %t", found, tt.found)
			}

			if found && (f.Line != tt.num || f.Col != 0 || f.Code() != "A303") {
				t.Errorf("Got %s, want A303 at %d:0", f, tt.num)
			}
		})
	}
}
