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

package pystr_test

import (
	"errors"
	"testing"

	. "github.com/TrLucas/codingtools/internal/pystr"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  Literal
	}{
		{`'abc'`, Literal{Quote: `'`, Body: "abc"}},
		{`""`, Literal{Quote: `"`, Body: ""}},
		{`Rb'\d'`, Literal{Prefix: "rb", Quote: `'`, Body: `\d`}},
		{`u"x"`, Literal{Prefix: "u", Quote: `"`, Body: "x"}},
		{`'''a'b'''`, Literal{Quote: `'''`, Body: "a'b"}},
		{`""""""`, Literal{Quote: `"""`, Body: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			got, ok := Split(tt.token)
			if !ok {
				t.Fatalf("Split(%q) failed", tt.token)
			}

			if got != tt.want {
				t.Errorf("Got %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, ok := Split("abc"); ok {
		t.Error("Split accepted a name")
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body, want string
	}{
		{`plain`, "plain"},
		{`a\nb`, "a\nb"},
		{`\x41\101B`, "AAB"},
		{`\d`, `\d`},
		{`\'\"\\`, `'"\`},
		{"a\\\nb", "ab"},
		{`\N{BULLET}`, `\N{BULLET}`},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.body)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.body, err)
			}

			if got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := Decode(`\x4`); !errors.Is(err, ErrEscape) {
		t.Errorf("Got error %v, want %v", err, ErrEscape)
	}
}

func TestSurrogates(t *testing.T) {
	t.Parallel()

	hi, err := Decode(`\ud800`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	lo, err := Decode(`\udc00`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if hi == lo {
		t.Error("Distinct surrogates decoded to the same value")
	}

	if got, want := ASCII(hi), `'\ud800'`; got != want {
		t.Errorf("Got %s, want %s", got, want)
	}
}

func TestASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value, want string
	}{
		{"abc", `'abc'`},
		{"it's", `"it's"`},
		{`'"`, `'\'"'`},
		{"tab\there", `'tab\there'`},
		{"\x00\x7f", `'\x00\x7f'`},
		{"é", `'\xe9'`},
		{"€", `'\u20ac'`},
		{"😀", `'\U0001f600'`},
		{`back\slash`, `'back\\slash'`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := ASCII(tt.value); got != tt.want {
				t.Errorf("ASCII(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  bool
	}{
		{`'abc'`, true},
		{`"abc"`, false},
		{`"it's"`, true},
		{`'it\'s'`, false},
		{`b'\x00'`, true},
		{`b"x"`, false},
		{`'\u20ac'`, true},
		{`'€'`, false},
		{`'''abc'''`, false},
		{`u'abc'`, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			l, ok := Split(tt.token)
			if !ok {
				t.Fatalf("Split(%q) failed", tt.token)
			}

			got, err := Canonical(l)
			if err != nil {
				t.Fatalf("Canonical(%q) failed: %v", tt.token, err)
			}

			if got != tt.want {
				t.Errorf("Canonical(%q) = %t, want %t", tt.token, got, tt.want)
			}
		})
	}
}
