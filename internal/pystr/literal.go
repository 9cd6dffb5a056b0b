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

// Package pystr decodes Python string literals and renders values the way
// Python's ascii() and bytes repr() do.
//
// Decoded str values are Go strings in generalized UTF-8: lone surrogates,
// which Python permits in str objects, are kept in their three byte form
// so that distinct values stay distinct.
package pystr

import (
	"errors"
	"strings"
)

// ErrEscape is returned for malformed escape sequences.
var ErrEscape = errors.New("invalid escape sequence")

// Literal is a string literal token split into its parts.
type Literal struct {
	// Prefix holds the lower-cased prefix letters, e.g. "rb".
	Prefix string
	// Quote is one of ', ", ''' or """.
	Quote string
	// Body is the text between the quotes, as written.
	Body string
}

// Split splits a string literal token into prefix, quote and body.
func Split(token string) (Literal, bool) {
	i := 0
	for i < len(token) && strings.IndexByte("rRuUbBfF", token[i]) >= 0 {
		i++
	}

	if i >= len(token) || (token[i] != '\'' && token[i] != '"') {
		return Literal{}, false
	}

	prefix, rest := strings.ToLower(token[:i]), token[i:]

	triple := strings.Repeat(rest[:1], 3)
	if len(rest) >= 6 && strings.HasPrefix(rest, triple) && strings.HasSuffix(rest, triple) {
		return Literal{Prefix: prefix, Quote: triple, Body: rest[3 : len(rest)-3]}, true
	}

	if len(rest) < 2 || rest[len(rest)-1] != rest[0] {
		return Literal{}, false
	}

	return Literal{Prefix: prefix, Quote: rest[:1], Body: rest[1 : len(rest)-1]}, true
}

// Raw reports whether the literal has an "r" prefix.
func (l Literal) Raw() bool { return strings.Contains(l.Prefix, "r") }

// IsBytes reports whether the literal has a "b" prefix.
func (l Literal) IsBytes() bool { return strings.Contains(l.Prefix, "b") }

// Unicode reports whether the literal has a "u" prefix.
func (l Literal) Unicode() bool { return strings.Contains(l.Prefix, "u") }

// Formatted reports whether the literal is an f-string.
func (l Literal) Formatted() bool { return strings.Contains(l.Prefix, "f") }

// Value decodes the literal body. Bytes literals decode to their raw bytes.
func (l Literal) Value() (string, error) {
	switch {
	case l.Raw():
		return l.Body, nil

	case l.IsBytes():
		return DecodeBytes(l.Body)

	default:
		return Decode(l.Body)
	}
}
