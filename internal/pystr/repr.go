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

package pystr

import (
	"fmt"
	"strings"
)

const lowerhex = "0123456789abcdef"

// reprQuote selects the quote Python's repr uses: single quotes, unless the
// value contains a single quote and no double quote.
func reprQuote(s string) byte {
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		return '"'
	}

	return '\''
}

// ASCII renders a decoded str value like Python's ascii().
func ASCII(s string) string {
	q := reprQuote(s)

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)

	for _, r := range Runes(s) {
		switch {
		case r == '\\' || r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(byte(r))
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			writeHex(&b, 'x', r, 2)
		case r < 0x7f:
			b.WriteByte(byte(r))
		case r < 0x100:
			writeHex(&b, 'x', r, 2)
		case r < 0x10000:
			writeHex(&b, 'u', r, 4)
		default:
			writeHex(&b, 'U', r, 8)
		}
	}

	b.WriteByte(q)

	return b.String()
}

// BytesRepr renders a bytes value like Python's repr().
func BytesRepr(s string) string {
	q := reprQuote(s)

	var b strings.Builder
	b.Grow(len(s) + 3)
	b.WriteByte('b')
	b.WriteByte(q)

	for i := range len(s) {
		c := s[i]
		switch {
		case c == '\\' || c == q:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c >= 0x7f:
			writeHex(&b, 'x', rune(c), 2)
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte(q)

	return b.String()
}

func writeHex(b *strings.Builder, kind byte, r rune, digits int) {
	b.WriteByte('\\')
	b.WriteByte(kind)

	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		b.WriteByte(lowerhex[(r>>shift)&0xf])
	}
}

// Repr renders a decoded literal value the way Python would print it back,
// using [BytesRepr] for bytes and [ASCII] otherwise.
func Repr(value string, isBytes bool) string {
	if isBytes {
		return BytesRepr(value)
	}

	return ASCII(value)
}

// Canonical reports whether a single-line, non-raw literal is written
// exactly as Python's ascii() would render its value.
func Canonical(l Literal) (bool, error) {
	v, err := l.Value()
	if err != nil {
		return false, fmt.Errorf("decode %s%s...: %w", l.Prefix, l.Quote, err)
	}

	prefix := ""
	if l.IsBytes() {
		prefix = "b"
	}

	return Repr(v, l.IsBytes()) == prefix+l.Quote+l.Body+l.Quote, nil
}
