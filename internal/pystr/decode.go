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
	"unicode/utf8"
)

// Decode interprets the escape sequences of a str literal body.
//
// Named escapes (\N{...}) are kept verbatim, since resolving them requires
// the Unicode name database.
func Decode(body string) (string, error) {
	if !strings.Contains(body, `\`) {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))

	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++

			continue
		}

		if i+1 >= len(body) {
			b.WriteByte(c)

			break
		}

		e := body[i+1]
		i += 2

		if r, ok := simpleEscape(e); ok {
			if r >= 0 {
				b.WriteByte(byte(r))
			}

			continue
		}

		switch e {
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := octal(body[i-1:])
			i += n - 1
			writeRune(&b, rune(v))

		case 'x':
			v, err := hexDigits(body[i:], 2)
			if err != nil {
				return "", err
			}

			i += 2
			writeRune(&b, v)

		case 'u', 'U':
			n := 4
			if e == 'U' {
				n = 8
			}

			v, err := hexDigits(body[i:], n)
			if err != nil {
				return "", err
			}

			if v > utf8.MaxRune {
				return "", fmt.Errorf("%w: \\U%s out of range", ErrEscape, body[i:i+n])
			}

			i += n
			writeRune(&b, v)

		case 'N':
			end := strings.IndexByte(body[i:], '}')
			if !strings.HasPrefix(body[i:], "{") || end < 0 {
				return "", fmt.Errorf("%w: malformed \\N character escape", ErrEscape)
			}

			b.WriteString(body[i-2 : i+end+1])
			i += end + 1

		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}

	return b.String(), nil
}

// DecodeBytes interprets the escape sequences of a bytes literal body.
func DecodeBytes(body string) (string, error) {
	var b strings.Builder
	b.Grow(len(body))

	for i := 0; i < len(body); {
		c := body[i]
		if c >= utf8.RuneSelf {
			return "", fmt.Errorf("%w: bytes can only contain ASCII literal characters", ErrEscape)
		}

		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			i++

			continue
		}

		e := body[i+1]
		i += 2

		if r, ok := simpleEscape(e); ok {
			if r >= 0 {
				b.WriteByte(byte(r))
			}

			continue
		}

		switch e {
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := octal(body[i-1:])
			i += n - 1
			b.WriteByte(byte(v))

		case 'x':
			v, err := hexDigits(body[i:], 2)
			if err != nil {
				return "", err
			}

			i += 2
			b.WriteByte(byte(v))

		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}

	return b.String(), nil
}

// simpleEscape maps single character escapes. A negative rune means the escape produces nothing.
func simpleEscape(e byte) (rune, bool) {
	switch e {
	case '\n':
		return -1, true
	case '\\', '\'', '"':
		return rune(e), true
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	default:
		return 0, false
	}
}

// octal parses up to three octal digits.
func octal(s string) (v, n int) {
	for n < 3 && n < len(s) && '0' <= s[n] && s[n] <= '7' {
		v = v*8 + int(s[n]-'0')
		n++
	}

	return v, n
}

func hexDigits(s string, n int) (rune, error) {
	if len(s) < n {
		return 0, fmt.Errorf("%w: truncated escape", ErrEscape)
	}

	var v rune

	for i := range n {
		d, ok := hexValue(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: truncated escape", ErrEscape)
		}

		v = v<<4 | d
	}

	return v, nil
}

func hexValue(c byte) (rune, bool) {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0'), true
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return rune(c-'A') + 10, true
	default:
		return 0, false
	}
}

// writeRune appends r in generalized UTF-8, encoding surrogates instead of replacing them.
func writeRune(b *strings.Builder, r rune) {
	if 0xd800 <= r && r <= 0xdfff {
		b.WriteByte(byte(0xe0 | r>>12))
		b.WriteByte(byte(0x80 | (r>>6)&0x3f))
		b.WriteByte(byte(0x80 | r&0x3f))

		return
	}

	b.WriteRune(r)
}

// RuneString encodes a single code point in generalized UTF-8.
func RuneString(r rune) string {
	var b strings.Builder
	writeRune(&b, r)

	return b.String()
}

// Runes decodes a generalized UTF-8 string, including encoded surrogates.
func Runes(s string) []rune {
	rs := make([]rune, 0, len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 && i+2 < len(s) && s[i] == 0xed && s[i+1]&0xe0 == 0xa0 && s[i+2]&0xc0 == 0x80 {
			r = rune(s[i]&0x0f)<<12 | rune(s[i+1]&0x3f)<<6 | rune(s[i+2]&0x3f)
			size = 3
		}

		rs = append(rs, r)
		i += size
	}

	return rs
}
