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

package pytoken

import "strings"

// Line is a logical line: the tokens of one statement, possibly spanning
// several physical lines. A comment-only line forms a logical line with
// empty text.
type Line struct {
	Tokens []Token
	// Text joins the tokens with comments dropped and string contents replaced by "x".
	Text string
	// Previous is the text of the last non-empty logical line before this one.
	Previous string
}

// Logical groups tokens into logical lines.
// Trailing tokens that carry no text, like the final dedents, form no line.
func Logical(tokens []Token) []Line {
	var (
		lines    []Line
		pending  []Token
		parens   int
		previous string
	)

	flush := func() {
		text, ok := logicalText(pending)
		if !ok {
			return
		}

		lines = append(lines, Line{Tokens: pending, Text: text, Previous: previous})
		if text != "" {
			previous = text
		}

		pending = nil
	}

	for _, tok := range tokens {
		pending = append(pending, tok)

		switch {
		case tok.Kind == Op:
			switch tok.Text {
			case "(", "[", "{":
				parens++

			case ")", "]", "}":
				parens--
			}

		case parens > 0:

		case tok.Kind == Newline:
			flush()

		case tok.Kind == NL:
			if len(pending) == 1 {
				pending = pending[:0]
			} else {
				flush()
			}
		}
	}

	if len(pending) > 0 {
		flush()
	}

	return lines
}

// logicalText joins the tokens of a logical line. It reports false when
// no token carries text or comments.
func logicalText(tokens []Token) (string, bool) {
	var (
		text strings.Builder
		prev *Token
		seen bool
	)

	for i := range tokens {
		tok := &tokens[i]

		switch tok.Kind {
		case NL, Newline, Indent, Dedent, EndMarker:
			continue

		case Comment:
			seen = true

			continue

		default:
			seen = true
		}

		s := tok.Text
		if tok.Kind == String {
			s = mute(s)
		}

		switch {
		case prev == nil:

		case prev.End.Line != tok.Start.Line:
			last := lastRune(prev.Text)
			if last == ',' || !strings.ContainsRune("{[(", last) && !strings.Contains("}])", s) {
				text.WriteByte(' ')
			}

		case prev.End.Col != tok.Start.Col:
			if r := []rune(tok.Line); prev.End.Col < tok.Start.Col && tok.Start.Col <= len(r) {
				text.WriteString(string(r[prev.End.Col:tok.Start.Col]))
			}
		}

		text.WriteString(s)

		prev = tok
	}

	return text.String(), seen
}

// mute replaces the contents of a string literal with "x", keeping prefix and quotes.
func mute(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return s
	}

	start := strings.IndexRune(s, r[len(r)-1])
	start = len([]rune(s[:start])) + 1
	end := len(r) - 1

	if len(r) >= 6 {
		if q := string(r[len(r)-3:]); q == `"""` || q == "'''" {
			start += 2
			end -= 2
		}
	}

	if start > end {
		return s
	}

	return string(r[:start]) + strings.Repeat("x", end-start) + string(r[end:])
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}

	return r[len(r)-1]
}
