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

// Package pytoken splits Python source into tokens the way Python's
// tokenize module does and groups them into logical lines.
package pytoken

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/TrLucas/codingtools/internal/pyast"
)

// ErrTokenize is returned for source that cannot be tokenized.
var ErrTokenize = errors.New("tokenize error")

// Error describes where tokenizing failed.
type Error struct {
	Pos pyast.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

func (e *Error) Unwrap() error { return ErrTokenize }

const tabSize = 8

var operators = makeSet(
	"**=", "//=", ">>=", "<<=", "...",
	"!=", "%=", "&=", "**", "*=", "+=", "-=", "->", "//", "/=", ":=",
	"<<", "<=", "<>", "==", ">=", ">>", "@=", "^=", "|=",
	"%", "&", "(", ")", "*", "+", ",", "-", ".", "/", ":", ";",
	"<", "=", ">", "@", "[", "]", "^", "{", "|", "}", "~",
)

var stringPrefixes = makeSet("r", "u", "b", "br", "rb", "f", "fr", "rf")

func makeSet(elems ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}

	return set
}

// Tokenize splits src into tokens, ending with an [EndMarker].
func Tokenize(src string) ([]Token, error) {
	t := tokenizer{indents: []int{0}}

	var last string

	lnum := 0
	for line := range strings.Lines(src) {
		lnum++
		last = line

		if err := t.line(lnum, line); err != nil {
			return nil, err
		}
	}

	switch {
	case t.str != nil:
		return nil, &Error{Pos: t.str.start, Msg: "EOF in multi-line string"}

	case t.parens > 0 || t.continued:
		return nil, &Error{Pos: pyast.Pos{Line: lnum + 1, Col: 0}, Msg: "EOF in multi-line statement"}
	}

	if trimmed := strings.TrimSpace(last); trimmed != "" && !strings.HasSuffix(last, "\n") && !strings.HasPrefix(trimmed, "#") {
		n := utf8.RuneCountInString(last)
		t.emit(Newline, "", pyast.Pos{Line: lnum, Col: n}, pyast.Pos{Line: lnum, Col: n + 1}, "")
	}

	end := pyast.Pos{Line: lnum + 1, Col: 0}
	for range t.indents[1:] {
		t.emit(Dedent, "", end, end, "")
	}

	t.emit(EndMarker, "", end, end, "")

	return t.tokens, nil
}

type tokenizer struct {
	tokens    []Token
	indents   []int
	parens    int
	continued bool
	str       *pending
}

// pending is a string literal continued on the next physical line.
type pending struct {
	start pyast.Pos
	quote string
	text  strings.Builder
	lines strings.Builder
}

func (t *tokenizer) emit(kind Kind, text string, start, end pyast.Pos, line string) {
	t.tokens = append(t.tokens, Token{Kind: kind, Text: text, Start: start, End: end, Line: line})
}

func (t *tokenizer) line(lnum int, line string) error {
	r := []rune(line)
	pos := 0

	switch {
	case t.str != nil:
		stop, more := closing(r, 0, t.str.quote)
		if stop < 0 {
			if !more {
				return &Error{Pos: t.str.start, Msg: "unterminated string literal"}
			}

			t.str.text.WriteString(line)
			t.str.lines.WriteString(line)

			return nil
		}

		t.str.text.WriteString(string(r[:stop]))
		t.str.lines.WriteString(line)
		t.emit(String, t.str.text.String(), t.str.start, pyast.Pos{Line: lnum, Col: stop}, t.str.lines.String())
		t.str = nil
		pos = stop

	case t.parens == 0 && !t.continued:
		column, blank := t.indentation(lnum, line, r, &pos)
		if blank {
			return nil
		}

		if err := t.indent(lnum, line, pos, column); err != nil {
			return err
		}

	default:
		t.continued = false
	}

	return t.scan(lnum, line, r, pos)
}

// indentation measures the indentation of a new statement line, advancing pos
// past it. Blank and comment-only lines are emitted completely.
func (t *tokenizer) indentation(lnum int, line string, r []rune, pos *int) (column int, blank bool) {
measure:
	for ; *pos < len(r); *pos++ {
		switch r[*pos] {
		case ' ':
			column++

		case '\t':
			column = (column/tabSize + 1) * tabSize

		case '\f':
			column = 0

		default:
			break measure
		}
	}

	if *pos == len(r) {
		return column, true
	}

	c := r[*pos]
	if c != '#' && c != '\r' && c != '\n' {
		return column, false
	}

	if c == '#' {
		comment := strings.TrimRight(string(r[*pos:]), "\r\n")
		n := utf8.RuneCountInString(comment)
		t.emit(Comment, comment, pyast.Pos{Line: lnum, Col: *pos}, pyast.Pos{Line: lnum, Col: *pos + n}, line)
		*pos += n
	}

	t.emit(NL, string(r[*pos:]), pyast.Pos{Line: lnum, Col: *pos}, pyast.Pos{Line: lnum, Col: len(r)}, line)

	return column, true
}

func (t *tokenizer) indent(lnum int, line string, pos, column int) error {
	at := pyast.Pos{Line: lnum, Col: pos}

	if column > t.indents[len(t.indents)-1] {
		t.indents = append(t.indents, column)
		t.emit(Indent, string([]rune(line)[:pos]), pyast.Pos{Line: lnum, Col: 0}, at, line)

		return nil
	}

	if !slices.Contains(t.indents, column) {
		return &Error{Pos: at, Msg: "unindent does not match any outer indentation level"}
	}

	for column < t.indents[len(t.indents)-1] {
		t.indents = t.indents[:len(t.indents)-1]
		t.emit(Dedent, "", at, at, line)
	}

	return nil
}

func (t *tokenizer) scan(lnum int, line string, r []rune, pos int) error {
	for pos < len(r) {
		for pos < len(r) && (r[pos] == ' ' || r[pos] == '\t' || r[pos] == '\f') {
			pos++
		}

		if pos == len(r) {
			break
		}

		start := pyast.Pos{Line: lnum, Col: pos}
		at := func(end int) pyast.Pos { return pyast.Pos{Line: lnum, Col: end} }

		switch c := r[pos]; {
		case c == '\r' || c == '\n':
			kind := Newline
			if t.parens > 0 {
				kind = NL
			}

			t.emit(kind, string(r[pos:]), start, at(len(r)), line)

			return nil

		case c == '#':
			comment := strings.TrimRight(string(r[pos:]), "\r\n")
			end := pos + utf8.RuneCountInString(comment)
			t.emit(Comment, comment, start, at(end), line)
			pos = end

		case c == '\\':
			if rest := string(r[pos+1:]); rest != "\n" && rest != "\r\n" {
				return &Error{Pos: start, Msg: "unexpected character after line continuation character"}
			}

			t.continued = true

			return nil

		case isDigit(c) || c == '.' && pos+1 < len(r) && isDigit(r[pos+1]):
			end := numberEnd(r, pos)
			t.emit(Number, string(r[pos:end]), start, at(end), line)
			pos = end

		case c == '\'' || c == '"':
			return t.stringLiteral(lnum, line, r, pos, pos)

		case isIdentStart(c):
			end := pos + 1
			for end < len(r) && isIdentPart(r[end]) {
				end++
			}

			if _, ok := stringPrefixes[strings.ToLower(string(r[pos:end]))]; ok && end < len(r) && (r[end] == '\'' || r[end] == '"') {
				return t.stringLiteral(lnum, line, r, pos, end)
			}

			t.emit(Name, string(r[pos:end]), start, at(end), line)
			pos = end

		default:
			end, ok := operatorEnd(r, pos)
			if !ok {
				return &Error{Pos: start, Msg: fmt.Sprintf("invalid character %q", c)}
			}

			op := string(r[pos:end])
			switch op {
			case "(", "[", "{":
				t.parens++

			case ")", "]", "}":
				t.parens--
			}

			t.emit(Op, op, start, at(end), line)
			pos = end
		}
	}

	return nil
}

// stringLiteral scans a string starting at pos with its opening quote at
// quote, then continues scanning the rest of the line.
func (t *tokenizer) stringLiteral(lnum int, line string, r []rune, pos, quote int) error {
	start := pyast.Pos{Line: lnum, Col: pos}

	q := string(r[quote])
	if quote+2 < len(r) && r[quote+1] == r[quote] && r[quote+2] == r[quote] {
		q = strings.Repeat(q, 3)
	}

	stop, more := closing(r, quote+utf8.RuneCountInString(q), q)
	if stop < 0 {
		if !more {
			return &Error{Pos: start, Msg: "unterminated string literal"}
		}

		t.str = &pending{start: start, quote: q}
		t.str.text.WriteString(string(r[pos:]))
		t.str.lines.WriteString(line)

		return nil
	}

	t.emit(String, string(r[pos:stop]), start, pyast.Pos{Line: lnum, Col: stop}, line)

	return t.scan(lnum, line, r, stop)
}

// closing finds the end of a string body starting at pos.
// It returns the index after the closing quote, or -1 and whether the
// literal continues on the next line.
func closing(r []rune, pos int, quote string) (stop int, more bool) {
	q, triple := rune(quote[0]), len(quote) == 3

	for i := pos; i < len(r); i++ {
		switch c := r[i]; {
		case c == '\\':
			if !triple && i+1 < len(r) && (r[i+1] == '\n' || r[i+1] == '\r') {
				return -1, true
			}

			i++

		case c == '\n' && !triple:
			return -1, false

		case c == q:
			if !triple {
				return i + 1, false
			}

			if i+2 < len(r) && r[i+1] == q && r[i+2] == q {
				return i + 3, false
			}
		}
	}

	return -1, triple
}

func operatorEnd(r []rune, pos int) (int, bool) {
	for n := 3; n > 0; n-- {
		if pos+n > len(r) {
			continue
		}

		if _, ok := operators[string(r[pos:pos+n])]; ok {
			return pos + n, true
		}
	}

	return pos, false
}

func numberEnd(r []rune, pos int) int {
	if r[pos] == '0' && pos+1 < len(r) && strings.ContainsRune("xXoObB", r[pos+1]) {
		pos += 2
		for pos < len(r) && (isHexDigit(r[pos]) || r[pos] == '_') {
			pos++
		}

		return pos
	}

	digits := func() {
		for pos < len(r) && (isDigit(r[pos]) || r[pos] == '_') {
			pos++
		}
	}

	digits()

	if pos < len(r) && r[pos] == '.' {
		pos++
		digits()
	}

	if pos < len(r) && (r[pos] == 'e' || r[pos] == 'E') {
		exp := pos + 1
		if exp < len(r) && (r[exp] == '+' || r[exp] == '-') {
			exp++
		}

		if exp < len(r) && isDigit(r[exp]) {
			pos = exp
			digits()
		}
	}

	if pos < len(r) && (r[pos] == 'j' || r[pos] == 'J') {
		pos++
	}

	return pos
}

func isDigit(c rune) bool { return '0' <= c && c <= '9' }

func isHexDigit(c rune) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.In(c, unicode.Nl, unicode.Other_ID_Start)
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || unicode.In(c, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}
