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

// Package tokencheck implements the checks running on the token stream of
// one logical line and on single physical lines.
//
// # Checks
//
//   - [CheckQuotes]: string literal style (A110, A112).
//   - [CheckRedundantParenthesis]: parenthesised if, elif and while conditions (A111).
//   - [CheckEncoding]: source encoding declarations (A303).
package tokencheck

import (
	"regexp"
	"slices"
	"strings"

	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/pystr"
	"github.com/TrLucas/codingtools/internal/pytoken"
	"github.com/TrLucas/codingtools/internal/report"
)

// State is carried between the logical lines of one file.
type State struct {
	// UnicodeLiterals is set after "from __future__ import unicode_literals".
	UnicodeLiterals bool
}

var (
	docstringContext = regexp.MustCompile(`^(?:(?:(?:async\s+)?def|class)\s|$)`)
	encodingComment  = regexp.MustCompile(`^\s*#.*coding[:=]`)
)

// CheckQuotes reports string literals not written the way ascii() would
// render them, raw strings not using single quotes and "u" prefixes.
// previous is the text of the preceding logical line, used to recognize docstrings.
func CheckQuotes(tokens []pytoken.Token, previous string, state *State) []report.Finding {
	if futureImport(tokens) {
		state.UnicodeLiterals = true
	}

	var findings []report.Finding

	first := true
	for _, tok := range tokens {
		if tok.Kind == pytoken.Indent || tok.Kind == pytoken.Dedent {
			continue
		}

		if tok.Kind == pytoken.String {
			docstring := first && docstringContext.MatchString(previous)
			findings = append(findings, checkString(tok, docstring)...)
		}

		first = false
	}

	return findings
}

func futureImport(tokens []pytoken.Token) bool {
	if len(tokens) < 3 || tokens[0].Text != "from" || tokens[1].Text != "__future__" || tokens[2].Text != "import" {
		return false
	}

	return slices.ContainsFunc(tokens[3:], func(tok pytoken.Token) bool { return tok.Text == "unicode_literals" })
}

func checkString(tok pytoken.Token, docstring bool) []report.Finding {
	lit, ok := pystr.Split(tok.Text)
	if !ok || lit.Formatted() {
		return nil
	}

	var findings []report.Finding

	if lit.Unicode() {
		findings = append(findings, report.UnicodePrefix.At(tok.Start))
	}

	switch {
	case docstring, tok.Start.Line != tok.End.Line:

	case lit.Raw():
		if lit.Quote != "'" && (lit.Quote != `"` || !strings.Contains(lit.Body, "'")) {
			findings = append(findings, report.RawStringQuotes.At(tok.Start))
		}

	default:
		if canonical, err := pystr.Canonical(lit); err != nil || !canonical {
			findings = append(findings, report.StringNotASCII.At(tok.Start))
		}
	}

	return findings
}

// CheckRedundantParenthesis reports an if, elif or while condition wrapped
// completely in parentheses on a single line.
func CheckRedundantParenthesis(tokens []pytoken.Token) []report.Finding {
	if len(tokens) == 0 {
		return nil
	}

	var (
		startLine = tokens[0].Start.Line
		level     int
		statement string
		pos       pyast.Pos
	)

	for i, tok := range tokens {
		if tok.Kind == pytoken.Indent || tok.Kind == pytoken.Dedent {
			continue
		}

		if statement == "" {
			if tok.Kind != pytoken.Name || tok.Text != "if" && tok.Text != "elif" && tok.Text != "while" {
				return nil
			}

			if i+2 >= len(tokens) || !tokens[i+1].Is("(") || tokens[i+2].Is(")") {
				return nil
			}

			statement, pos = tok.Text, tokens[i+1].Start

			continue
		}

		if tok.End.Line > startLine {
			return nil
		}

		if tok.Kind != pytoken.Op {
			continue
		}

		switch tok.Text {
		case ",":
			if level == 1 {
				return nil
			}

		case "(":
			level++

		case ")":
			level--
			if level != 0 {
				continue
			}

			if i+1 >= len(tokens) || !tokens[i+1].Is(":") {
				return nil
			}

			return []report.Finding{report.RedundantParenthesis.At(pos, statement)}
		}
	}

	return nil
}

// CheckEncoding reports an encoding declaration on one of the first two lines.
func CheckEncoding(physical string, lineNumber int) (report.Finding, bool) {
	if lineNumber > 2 || !encodingComment.MatchString(physical) {
		return report.Finding{}, false
	}

	return report.NonDefaultEncoding.At(pyast.Pos{Line: lineNumber, Col: 0}), true
}
