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

import "github.com/TrLucas/codingtools/internal/pyast"

//go:generate go tool stringer -type Kind -linecomment

// Kind is the type of a token, named like Python's token module.
type Kind uint8

const (
	EndMarker Kind = iota // ENDMARKER
	Name                  // NAME
	Number                // NUMBER
	String                // STRING
	Op                    // OP
	Comment               // COMMENT
	NL                    // NL
	Newline               // NEWLINE
	Indent                // INDENT
	Dedent                // DEDENT
)

// Token is a lexical token.
//
// Positions have 1-based lines and 0-based columns counted in characters,
// not bytes. Line holds the physical line(s) the token was read from.
type Token struct {
	Kind       Kind
	Text       string
	Start, End pyast.Pos
	Line       string
}

// Is reports whether t is the operator op.
func (t Token) Is(op string) bool {
	return t.Kind == Op && t.Text == op
}
