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

package pyparse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/pystr"
)

// str converts a string literal or an implicit concatenation of literals.
func (c *converter) str(n *sitter.Node) pyast.Expr {
	parts := []*sitter.Node{n}
	if n.Type() == "concatenated_string" {
		parts = parts[:0]

		for _, ch := range named(n) {
			if ch.Type() == "string" {
				parts = append(parts, ch)
			}
		}
	}

	var (
		values    []pyast.Expr
		text      strings.Builder
		bytes     int
		formatted bool
	)

	flush := func(at *sitter.Node) {
		if text.Len() > 0 {
			values = append(values, &pyast.Str{Loc: loc(at), Value: text.String()})
			text.Reset()
		}
	}

	for _, part := range parts {
		lit, ok := pystr.Split(c.text(part))
		if !ok {
			c.fail(part, "malformed string literal")
		}

		if lit.IsBytes() {
			bytes++
		}

		if !lit.Formatted() {
			text.WriteString(c.value(part, lit))

			continue
		}

		formatted = true

		// Literal text between replacement fields is taken from the source.
		start := int(part.StartByte()) + len(lit.Prefix) + len(lit.Quote)
		end := int(part.EndByte()) - len(lit.Quote)
		plain := pystr.Literal{Prefix: strings.ReplaceAll(lit.Prefix, "f", ""), Quote: lit.Quote}

		for i := range int(part.ChildCount()) {
			field := part.Child(i)
			if field.Type() != "interpolation" {
				continue
			}

			plain.Body = unescapeBraces(string(c.src[start:field.StartByte()]))
			text.WriteString(c.value(part, plain))
			flush(part)

			values = append(values, &pyast.FormattedValue{Loc: loc(field), Value: c.interpolation(field)})
			start = int(field.EndByte())
		}

		plain.Body = unescapeBraces(string(c.src[start:end]))
		text.WriteString(c.value(part, plain))
	}

	switch {
	case bytes > 0 && bytes != len(parts):
		c.fail(n, "cannot mix bytes and nonbytes literals")

	case bytes > 0:
		return &pyast.Bytes{Loc: loc(n), Value: text.String()}

	case formatted:
		flush(n)

		return &pyast.JoinedStr{Loc: loc(n), Values: values}
	}

	return &pyast.Str{Loc: loc(n), Value: text.String()}
}

func (c *converter) value(n *sitter.Node, lit pystr.Literal) string {
	v, err := lit.Value()
	if err != nil {
		c.fail(n, "(unicode error) %v", err)
	}

	return v
}

func (c *converter) interpolation(n *sitter.Node) pyast.Expr {
	kids := named(n)
	if len(kids) == 0 {
		c.fail(n, "f-string: empty expression not allowed")
	}

	return c.expr(kids[0])
}

func unescapeBraces(s string) string {
	return strings.NewReplacer("{{", "{", "}}", "}").Replace(s)
}
