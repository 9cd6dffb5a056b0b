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

// Package pyparse parses Python source into a [pyast.Module] using the
// tree-sitter Python grammar.
package pyparse

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/TrLucas/codingtools/internal/pyast"
)

// ErrSyntax is wrapped by every [*SyntaxError].
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes source that could not be parsed.
type SyntaxError struct {
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Pos returns the position of the error.
func (e *SyntaxError) Pos() pyast.Pos { return pyast.Pos{Line: e.Line, Col: e.Col} }

// Parse parses a complete Python source file.
// Errors in the source are returned as [*SyntaxError].
func Parse(ctx context.Context, src []byte) (*pyast.Module, error) {
	if !utf8.Valid(src) {
		return nil, &SyntaxError{Line: 1, Col: 0, Msg: "source is not valid UTF-8"}
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, firstError(root, src)
	}

	return convert(root, src)
}

// ParseExpr parses a single Python expression.
func ParseExpr(ctx context.Context, src string) (pyast.Expr, error) {
	m, err := Parse(ctx, []byte(src))
	if err != nil {
		return nil, err
	}

	if len(m.Body) != 1 {
		return nil, &SyntaxError{Line: 1, Col: 0, Msg: "expected a single expression"}
	}

	s, ok := m.Body[0].(*pyast.ExprStmt)
	if !ok {
		return nil, &SyntaxError{Line: 1, Col: 0, Msg: "expected an expression"}
	}

	return s.Value, nil
}

// firstError returns the first erroneous or missing node in source order.
func firstError(n *sitter.Node, src []byte) *SyntaxError {
	if n.IsMissing() {
		return syntaxErrorAt(n, fmt.Sprintf("missing %q", n.Type()))
	}

	if n.IsError() {
		if n.ChildCount() > 0 {
			if tok := n.Child(0); !tok.IsNamed() {
				return syntaxErrorAt(n, fmt.Sprintf("unexpected %q", tok.Content(src)))
			}
		}

		return syntaxErrorAt(n, "invalid syntax")
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c.HasError() || c.IsMissing() {
			return firstError(c, src)
		}
	}

	return syntaxErrorAt(n, "invalid syntax")
}

func syntaxErrorAt(n *sitter.Node, msg string) *SyntaxError {
	p := n.StartPoint()

	return &SyntaxError{Line: int(p.Row) + 1, Col: int(p.Column), Msg: msg}
}

// bailout is raised by the converter on constructs it can not represent.
type bailout struct{ err *SyntaxError }

func convert(root *sitter.Node, src []byte) (m *pyast.Module, err error) {
	c := converter{src: src}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}

			m, err = nil, b.err
		}
	}()

	return c.module(root), nil
}
