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
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/TrLucas/codingtools/internal/pyast"
)

func (c *converter) exprs(list []*sitter.Node) []pyast.Expr {
	exprs := make([]pyast.Expr, 0, len(list))
	for _, n := range list {
		exprs = append(exprs, c.expr(n))
	}

	return exprs
}

// target converts an assignment or deletion target.
func (c *converter) target(n *sitter.Node, ctx pyast.ExprContext) pyast.Expr {
	e := c.expr(n)
	pyast.SetContext(e, ctx)

	return e
}

func (c *converter) expr(n *sitter.Node) pyast.Expr {
	switch n.Type() {
	case "identifier", "keyword_identifier":
		return &pyast.Name{Loc: loc(n), ID: c.text(n)}

	case "integer", "float":
		return &pyast.Num{Loc: loc(n), Literal: c.text(n)}

	case "true":
		return &pyast.NameConstant{Loc: loc(n), Value: pyast.True}

	case "false":
		return &pyast.NameConstant{Loc: loc(n), Value: pyast.False}

	case "none":
		return &pyast.NameConstant{Loc: loc(n), Value: pyast.None}

	case "ellipsis":
		return &pyast.Ellipsis{Loc: loc(n)}

	case "string", "concatenated_string":
		return c.str(n)

	case "parenthesized_expression", "type", "parenthesized_list_splat":
		kids := named(n)
		if len(kids) != 1 {
			c.fail(n, "unexpected %s", n.Type())
		}

		return c.expr(kids[0])

	case "tuple", "expression_list", "pattern_list", "tuple_pattern":
		return &pyast.Tuple{Loc: loc(n), Elts: c.exprs(named(n))}

	case "list", "list_pattern":
		return &pyast.List{Loc: loc(n), Elts: c.exprs(named(n))}

	case "set":
		return &pyast.Set{Loc: loc(n), Elts: c.exprs(named(n))}

	case "dictionary":
		return c.dict(n)

	case "list_splat", "list_splat_pattern":
		return &pyast.Starred{Loc: loc(n), Value: c.expr(named(n)[0])}

	case "attribute":
		return &pyast.Attribute{
			Loc:   loc(n),
			Value: c.expr(c.field(n, "object")),
			Attr:  c.text(c.field(n, "attribute")),
		}

	case "subscript":
		return c.subscript(n)

	case "slice":
		return c.slice(n)

	case "call":
		return c.call(n)

	case "binary_operator":
		op, ok := pyast.LookupOperator(c.text(c.field(n, "operator")))
		if !ok {
			c.fail(n, "unknown operator %q", c.text(c.field(n, "operator")))
		}

		return &pyast.BinOp{
			Loc:   loc(n),
			Left:  c.expr(c.field(n, "left")),
			Op:    op,
			Right: c.expr(c.field(n, "right")),
		}

	case "unary_operator":
		return &pyast.UnaryOp{
			Loc:     loc(n),
			Op:      c.unaryOperator(c.field(n, "operator")),
			Operand: c.expr(c.field(n, "argument")),
		}

	case "not_operator":
		return &pyast.UnaryOp{Loc: loc(n), Op: pyast.Not, Operand: c.expr(c.field(n, "argument"))}

	case "boolean_operator":
		return c.boolOp(n)

	case "comparison_operator":
		return c.compare(n)

	case "lambda":
		return &pyast.Lambda{
			Loc:  loc(n),
			Args: c.parameters(n.ChildByFieldName("parameters")),
			Body: c.expr(c.field(n, "body")),
		}

	case "conditional_expression":
		kids := named(n)
		if len(kids) != 3 {
			c.fail(n, "incomplete conditional expression")
		}

		return &pyast.IfExp{Loc: loc(n), Body: c.expr(kids[0]), Test: c.expr(kids[1]), Orelse: c.expr(kids[2])}

	case "named_expression":
		return &pyast.NamedExpr{
			Loc:    loc(n),
			Target: c.target(c.field(n, "name"), pyast.Store),
			Value:  c.expr(c.field(n, "value")),
		}

	case "list_comprehension":
		return &pyast.ListComp{Loc: loc(n), Elt: c.expr(c.field(n, "body")), Generators: c.comprehensions(n)}

	case "set_comprehension":
		return &pyast.SetComp{Loc: loc(n), Elt: c.expr(c.field(n, "body")), Generators: c.comprehensions(n)}

	case "generator_expression":
		return &pyast.GeneratorExp{Loc: loc(n), Elt: c.expr(c.field(n, "body")), Generators: c.comprehensions(n)}

	case "dictionary_comprehension":
		pair := c.field(n, "body")

		return &pyast.DictComp{
			Loc:        loc(n),
			Key:        c.expr(c.field(pair, "key")),
			Value:      c.expr(c.field(pair, "value")),
			Generators: c.comprehensions(n),
		}

	case "await":
		return &pyast.Await{Loc: loc(n), Value: c.expr(named(n)[0])}

	case "yield":
		if hasToken(n, "from") {
			return &pyast.YieldFrom{Loc: loc(n), Value: c.expr(named(n)[0])}
		}

		return &pyast.Yield{Loc: loc(n), Value: c.optExprs(n)}

	default:
		c.fail(n, "unsupported expression %s", n.Type())

		return nil
	}
}

func (c *converter) unaryOperator(n *sitter.Node) pyast.UnaryOperator {
	switch op := c.text(n); op {
	case "+":
		return pyast.UAdd

	case "-":
		return pyast.USub

	case "~":
		return pyast.Invert

	default:
		c.fail(n, "unknown unary operator %q", op)

		return 0
	}
}

func (c *converter) dict(n *sitter.Node) pyast.Expr {
	d := &pyast.Dict{Loc: loc(n)}

	for _, ch := range named(n) {
		switch ch.Type() {
		case "pair":
			d.Keys = append(d.Keys, c.expr(c.field(ch, "key")))
			d.Values = append(d.Values, c.expr(c.field(ch, "value")))

		case "dictionary_splat":
			d.Keys = append(d.Keys, nil)
			d.Values = append(d.Values, c.expr(named(ch)[0]))

		default:
			c.fail(ch, "unexpected %s in dictionary", ch.Type())
		}
	}

	return d
}

func (c *converter) subscript(n *sitter.Node) pyast.Expr {
	value := c.field(n, "value")
	s := &pyast.Subscript{Loc: loc(n), Value: c.expr(value)}

	var indices []*sitter.Node

	for _, ch := range named(n) {
		if ch.StartByte() >= value.EndByte() {
			indices = append(indices, ch)
		}
	}

	switch len(indices) {
	case 0:
		c.fail(n, "subscript without index")

	case 1:
		s.Slice = c.expr(indices[0])

	default:
		s.Slice = &pyast.Tuple{Loc: loc(indices[0]), Elts: c.exprs(indices)}
	}

	return s
}

// slice converts "lower:upper:step" where every part is optional.
func (c *converter) slice(n *sitter.Node) pyast.Expr {
	s := &pyast.Slice{Loc: loc(n)}
	part := 0

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		if !ch.IsNamed() {
			if ch.Type() == ":" {
				part++
			}

			continue
		}

		if ch.Type() == "comment" {
			continue
		}

		switch part {
		case 0:
			s.Lower = c.expr(ch)
		case 1:
			s.Upper = c.expr(ch)
		default:
			s.Step = c.expr(ch)
		}
	}

	return s
}

func (c *converter) call(n *sitter.Node) pyast.Expr {
	call := &pyast.Call{Loc: loc(n), Func: c.expr(c.field(n, "function"))}

	switch args := c.field(n, "arguments"); args.Type() {
	case "generator_expression":
		call.Args = []pyast.Expr{c.expr(args)}

	default:
		call.Args, call.Keywords = c.callArgs(args)
	}

	return call
}

// callArgs converts an argument list into positional arguments and keywords.
func (c *converter) callArgs(n *sitter.Node) ([]pyast.Expr, []*pyast.Keyword) {
	var (
		args     []pyast.Expr
		keywords []*pyast.Keyword
	)

	for _, ch := range named(n) {
		switch ch.Type() {
		case "keyword_argument":
			keywords = append(keywords, &pyast.Keyword{
				Loc:   loc(ch),
				Arg:   c.text(c.field(ch, "name")),
				Value: c.expr(c.field(ch, "value")),
			})

		case "dictionary_splat":
			keywords = append(keywords, &pyast.Keyword{Loc: loc(ch), Value: c.expr(named(ch)[0])})

		default:
			args = append(args, c.expr(ch))
		}
	}

	return args, keywords
}

func (c *converter) boolOp(n *sitter.Node) pyast.Expr {
	var op pyast.BoolOperator

	switch o := c.text(c.field(n, "operator")); o {
	case "and":
		op = pyast.And

	case "or":
		op = pyast.Or

	default:
		c.fail(n, "unknown boolean operator %q", o)
	}

	e := &pyast.BoolOp{Loc: loc(n), Op: op}

	// Unparenthesized chains of the same operator are a single node.
	left := c.field(n, "left")
	l := c.expr(left)
	if b, ok := l.(*pyast.BoolOp); ok && b.Op == op && left.Type() == "boolean_operator" {
		e.Values = b.Values
	} else {
		e.Values = []pyast.Expr{l}
	}

	e.Values = append(e.Values, c.expr(c.field(n, "right")))

	return e
}

func (c *converter) compare(n *sitter.Node) pyast.Expr {
	e := &pyast.Compare{Loc: loc(n)}

	var pending string

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)

		if ch.IsNamed() {
			if ch.Type() == "comment" {
				continue
			}

			operand := c.expr(ch)
			if e.Left == nil {
				e.Left = operand

				continue
			}

			op, ok := pyast.LookupCmpOp(pending)
			if !ok {
				c.fail(ch, "unknown comparison %q", pending)
			}

			e.Ops = append(e.Ops, op)
			e.Comparators = append(e.Comparators, operand)
			pending = ""

			continue
		}

		// "not in" and "is not" may be two tokens.
		if pending != "" {
			pending += " "
		}

		pending += ch.Type()
	}

	return e
}

func (c *converter) comprehensions(n *sitter.Node) []*pyast.Comprehension {
	var list []*pyast.Comprehension

	for _, ch := range named(n) {
		switch ch.Type() {
		case "for_in_clause":
			list = append(list, c.forIn(ch))

		case "if_clause":
			if len(list) == 0 {
				c.fail(ch, "condition before for clause")
			}

			last := list[len(list)-1]
			last.Ifs = append(last.Ifs, c.expr(named(ch)[0]))
		}
	}

	return list
}

func (c *converter) forIn(n *sitter.Node) *pyast.Comprehension {
	comp := &pyast.Comprehension{
		Loc:    loc(n),
		Async:  hasToken(n, "async"),
		Target: c.target(c.field(n, "left"), pyast.Store),
	}

	var (
		iters []*sitter.Node
		in    bool
	)

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)

		switch {
		case !ch.IsNamed():
			in = in || ch.Type() == "in"

		case in && ch.Type() != "comment":
			iters = append(iters, ch)
		}
	}

	switch len(iters) {
	case 0:
		c.fail(n, "for clause without iterable")

	case 1:
		comp.Iter = c.expr(iters[0])

	default:
		comp.Iter = &pyast.Tuple{Loc: loc(iters[0]), Elts: c.exprs(iters)}
	}

	return comp
}
