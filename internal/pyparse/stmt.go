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
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/TrLucas/codingtools/internal/pyast"
)

// converter translates a tree-sitter syntax tree into [pyast] nodes.
type converter struct {
	src []byte
}

func (c *converter) fail(n *sitter.Node, format string, args ...any) {
	panic(bailout{syntaxErrorAt(n, fmt.Sprintf(format, args...))})
}

func (c *converter) text(n *sitter.Node) string { return n.Content(c.src) }

func loc(n *sitter.Node) pyast.Loc {
	p := n.StartPoint()

	return pyast.At(int(p.Row)+1, int(p.Column))
}

// named returns the named children of n, without comments.
func named(n *sitter.Node) []*sitter.Node {
	var list []*sitter.Node

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		if !ch.IsNamed() {
			continue
		}

		switch ch.Type() {
		case "comment", "line_continuation":
			continue
		}

		list = append(list, ch)
	}

	return list
}

// childOfType returns the first direct child of n with type typ, or nil.
func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := range int(n.ChildCount()) {
		if ch := n.Child(i); ch.Type() == typ {
			return ch
		}
	}

	return nil
}

// hasToken reports whether n has an anonymous child spelled tok.
func hasToken(n *sitter.Node, tok string) bool {
	for i := range int(n.ChildCount()) {
		if ch := n.Child(i); !ch.IsNamed() && ch.Type() == tok {
			return true
		}
	}

	return false
}

func (c *converter) field(n *sitter.Node, name string) *sitter.Node {
	f := n.ChildByFieldName(name)
	if f == nil {
		c.fail(n, "%s without %s", n.Type(), name)
	}

	return f
}

func (c *converter) module(n *sitter.Node) *pyast.Module {
	return &pyast.Module{Loc: pyast.At(1, 0), Body: c.stmts(n)}
}

func (c *converter) stmts(n *sitter.Node) []pyast.Stmt {
	kids := named(n)
	list := make([]pyast.Stmt, 0, len(kids))

	for _, ch := range kids {
		list = append(list, c.stmt(ch))
	}

	return list
}

// suite returns the statements of the block that is a direct child of n.
func (c *converter) suite(n *sitter.Node) []pyast.Stmt {
	b := childOfType(n, "block")
	if b == nil {
		c.fail(n, "%s without body", n.Type())
	}

	return c.stmts(b)
}

func (c *converter) stmt(n *sitter.Node) pyast.Stmt {
	switch n.Type() {
	case "expression_statement":
		return c.exprStmt(n)

	case "return_statement":
		return &pyast.Return{Loc: loc(n), Value: c.optExprs(n)}

	case "delete_statement":
		return c.deleteStmt(n)

	case "raise_statement":
		return c.raiseStmt(n)

	case "pass_statement":
		return &pyast.Pass{Loc: loc(n)}

	case "break_statement":
		return &pyast.Break{Loc: loc(n)}

	case "continue_statement":
		return &pyast.Continue{Loc: loc(n)}

	case "global_statement":
		return &pyast.Global{Loc: loc(n), Names: c.identifiers(n)}

	case "nonlocal_statement":
		return &pyast.Nonlocal{Loc: loc(n), Names: c.identifiers(n)}

	case "assert_statement":
		kids := named(n)
		s := &pyast.Assert{Loc: loc(n), Test: c.expr(kids[0])}

		if len(kids) > 1 {
			s.Msg = c.expr(kids[1])
		}

		return s

	case "import_statement":
		return &pyast.Import{Loc: loc(n), Names: c.aliases(n)}

	case "import_from_statement", "future_import_statement":
		return c.importFrom(n)

	case "print_statement", "exec_statement":
		return c.legacyCall(n)

	case "type_alias_statement":
		return &pyast.TypeAlias{
			Loc:   loc(n),
			Name:  c.target(c.field(n, "left"), pyast.Store),
			Value: c.expr(c.field(n, "right")),
		}

	case "if_statement":
		return c.ifStmt(n)

	case "for_statement":
		return &pyast.For{
			Loc:    loc(n),
			Async:  hasToken(n, "async"),
			Target: c.target(c.field(n, "left"), pyast.Store),
			Iter:   c.expr(c.field(n, "right")),
			Body:   c.suite(n),
			Orelse: c.elseClause(n),
		}

	case "while_statement":
		return &pyast.While{
			Loc:    loc(n),
			Test:   c.expr(c.field(n, "condition")),
			Body:   c.suite(n),
			Orelse: c.elseClause(n),
		}

	case "try_statement":
		return c.tryStmt(n)

	case "with_statement":
		return c.withStmt(n)

	case "match_statement":
		return c.matchStmt(n)

	case "function_definition":
		return c.functionDef(n)

	case "class_definition":
		return c.classDef(n)

	case "decorated_definition":
		return c.decorated(n)

	default:
		c.fail(n, "unsupported statement %s", n.Type())

		return nil
	}
}

func (c *converter) exprStmt(n *sitter.Node) pyast.Stmt {
	kids := named(n)
	if len(kids) == 0 {
		c.fail(n, "empty expression statement")
	}

	if len(kids) > 1 {
		return &pyast.ExprStmt{Loc: loc(n), Value: &pyast.Tuple{Loc: loc(kids[0]), Elts: c.exprs(kids)}}
	}

	switch e := kids[0]; e.Type() {
	case "assignment":
		return c.assignment(e)

	case "augmented_assignment":
		op, ok := pyast.LookupOperator(c.text(c.field(e, "operator")))
		if !ok {
			c.fail(e, "unknown operator %q", c.text(c.field(e, "operator")))
		}

		return &pyast.AugAssign{
			Loc:    loc(e),
			Target: c.target(c.field(e, "left"), pyast.Store),
			Op:     op,
			Value:  c.expr(c.field(e, "right")),
		}

	default:
		return &pyast.ExprStmt{Loc: loc(n), Value: c.expr(e)}
	}
}

func (c *converter) assignment(n *sitter.Node) pyast.Stmt {
	left, right := c.field(n, "left"), n.ChildByFieldName("right")

	if typ := n.ChildByFieldName("type"); typ != nil {
		s := &pyast.AnnAssign{Loc: loc(n), Target: c.target(left, pyast.Store), Annotation: c.expr(typ)}
		if right != nil {
			s.Value = c.expr(right)
		}

		return s
	}

	if right == nil {
		c.fail(n, "assignment without value")
	}

	targets := []pyast.Expr{c.target(left, pyast.Store)}

	for right.Type() == "assignment" && right.ChildByFieldName("type") == nil {
		targets = append(targets, c.target(c.field(right, "left"), pyast.Store))
		right = c.field(right, "right")
	}

	return &pyast.Assign{Loc: loc(n), Targets: targets, Value: c.expr(right)}
}

func (c *converter) deleteStmt(n *sitter.Node) pyast.Stmt {
	s := &pyast.Delete{Loc: loc(n)}

	for _, ch := range named(n) {
		if ch.Type() == "expression_list" {
			for _, elt := range named(ch) {
				s.Targets = append(s.Targets, c.target(elt, pyast.Del))
			}

			continue
		}

		s.Targets = append(s.Targets, c.target(ch, pyast.Del))
	}

	return s
}

func (c *converter) raiseStmt(n *sitter.Node) pyast.Stmt {
	s := &pyast.Raise{Loc: loc(n)}
	cause := false

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)

		switch {
		case !ch.IsNamed():
			cause = cause || ch.Type() == "from"

		case ch.Type() == "comment":

		case cause:
			s.Cause = c.expr(ch)

		case s.Exc == nil:
			s.Exc = c.expr(ch)
		}
	}

	return s
}

// optExprs converts the optional expression or expression list of n.
func (c *converter) optExprs(n *sitter.Node) pyast.Expr {
	kids := named(n)
	if len(kids) == 0 {
		return nil
	}

	return c.expr(kids[0])
}

func (c *converter) identifiers(n *sitter.Node) []string {
	kids := named(n)
	names := make([]string, 0, len(kids))

	for _, ch := range kids {
		names = append(names, c.text(ch))
	}

	return names
}

// aliases returns the imported names following the "import" keyword of n.
func (c *converter) aliases(n *sitter.Node) []*pyast.Alias {
	var (
		list      []*pyast.Alias
		sawImport bool
	)

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)

		switch ch.Type() {
		case "import":
			sawImport = true

		case "dotted_name":
			if sawImport {
				list = append(list, &pyast.Alias{Loc: loc(ch), Name: dotted(c.text(ch))})
			}

		case "aliased_import":
			list = append(list, &pyast.Alias{
				Loc:    loc(ch),
				Name:   dotted(c.text(c.field(ch, "name"))),
				AsName: c.text(c.field(ch, "alias")),
			})

		case "wildcard_import":
			list = append(list, &pyast.Alias{Loc: loc(ch), Name: "*"})
		}
	}

	return list
}

// dotted removes white space from a dotted name.
func dotted(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func (c *converter) importFrom(n *sitter.Node) pyast.Stmt {
	s := &pyast.ImportFrom{Loc: loc(n), Names: c.aliases(n)}

	if n.Type() == "future_import_statement" {
		s.Module = "__future__"

		return s
	}

	module := c.field(n, "module_name")
	if module.Type() == "relative_import" {
		for _, ch := range named(module) {
			switch ch.Type() {
			case "import_prefix":
				s.Level = len(strings.TrimSpace(c.text(ch)))

			case "dotted_name":
				s.Module = dotted(c.text(ch))
			}
		}

		return s
	}

	s.Module = dotted(c.text(module))

	return s
}

// legacyCall converts a Python 2 print or exec statement into a call.
func (c *converter) legacyCall(n *sitter.Node) pyast.Stmt {
	fn := c.text(n.Child(0))
	call := &pyast.Call{Loc: loc(n), Func: &pyast.Name{Loc: loc(n.Child(0)), ID: fn}}

	for _, ch := range named(n) {
		if ch.Type() == "chevron" {
			continue
		}

		call.Args = append(call.Args, c.expr(ch))
	}

	return &pyast.ExprStmt{Loc: loc(n), Value: call}
}

func (c *converter) ifStmt(n *sitter.Node) pyast.Stmt {
	root := &pyast.If{Loc: loc(n), Test: c.expr(c.field(n, "condition")), Body: c.suite(n)}
	cur := root

	for i := range int(n.ChildCount()) {
		switch ch := n.Child(i); ch.Type() {
		case "elif_clause":
			next := &pyast.If{Loc: loc(ch), Test: c.expr(c.field(ch, "condition")), Body: c.suite(ch)}
			cur.Orelse = []pyast.Stmt{next}
			cur = next

		case "else_clause":
			cur.Orelse = c.suite(ch)
		}
	}

	return root
}

// elseClause returns the body of the else clause of a loop, or nil.
func (c *converter) elseClause(n *sitter.Node) []pyast.Stmt {
	if e := childOfType(n, "else_clause"); e != nil {
		return c.suite(e)
	}

	return nil
}

func (c *converter) tryStmt(n *sitter.Node) pyast.Stmt {
	s := &pyast.Try{Loc: loc(n), Body: c.suite(n)}

	for i := range int(n.ChildCount()) {
		switch ch := n.Child(i); ch.Type() {
		case "except_clause":
			s.Handlers = append(s.Handlers, c.exceptHandler(ch))

		case "except_group_clause":
			s.Handlers = append(s.Handlers, c.exceptHandler(ch))
			s.Star = true

		case "else_clause":
			s.Orelse = c.suite(ch)

		case "finally_clause":
			s.Finalbody = c.suite(ch)
		}
	}

	return s
}

func (c *converter) exceptHandler(n *sitter.Node) *pyast.ExceptHandler {
	h := &pyast.ExceptHandler{Loc: loc(n), Body: c.suite(n)}

	var exprs []*sitter.Node

	for _, ch := range named(n) {
		if ch.Type() != "block" {
			exprs = append(exprs, ch)
		}
	}

	if len(exprs) == 0 {
		return h
	}

	if first := exprs[0]; first.Type() == "as_pattern" {
		value, alias := c.asPattern(first)
		h.Type, h.Name = c.expr(value), c.text(alias)

		return h
	}

	h.Type = c.expr(exprs[0])
	if len(exprs) > 1 {
		h.Name = c.text(exprs[1])
	}

	return h
}

// asPattern splits "value as alias" into its parts.
func (c *converter) asPattern(n *sitter.Node) (value, alias *sitter.Node) {
	kids := named(n)
	if len(kids) < 2 {
		c.fail(n, "incomplete as pattern")
	}

	value, alias = kids[0], kids[len(kids)-1]
	if alias.Type() == "as_pattern_target" {
		alias = named(alias)[0]
	}

	return value, alias
}

func (c *converter) withStmt(n *sitter.Node) pyast.Stmt {
	s := &pyast.With{Loc: loc(n), Async: hasToken(n, "async"), Body: c.suite(n)}

	clause := childOfType(n, "with_clause")
	if clause == nil {
		c.fail(n, "with statement without items")
	}

	for _, item := range named(clause) {
		if item.Type() != "with_item" {
			c.fail(item, "unexpected %s in with clause", item.Type())
		}

		s.Items = append(s.Items, c.withItem(item))
	}

	return s
}

func (c *converter) withItem(n *sitter.Node) *pyast.WithItem {
	value := c.field(n, "value")
	item := &pyast.WithItem{Loc: loc(n)}

	alias := n.ChildByFieldName("alias")
	if alias == nil && value.Type() == "as_pattern" {
		value, alias = c.asPattern(value)
	}

	item.ContextExpr = c.expr(value)
	if alias != nil {
		item.OptionalVars = c.target(alias, pyast.Store)
	}

	return item
}

func (c *converter) matchStmt(n *sitter.Node) pyast.Stmt {
	s := &pyast.Match{Loc: loc(n)}

	var subjects []*sitter.Node

	for _, ch := range named(n) {
		if ch.Type() != "block" {
			subjects = append(subjects, ch)
		}
	}

	switch len(subjects) {
	case 0:
		c.fail(n, "match statement without subject")

	case 1:
		s.Subject = c.expr(subjects[0])

	default:
		s.Subject = &pyast.Tuple{Loc: loc(subjects[0]), Elts: c.exprs(subjects)}
	}

	body := childOfType(n, "block")
	if body == nil {
		c.fail(n, "match statement without cases")
	}

	for _, ch := range named(body) {
		if ch.Type() != "case_clause" {
			continue
		}

		mc := &pyast.MatchCase{Loc: loc(ch), Body: c.suite(ch)}
		if guard := childOfType(ch, "if_clause"); guard != nil {
			mc.Guard = c.expr(named(guard)[0])
		}

		s.Cases = append(s.Cases, mc)
	}

	return s
}

func (c *converter) functionDef(n *sitter.Node) *pyast.FunctionDef {
	s := &pyast.FunctionDef{
		Loc:   loc(n),
		Name:  c.text(c.field(n, "name")),
		Async: hasToken(n, "async"),
		Args:  c.parameters(n.ChildByFieldName("parameters")),
		Body:  c.suite(n),
	}

	if r := n.ChildByFieldName("return_type"); r != nil {
		s.Returns = c.expr(r)
	}

	return s
}

func (c *converter) classDef(n *sitter.Node) *pyast.ClassDef {
	s := &pyast.ClassDef{Loc: loc(n), Name: c.text(c.field(n, "name")), Body: c.suite(n)}

	if bases := n.ChildByFieldName("superclasses"); bases != nil {
		s.Bases, s.Keywords = c.callArgs(bases)
	}

	return s
}

func (c *converter) decorated(n *sitter.Node) pyast.Stmt {
	var decorators []pyast.Expr

	for _, ch := range named(n) {
		if ch.Type() == "decorator" {
			decorators = append(decorators, c.expr(named(ch)[0]))
		}
	}

	switch def := c.field(n, "definition"); def.Type() {
	case "function_definition":
		s := c.functionDef(def)
		s.Decorators = decorators

		return s

	case "class_definition":
		s := c.classDef(def)
		s.Decorators = decorators

		return s

	default:
		c.fail(def, "unexpected decorated %s", def.Type())

		return nil
	}
}

func (c *converter) parameters(n *sitter.Node) *pyast.Arguments {
	if n == nil {
		return &pyast.Arguments{}
	}

	args := &pyast.Arguments{Loc: loc(n)}
	kind := pyast.Positional

	add := func(name *sitter.Node, annotation *sitter.Node, k pyast.ArgKind) {
		a := &pyast.Arg{Loc: loc(name), Name: c.text(name), Kind: k}
		if annotation != nil {
			a.Annotation = c.expr(annotation)
		}

		args.Args = append(args.Args, a)
	}

	var param func(p, annotation *sitter.Node)

	param = func(p, annotation *sitter.Node) {
		switch p.Type() {
		case "identifier", "keyword_identifier":
			add(p, annotation, kind)

		case "list_splat_pattern":
			add(named(p)[0], annotation, pyast.VarArgs)
			kind = pyast.KeywordOnly

		case "dictionary_splat_pattern":
			add(named(p)[0], annotation, pyast.KwArgs)

		case "tuple_pattern", "list_pattern":
			for _, elt := range named(p) {
				param(elt, nil)
			}

		case "typed_parameter":
			param(named(p)[0], c.field(p, "type"))

		case "default_parameter":
			param(c.field(p, "name"), nil)
			args.Defaults = append(args.Defaults, c.expr(c.field(p, "value")))

		case "typed_default_parameter":
			param(c.field(p, "name"), c.field(p, "type"))
			args.Defaults = append(args.Defaults, c.expr(c.field(p, "value")))

		case "keyword_separator":
			kind = pyast.KeywordOnly

		case "positional_separator":
			for _, a := range args.Args {
				if a.Kind == pyast.Positional {
					a.Kind = pyast.PositionalOnly
				}
			}

		default:
			c.fail(p, "unsupported parameter %s", p.Type())
		}
	}

	for _, p := range named(n) {
		param(p, nil)
	}

	return args
}
