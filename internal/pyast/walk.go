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

package pyast

import (
	"fmt"
	"iter"
)

// Children yields the direct child nodes of n in field order.
// Absent optional children are skipped.
func Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		c := childYielder{yield: yield}
		c.children(n)
	}
}

type childYielder struct {
	yield func(Node) bool
	done  bool
}

func (c *childYielder) node(n Node) {
	if c.done || n == nil {
		return
	}

	if !c.yield(n) {
		c.done = true
	}
}

func (c *childYielder) exprs(list []Expr) {
	for _, e := range list {
		c.node(e)
	}
}

func (c *childYielder) stmts(list []Stmt) {
	for _, s := range list {
		c.node(s)
	}
}

func (c *childYielder) children(n Node) {
	switch n := n.(type) {
	case *Module:
		c.stmts(n.Body)

	case *FunctionDef:
		c.arguments(n.Args)
		c.stmts(n.Body)
		c.exprs(n.Decorators)
		c.expr(n.Returns)

	case *ClassDef:
		c.exprs(n.Bases)
		for _, k := range n.Keywords {
			c.node(k)
		}
		c.stmts(n.Body)
		c.exprs(n.Decorators)

	case *Return:
		c.expr(n.Value)

	case *Delete:
		c.exprs(n.Targets)

	case *Assign:
		c.exprs(n.Targets)
		c.expr(n.Value)

	case *AugAssign:
		c.expr(n.Target)
		c.expr(n.Value)

	case *AnnAssign:
		c.expr(n.Target)
		c.expr(n.Annotation)
		c.expr(n.Value)

	case *For:
		c.expr(n.Target)
		c.expr(n.Iter)
		c.stmts(n.Body)
		c.stmts(n.Orelse)

	case *While:
		c.expr(n.Test)
		c.stmts(n.Body)
		c.stmts(n.Orelse)

	case *If:
		c.expr(n.Test)
		c.stmts(n.Body)
		c.stmts(n.Orelse)

	case *With:
		for _, item := range n.Items {
			c.node(item)
		}
		c.stmts(n.Body)

	case *WithItem:
		c.expr(n.ContextExpr)
		c.expr(n.OptionalVars)

	case *Match:
		c.expr(n.Subject)
		for _, mc := range n.Cases {
			c.node(mc)
		}

	case *MatchCase:
		c.expr(n.Guard)
		c.stmts(n.Body)

	case *Raise:
		c.expr(n.Exc)
		c.expr(n.Cause)

	case *Try:
		c.stmts(n.Body)
		for _, h := range n.Handlers {
			c.node(h)
		}
		c.stmts(n.Orelse)
		c.stmts(n.Finalbody)

	case *ExceptHandler:
		c.expr(n.Type)
		c.stmts(n.Body)

	case *Assert:
		c.expr(n.Test)
		c.expr(n.Msg)

	case *Import:
		for _, a := range n.Names {
			c.node(a)
		}

	case *ImportFrom:
		for _, a := range n.Names {
			c.node(a)
		}

	case *ExprStmt:
		c.expr(n.Value)

	case *TypeAlias:
		c.expr(n.Name)
		c.expr(n.Value)

	case *Global, *Nonlocal, *Pass, *Break, *Continue, *Alias:

	case *BoolOp:
		c.exprs(n.Values)

	case *NamedExpr:
		c.expr(n.Target)
		c.expr(n.Value)

	case *BinOp:
		c.expr(n.Left)
		c.expr(n.Right)

	case *UnaryOp:
		c.expr(n.Operand)

	case *Lambda:
		c.arguments(n.Args)
		c.expr(n.Body)

	case *IfExp:
		c.expr(n.Test)
		c.expr(n.Body)
		c.expr(n.Orelse)

	case *Dict:
		c.exprs(n.Keys)
		c.exprs(n.Values)

	case *Set:
		c.exprs(n.Elts)

	case *ListComp:
		c.expr(n.Elt)
		c.comprehensions(n.Generators)

	case *SetComp:
		c.expr(n.Elt)
		c.comprehensions(n.Generators)

	case *DictComp:
		c.expr(n.Key)
		c.expr(n.Value)
		c.comprehensions(n.Generators)

	case *GeneratorExp:
		c.expr(n.Elt)
		c.comprehensions(n.Generators)

	case *Comprehension:
		c.expr(n.Target)
		c.expr(n.Iter)
		c.exprs(n.Ifs)

	case *Await:
		c.expr(n.Value)

	case *Yield:
		c.expr(n.Value)

	case *YieldFrom:
		c.expr(n.Value)

	case *Compare:
		c.expr(n.Left)
		c.exprs(n.Comparators)

	case *Call:
		c.expr(n.Func)
		c.exprs(n.Args)
		for _, k := range n.Keywords {
			c.node(k)
		}

	case *Keyword:
		c.expr(n.Value)

	case *JoinedStr:
		c.exprs(n.Values)

	case *FormattedValue:
		c.expr(n.Value)

	case *Attribute:
		c.expr(n.Value)

	case *Subscript:
		c.expr(n.Value)
		c.expr(n.Slice)

	case *Starred:
		c.expr(n.Value)

	case *List:
		c.exprs(n.Elts)

	case *Tuple:
		c.exprs(n.Elts)

	case *Slice:
		c.expr(n.Lower)
		c.expr(n.Upper)
		c.expr(n.Step)

	case *Arguments:
		for _, a := range n.Args {
			c.node(a)
		}
		c.exprs(n.Defaults)

	case *Arg:
		c.expr(n.Annotation)

	case *Num, *Str, *Bytes, *NameConstant, *Ellipsis, *Name:

	default:
		panic(fmt.Sprintf("internal error: unexpected node type %T", n))
	}
}

func (c *childYielder) expr(e Expr) {
	if e != nil {
		c.node(e)
	}
}

func (c *childYielder) arguments(a *Arguments) {
	if a != nil {
		c.node(a)
	}
}

func (c *childYielder) comprehensions(list []*Comprehension) {
	for _, g := range list {
		c.node(g)
	}
}

// Inspect traverses the tree rooted at n in depth-first order.
// If f returns false, the children of the current node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}

	for child := range Children(n) {
		Inspect(child, f)
	}
}
