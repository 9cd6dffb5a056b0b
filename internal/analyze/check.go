// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyze

import (
	"github.com/TrLucas/codingtools/internal/block"
	"github.com/TrLucas/codingtools/internal/constant"
	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/report"
	"github.com/TrLucas/codingtools/internal/scope"
)

// Check runs the syntax tree checks on module m and returns the findings in traversal order.
func Check(m *pyast.Module) []report.Finding {
	v := &visitor{}
	v.scopes = scope.NewTracker(v.report)

	v.visit(m)

	if d := v.scopes.Depth(); d != 0 {
		panic("internal error: unbalanced scope stack")
	}

	return v.findings
}

type visitor struct {
	findings []report.Finding
	scopes   *scope.Tracker
}

func (v *visitor) report(f report.Finding) {
	v.findings = append(v.findings, f)
}

func (v *visitor) block(stmts []pyast.Stmt, p block.Policy) {
	v.findings = append(v.findings, block.Analyze(stmts, p)...)
}

var (
	modulePolicy = block.Policy{BlockRequired: true, Docstring: true}
	bodyPolicy   = block.Policy{Docstring: true}
	loopPolicy   = block.Policy{BlockRequired: true, NodesRequired: true}
)

func (v *visitor) visit(n pyast.Node) {
	switch n := n.(type) {
	case *pyast.Module:
		v.block(n.Body, modulePolicy)
		v.scoped(n)

		return

	case *pyast.FunctionDef:
		v.scopes.RecordBinding(n, n.Name)
		v.block(n.Body, bodyPolicy)
		v.scoped(n)

		return

	case *pyast.ClassDef:
		v.scopes.RecordBinding(n, n.Name)
		v.block(n.Body, bodyPolicy)
		v.scoped(n)

		return

	case *pyast.If:
		v.block(n.Body, block.Policy{BlockRequired: len(n.Orelse) > 0, NodesRequired: true})
		v.block(n.Orelse, block.Default)
		v.extraneousElse(n.Orelse, "if", n.Body)

	case *pyast.Try:
		v.block(n.Body, block.Policy{NodesRequired: true, UnusedExpr: len(n.Handlers) > 0})
		v.block(n.Orelse, block.Default)
		v.block(n.Finalbody, block.Default)

		if len(n.Handlers) > 0 {
			bodies := make([][]pyast.Stmt, 0, len(n.Handlers))
			for _, h := range n.Handlers {
				bodies = append(bodies, h.Body)
			}

			v.extraneousElse(n.Orelse, "except", bodies...)
		}

	case *pyast.ExceptHandler:
		v.block(n.Body, loopPolicy)

	case *pyast.For:
		v.orderedIter(n.Iter)
		v.block(n.Body, loopPolicy)
		v.block(n.Orelse, block.Default)

	case *pyast.While:
		v.block(n.Body, loopPolicy)
		v.block(n.Orelse, block.Default)

	case *pyast.Comprehension:
		v.orderedIter(n.Iter)

	case *pyast.BinOp:
		v.binOp(n)

	case *pyast.Compare:
		v.compare(n)

	case *pyast.Call:
		v.call(n)

	case *pyast.Import:
		for _, alias := range n.Names {
			v.scopes.RecordBinding(n, alias.BoundName())
		}

		return

	case *pyast.ImportFrom:
		for _, alias := range n.Names {
			v.scopes.RecordBinding(n, alias.BoundName())
			v.discouraged(n, n.Module+"."+alias.Name)
		}

		return

	case *pyast.Assign:
		v.assign(n)

	case *pyast.Dict:
		v.hashKeys(n.Keys, report.DuplicateKey)

	case *pyast.Set:
		v.hashKeys(n.Elts, report.DuplicateItem)

	case *pyast.Name:
		if n.Ctx == pyast.Store {
			v.scopes.RecordBinding(n, n.ID)
		}

	case *pyast.Arg:
		v.scopes.RecordBinding(n, n.Name)

		return

	case *pyast.Global, *pyast.Nonlocal:
		v.scopes.RecordDeclaration(n.(pyast.Stmt))
	}

	v.children(n)
}

func (v *visitor) children(n pyast.Node) {
	for child := range pyast.Children(n) {
		v.visit(child)
	}
}

// scoped visits the children of n inside the scope n opens.
func (v *visitor) scoped(n pyast.Node) {
	v.scopes.Push(n)
	v.children(n)
	v.scopes.Pop()
}

// extraneousElse reports an else clause following bodies that all leave the block.
// The reported exit is the first one of the last body.
func (v *visitor) extraneousElse(orelse []pyast.Stmt, clause string, bodies ...[]pyast.Stmt) {
	if len(orelse) == 0 {
		return
	}

	var leave pyast.Stmt

	for _, body := range bodies {
		if leave = block.FirstExit(body); leave == nil {
			return
		}
	}

	v.report(report.ExtraneousElse.Of(orelse[0], pyast.StmtKeyword(leave), clause))
}

func (v *visitor) orderedIter(iter pyast.Expr) {
	switch iter.(type) {
	case *pyast.Tuple, *pyast.Set:
		v.report(report.OrderedData.Of(iter))
	}
}

func (v *visitor) binOp(n *pyast.BinOp) {
	if n.Op == pyast.Mod && isStr(n.Left) {
		v.report(report.PercentFormat.Of(n))
	}

	if n.Op != pyast.Add {
		return
	}

	if left, ok := n.Left.(*pyast.BinOp); ok && left.Op == pyast.Add &&
		(isStr(left.Left) || isStr(left.Right) || isStr(n.Right)) {
		v.report(report.PlusConcat.Of(n))
	}
}

func (v *visitor) compare(n *pyast.Compare) {
	left := n.Left
	single := len(n.Ops) == 1

	for i, op := range n.Ops {
		right := n.Comparators[i]

		membership := op == pyast.In || op == pyast.NotIn
		symmetric := op == pyast.Eq || op == pyast.NotEq || op == pyast.Is || op == pyast.IsNot

		if membership {
			switch right.(type) {
			case *pyast.Tuple, *pyast.List:
				v.report(report.UnorderedData.Of(right))
			}
		}

		if (single && !membership || symmetric) && isConst(left) && !isConst(right) {
			v.report(report.YodaCondition.Of(left))
		}

		left = right
	}
}

func (v *visitor) assign(n *pyast.Assign) {
	value, ok := n.Value.(*pyast.BinOp)
	if !ok || len(n.Targets) != 1 {
		return
	}

	target, ok := n.Targets[0].(*pyast.Name)
	if !ok {
		return
	}

	if left, ok := value.Left.(*pyast.Name); ok && left.ID == target.ID {
		v.report(report.AugmentAssignment.Of(n))
	}
}

// hashKeys reports keys that fold to a value equal to an earlier key of the same literal.
func (v *visitor) hashKeys(keys []pyast.Expr, msg report.Message) {
	ns := constant.NewKeyNamespace()

	var seen []constant.Value

	for _, key := range keys {
		if key == nil {
			continue
		}

		value := constant.Fold(key, ns)
		if value == constant.Volatile {
			continue
		}

		if containsValue(seen, value) {
			v.report(msg.Of(key))

			continue
		}

		seen = append(seen, value)
	}
}

func containsValue(values []constant.Value, v constant.Value) bool {
	for _, w := range values {
		if constant.Equal(w, v) {
			return true
		}
	}

	return false
}

func isStr(e pyast.Expr) bool {
	_, ok := e.(*pyast.Str)

	return ok
}

func isConst(e pyast.Expr) bool {
	return constant.Fold(e, constant.Literals()) != constant.Volatile
}
