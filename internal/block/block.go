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

// Package block checks a single statement block for dead code, unused
// expressions, and redundant or missing statements.
package block

import (
	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/report"
)

// Policy describes what the enclosing construct expects of a block.
type Policy struct {
	// BlockRequired is set when the construct can not simply be removed if the block is empty.
	BlockRequired bool
	// NodesRequired is set when the grammar demands at least one statement.
	NodesRequired bool
	// Docstring allows a string literal as the first statement.
	Docstring bool
	// UnusedExpr allows bare expression statements.
	UnusedExpr bool
}

// Default is the policy of else and finally bodies.
var Default = Policy{NodesRequired: true}

// Analyze checks stmts under policy p and returns the findings in statement order.
func Analyze(stmts []pyast.Stmt, p Policy) []report.Finding {
	var (
		findings []report.Finding
		leave    pyast.Stmt
		pass     *pyast.Pass
		dead     bool
		nonPass  bool
	)

	for i, stmt := range stmts {
		if leave != nil && !dead {
			findings = append(findings, report.DeadCode.Of(stmt, pyast.StmtKeyword(leave)))
			dead = true
		}

		if IsExit(stmt) {
			leave = stmt
		}

		switch s := stmt.(type) {
		case *pyast.Pass:
			pass = s
			continue

		case *pyast.ExprStmt:
			if !p.UnusedExpr && !isDocstring(s, i, p) && !hasEffect(s.Value) {
				findings = append(findings, report.UnusedExpression.Of(s))
			}
		}

		nonPass = true
	}

	if pass != nil {
		if !p.NodesRequired || len(stmts) > 1 {
			findings = append(findings, report.RedundantPass.Of(pass))
		}

		if !p.BlockRequired && !nonPass {
			findings = append(findings, report.EmptyBlock.Of(pass))
		}
	}

	return findings
}

// IsExit reports whether stmt unconditionally leaves the block.
func IsExit(stmt pyast.Stmt) bool {
	switch stmt.(type) {
	case *pyast.Return, *pyast.Raise, *pyast.Continue, *pyast.Break:
		return true

	default:
		return false
	}
}

// FirstExit returns the first statement of stmts that leaves the block, or nil.
func FirstExit(stmts []pyast.Stmt) pyast.Stmt {
	for _, stmt := range stmts {
		if IsExit(stmt) {
			return stmt
		}
	}

	return nil
}

func isDocstring(s *pyast.ExprStmt, i int, p Policy) bool {
	if !p.Docstring || i != 0 {
		return false
	}

	_, ok := s.Value.(*pyast.Str)

	return ok
}

func hasEffect(e pyast.Expr) bool {
	switch e.(type) {
	case *pyast.Call, *pyast.Yield, *pyast.YieldFrom, *pyast.Await:
		return true

	default:
		return false
	}
}
