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

type (
	// FunctionDef is a "def" or "async def" statement.
	FunctionDef struct {
		Loc
		Name       string
		Async      bool
		Args       *Arguments
		Body       []Stmt
		Decorators []Expr
		Returns    Expr
	}

	// ClassDef is a "class" statement.
	ClassDef struct {
		Loc
		Name       string
		Bases      []Expr
		Keywords   []*Keyword
		Body       []Stmt
		Decorators []Expr
	}

	Return struct {
		Loc
		Value Expr
	}

	Delete struct {
		Loc
		Targets []Expr
	}

	// Assign is a plain assignment. Chained assignments have several targets.
	Assign struct {
		Loc
		Targets []Expr
		Value   Expr
	}

	AugAssign struct {
		Loc
		Target Expr
		Op     Operator
		Value  Expr
	}

	AnnAssign struct {
		Loc
		Target     Expr
		Annotation Expr
		Value      Expr
	}

	For struct {
		Loc
		Async  bool
		Target Expr
		Iter   Expr
		Body   []Stmt
		Orelse []Stmt
	}

	While struct {
		Loc
		Test   Expr
		Body   []Stmt
		Orelse []Stmt
	}

	// If is an "if" statement. An "elif" is represented as a nested If,
	// positioned at the "elif" keyword, that is the only statement of Orelse.
	If struct {
		Loc
		Test   Expr
		Body   []Stmt
		Orelse []Stmt
	}

	With struct {
		Loc
		Async bool
		Items []*WithItem
		Body  []Stmt
	}

	// Match is a "match" statement. Patterns are not represented.
	Match struct {
		Loc
		Subject Expr
		Cases   []*MatchCase
	}

	Raise struct {
		Loc
		Exc   Expr
		Cause Expr
	}

	// Try is a "try" statement. Star is set for "except*" handlers.
	Try struct {
		Loc
		Body      []Stmt
		Handlers  []*ExceptHandler
		Orelse    []Stmt
		Finalbody []Stmt
		Star      bool
	}

	Assert struct {
		Loc
		Test Expr
		Msg  Expr
	}

	Import struct {
		Loc
		Names []*Alias
	}

	// ImportFrom is a "from ... import" statement. Level counts leading dots.
	ImportFrom struct {
		Loc
		Module string
		Names  []*Alias
		Level  int
	}

	Global struct {
		Loc
		Names []string
	}

	Nonlocal struct {
		Loc
		Names []string
	}

	// ExprStmt is an expression used as a statement.
	ExprStmt struct {
		Loc
		Value Expr
	}

	// TypeAlias is a "type X = ..." statement.
	TypeAlias struct {
		Loc
		Name  Expr
		Value Expr
	}

	Pass struct{ Loc }

	Break struct{ Loc }

	Continue struct{ Loc }
)

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*Delete) stmtNode()      {}
func (*Assign) stmtNode()      {}
func (*AugAssign) stmtNode()   {}
func (*AnnAssign) stmtNode()   {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*If) stmtNode()          {}
func (*With) stmtNode()        {}
func (*Match) stmtNode()       {}
func (*Raise) stmtNode()       {}
func (*Try) stmtNode()         {}
func (*Assert) stmtNode()      {}
func (*Import) stmtNode()      {}
func (*ImportFrom) stmtNode()  {}
func (*Global) stmtNode()      {}
func (*Nonlocal) stmtNode()    {}
func (*ExprStmt) stmtNode()    {}
func (*TypeAlias) stmtNode()   {}
func (*Pass) stmtNode()        {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}

// Auxiliary nodes that are neither statements nor expressions.
type (
	// ExceptHandler is an "except" or "except*" clause. Type is nil for a bare except.
	ExceptHandler struct {
		Loc
		Type Expr
		Name string
		Body []Stmt
	}

	// Alias is one imported name. AsName is empty without an "as" clause.
	Alias struct {
		Loc
		Name   string
		AsName string
	}

	WithItem struct {
		Loc
		ContextExpr  Expr
		OptionalVars Expr
	}

	MatchCase struct {
		Loc
		Guard Expr
		Body  []Stmt
	}
)

// BoundName returns the name an import binds.
func (a *Alias) BoundName() string {
	if a.AsName != "" {
		return a.AsName
	}

	return a.Name
}

// StmtKeyword returns the Python keyword that introduces the statement, e.g. "return" or "nonlocal".
func StmtKeyword(s Stmt) string {
	switch s.(type) {
	case *FunctionDef:
		return "def"
	case *ClassDef:
		return "class"
	case *Return:
		return "return"
	case *Delete:
		return "del"
	case *Assign, *AugAssign, *AnnAssign, *ExprStmt:
		return ""
	case *For:
		return "for"
	case *While:
		return "while"
	case *If:
		return "if"
	case *With:
		return "with"
	case *Match:
		return "match"
	case *Raise:
		return "raise"
	case *Try:
		return "try"
	case *Assert:
		return "assert"
	case *Import:
		return "import"
	case *ImportFrom:
		return "from"
	case *Global:
		return "global"
	case *Nonlocal:
		return "nonlocal"
	case *TypeAlias:
		return "type"
	case *Pass:
		return "pass"
	case *Break:
		return "break"
	case *Continue:
		return "continue"
	default:
		return ""
	}
}
