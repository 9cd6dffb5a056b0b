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

import "fmt"

// Pos is a position in a Python source file.
// Line is 1-based, Col is the 0-based byte offset into the line.
type Pos struct {
	Line, Col int
}

// IsValid reports whether the position refers to a source line.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Loc is embedded in every node and records its start position.
type Loc struct {
	Start Pos
}

// Pos returns the start position of the node.
func (l Loc) Pos() Pos { return l.Start }

// At is a shorthand for constructing a [Loc].
func At(line, col int) Loc { return Loc{Start: Pos{Line: line, Col: col}} }

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() Pos
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// ExprContext distinguishes loads from assignment and deletion targets.
type ExprContext uint8

const (
	Load ExprContext = iota
	Store
	Del
)

// Module is the root of a parsed file.
type Module struct {
	Loc
	Body []Stmt
}
