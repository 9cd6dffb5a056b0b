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
	// BoolOp is a chain of "and" or "or" operations.
	BoolOp struct {
		Loc
		Op     BoolOperator
		Values []Expr
	}

	// NamedExpr is an assignment expression "target := value".
	NamedExpr struct {
		Loc
		Target Expr
		Value  Expr
	}

	BinOp struct {
		Loc
		Left  Expr
		Op    Operator
		Right Expr
	}

	UnaryOp struct {
		Loc
		Op      UnaryOperator
		Operand Expr
	}

	Lambda struct {
		Loc
		Args *Arguments
		Body Expr
	}

	// IfExp is a conditional expression "body if test else orelse".
	IfExp struct {
		Loc
		Test   Expr
		Body   Expr
		Orelse Expr
	}

	// Dict is a dictionary display. A nil key marks a "**" unpacking of the value.
	Dict struct {
		Loc
		Keys   []Expr
		Values []Expr
	}

	Set struct {
		Loc
		Elts []Expr
	}

	ListComp struct {
		Loc
		Elt        Expr
		Generators []*Comprehension
	}

	SetComp struct {
		Loc
		Elt        Expr
		Generators []*Comprehension
	}

	DictComp struct {
		Loc
		Key        Expr
		Value      Expr
		Generators []*Comprehension
	}

	GeneratorExp struct {
		Loc
		Elt        Expr
		Generators []*Comprehension
	}

	Await struct {
		Loc
		Value Expr
	}

	// Yield is a "yield" expression; Value is nil for a bare yield.
	Yield struct {
		Loc
		Value Expr
	}

	YieldFrom struct {
		Loc
		Value Expr
	}

	// Compare is a comparison chain; len(Ops) == len(Comparators).
	Compare struct {
		Loc
		Left        Expr
		Ops         []CmpOp
		Comparators []Expr
	}

	Call struct {
		Loc
		Func     Expr
		Args     []Expr
		Keywords []*Keyword
	}

	// Num is a numeric literal, kept as written.
	Num struct {
		Loc
		Literal string
	}

	// Str is a string literal, implicit concatenations already joined.
	// Value holds the decoded text; lone surrogates are kept in their
	// generalized UTF-8 encoding.
	Str struct {
		Loc
		Value string
	}

	// Bytes is a bytes literal with its decoded value.
	Bytes struct {
		Loc
		Value string
	}

	// JoinedStr is an f-string. Values are literal [Str] parts and [FormattedValue] fields.
	JoinedStr struct {
		Loc
		Values []Expr
	}

	FormattedValue struct {
		Loc
		Value Expr
	}

	// NameConstant is True, False or None.
	NameConstant struct {
		Loc
		Value Singleton
	}

	Ellipsis struct{ Loc }

	Attribute struct {
		Loc
		Value Expr
		Attr  string
		Ctx   ExprContext
	}

	Subscript struct {
		Loc
		Value Expr
		Slice Expr
		Ctx   ExprContext
	}

	Starred struct {
		Loc
		Value Expr
		Ctx   ExprContext
	}

	Name struct {
		Loc
		ID  string
		Ctx ExprContext
	}

	List struct {
		Loc
		Elts []Expr
		Ctx  ExprContext
	}

	Tuple struct {
		Loc
		Elts []Expr
		Ctx  ExprContext
	}

	Slice struct {
		Loc
		Lower Expr
		Upper Expr
		Step  Expr
	}
)

func (*BoolOp) exprNode()         {}
func (*NamedExpr) exprNode()      {}
func (*BinOp) exprNode()          {}
func (*UnaryOp) exprNode()        {}
func (*Lambda) exprNode()         {}
func (*IfExp) exprNode()          {}
func (*Dict) exprNode()           {}
func (*Set) exprNode()            {}
func (*ListComp) exprNode()       {}
func (*SetComp) exprNode()        {}
func (*DictComp) exprNode()       {}
func (*GeneratorExp) exprNode()   {}
func (*Await) exprNode()          {}
func (*Yield) exprNode()          {}
func (*YieldFrom) exprNode()      {}
func (*Compare) exprNode()        {}
func (*Call) exprNode()           {}
func (*Num) exprNode()            {}
func (*Str) exprNode()            {}
func (*Bytes) exprNode()          {}
func (*JoinedStr) exprNode()      {}
func (*FormattedValue) exprNode() {}
func (*NameConstant) exprNode()   {}
func (*Ellipsis) exprNode()       {}
func (*Attribute) exprNode()      {}
func (*Subscript) exprNode()      {}
func (*Starred) exprNode()        {}
func (*Name) exprNode()           {}
func (*List) exprNode()           {}
func (*Tuple) exprNode()          {}
func (*Slice) exprNode()          {}

// Singleton identifies the constants True, False and None.
type Singleton uint8

const (
	None Singleton = iota
	True
	False
)

func (s Singleton) String() string {
	switch s {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "None"
	}
}

type (
	// Comprehension is one "for ... in ..." clause with its "if" conditions.
	Comprehension struct {
		Loc
		Target Expr
		Iter   Expr
		Ifs    []Expr
		Async  bool
	}

	// Keyword is a keyword argument. Arg is empty for "**" unpacking.
	Keyword struct {
		Loc
		Arg   string
		Value Expr
	}

	// Arguments is the parameter list of a function or lambda.
	// Defaults holds all default values in source order.
	Arguments struct {
		Loc
		Args     []*Arg
		Defaults []Expr
	}

	Arg struct {
		Loc
		Name       string
		Annotation Expr
		Kind       ArgKind
	}
)

// ArgKind classifies parameters.
type ArgKind uint8

const (
	Positional ArgKind = iota
	PositionalOnly
	KeywordOnly
	VarArgs
	KwArgs
)

// SetContext marks an assignment or deletion target, including nested
// tuple, list and starred elements.
func SetContext(e Expr, ctx ExprContext) {
	switch e := e.(type) {
	case *Name:
		e.Ctx = ctx
	case *Attribute:
		e.Ctx = ctx
	case *Subscript:
		e.Ctx = ctx
	case *Starred:
		e.Ctx = ctx
		SetContext(e.Value, ctx)
	case *Tuple:
		e.Ctx = ctx
		for _, elt := range e.Elts {
			SetContext(elt, ctx)
		}
	case *List:
		e.Ctx = ctx
		for _, elt := range e.Elts {
			SetContext(elt, ctx)
		}
	}
}
