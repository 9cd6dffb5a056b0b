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

//go:generate go tool stringer -type Operator,UnaryOperator,BoolOperator,CmpOp -linecomment -output operator_string.go

// Operator is a binary arithmetic or bitwise operator.
type Operator uint8

const (
	Add      Operator = iota // +
	Sub                      // -
	Mult                     // *
	MatMult                  // @
	Div                      // /
	Mod                      // %
	Pow                      // **
	LShift                   // <<
	RShift                   // >>
	BitOr                    // |
	BitXor                   // ^
	BitAnd                   // &
	FloorDiv                 // //
)

// UnaryOperator is a prefix operator.
type UnaryOperator uint8

const (
	Invert UnaryOperator = iota // ~
	Not                         // not
	UAdd                        // +
	USub                        // -
)

// BoolOperator is "and" or "or".
type BoolOperator uint8

const (
	And BoolOperator = iota // and
	Or                      // or
)

// CmpOp is a comparison operator.
type CmpOp uint8

const (
	Eq    CmpOp = iota // ==
	NotEq              // !=
	Lt                 // <
	LtE                // <=
	Gt                 // >
	GtE                // >=
	Is                 // is
	IsNot              // is not
	In                 // in
	NotIn              // not in
)

var binaryOperators = map[string]Operator{
	"+": Add, "-": Sub, "*": Mult, "@": MatMult, "/": Div, "%": Mod, "**": Pow,
	"<<": LShift, ">>": RShift, "|": BitOr, "^": BitXor, "&": BitAnd, "//": FloorDiv,
}

// LookupOperator returns the binary operator spelled s.
// Augmented assignment spellings like "+=" are accepted as well.
func LookupOperator(s string) (Operator, bool) {
	if len(s) > 1 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}

	op, ok := binaryOperators[s]

	return op, ok
}

var comparisons = map[string]CmpOp{
	"==": Eq, "!=": NotEq, "<>": NotEq, "<": Lt, "<=": LtE, ">": Gt, ">=": GtE,
	"is": Is, "is not": IsNot, "in": In, "not in": NotIn,
}

// LookupCmpOp returns the comparison operator spelled s.
func LookupCmpOp(s string) (CmpOp, bool) {
	op, ok := comparisons[s]

	return op, ok
}
