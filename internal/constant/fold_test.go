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

package constant_test

import (
	"testing"

	. "github.com/TrLucas/codingtools/internal/constant"
	"github.com/TrLucas/codingtools/internal/pyast"
)

func num(lit string) *pyast.Num { return &pyast.Num{Literal: lit} }
func str(s string) *pyast.Str { return &pyast.Str{Value: s} }
func name(id string) *pyast.Name { return &pyast.Name{ID: id} }
func tuple(elts ...pyast.Expr) *pyast.Tuple { return &pyast.Tuple{Elts: elts} }

func attr(v pyast.Expr, sel string) *pyast.Attribute { return &pyast.Attribute{Value: v, Attr: sel} }

func binop(l pyast.Expr, op pyast.Operator, r pyast.Expr) *pyast.BinOp {
	return &pyast.BinOp{Left: l, Op: op, Right: r}
}

func call(fn string, args ...pyast.Expr) *pyast.Call {
	return &pyast.Call{Func: name(fn), Args: args}
}

func TestFoldLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr pyast.Expr
		want string
	}{
		{"Int", num("1_000"), "1000"},
		{"Hex", num("0xff"), "255"},
		{"Float", num("2.5"), "2.5"},
		{"Imaginary", num("2j"), "(0+2i)"},
		{"Negative", &pyast.UnaryOp{Op: pyast.USub, Operand: num("5")}, "-5"},
		{"Concat", binop(str("a"), pyast.Add, str("b")), "'ab'"},
		{"Repeat", binop(str("ab"), pyast.Mult, num("2")), "'abab'"},
		{"FloorDiv", binop(num("7"), pyast.FloorDiv, num("-2")), "-4"},
		{"Mod", binop(num("7"), pyast.Mod, num("-2")), "-1"},
		{"TrueDiv", binop(num("1"), pyast.Div, num("4")), "0.25"},
		{"Pow", binop(num("2"), pyast.Pow, num("10")), "1024"},
		{"Tuple", tuple(num("1"), &pyast.NameConstant{Value: pyast.None}), "(1, None)"},
		{"Singleton", tuple(str("x")), "('x',)"},
		{"True", name("True"), "True"},
		{"Chain", &pyast.Compare{Left: num("1"), Ops: []pyast.CmpOp{pyast.Lt, pyast.Lt}, Comparators: []pyast.Expr{num("2"), num("3")}}, "True"},
		{"IfExp", &pyast.IfExp{Test: num("0"), Body: str("a"), Orelse: str("b")}, "'b'"},
		{"Index", &pyast.Subscript{Value: tuple(num("1"), num("2")), Slice: &pyast.UnaryOp{Op: pyast.USub, Operand: num("1")}}, "2"},
		{"Slice", &pyast.Subscript{Value: str("hello"), Slice: &pyast.Slice{Step: &pyast.UnaryOp{Op: pyast.USub, Operand: num("1")}}}, "'olleh'"},
		{"Or", &pyast.BoolOp{Op: pyast.Or, Values: []pyast.Expr{num("0"), str("x")}}, "'x'"},
		{"FString", &pyast.JoinedStr{Values: []pyast.Expr{str("a"), str("b")}}, "'ab'"},
		{"Method", attr(str("x"), "upper"), "<built-in method upper of str object>"},
		{"BytesMethod", attr(&pyast.Bytes{Value: "x"}, "decode"), "<built-in method decode of bytes object>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Fold(tt.expr, Literals())
			if got == Volatile {
				t.Fatalf("Fold returned volatile, want %s", tt.want)
			}

			if got.String() != tt.want {
				t.Errorf("Got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFoldVolatile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr pyast.Expr
	}{
		{"Name", name("x")},
		{"Call", call("len", str("ab"))},
		{"ZeroDivision", binop(num("1"), pyast.Div, num("0"))},
		{"TypeError", binop(str("a"), pyast.Add, num("1"))},
		{"Attribute", &pyast.Attribute{Value: name("os"), Attr: "sep"}},
		{"UnknownMethod", attr(str("x"), "decode")},
		{"Formatted", &pyast.JoinedStr{Values: []pyast.Expr{&pyast.FormattedValue{Value: name("x")}}}},
		{"HugePow", binop(num("2"), pyast.Pow, num("10000000"))},
		{"Lambda", &pyast.Lambda{Body: num("1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Fold(tt.expr, Literals()); got != Volatile {
				t.Errorf("Got %s, want volatile", got)
			}
		})
	}
}

func TestKeyNamespace(t *testing.T) {
	t.Parallel()

	ns := NewKeyNamespace()

	tests := []struct {
		name  string
		a, b  pyast.Expr
		equal bool
	}{
		{"SameName", name("x"), name("x"), true},
		{"OtherName", name("x"), name("y"), false},
		{"Builtin", name("len"), name("len"), true},
		{"PureCall", call("len", str("ab")), num("2"), true},
		{"Max", call("max", num("1"), num("3")), num("3"), true},
		{"Ord", call("ord", str("a")), num("97"), true},
		{"TrueIsOne", name("True"), num("1"), true},
		{"IntFloat", num("1"), num("1.0"), true},
		{"StrBytes", str("a"), &pyast.Bytes{Value: "a"}, false},
		{"Tuples", tuple(num("1"), str("a")), tuple(num("1.0"), str("a")), true},
		{"Methods", attr(str("a"), "upper"), attr(str("a"), "upper"), true},
		{"MethodReceivers", attr(str("a"), "upper"), attr(str("b"), "upper"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, b := Fold(tt.a, ns), Fold(tt.b, ns)
			if a == Volatile || b == Volatile {
				t.Fatalf("Got volatile keys %s, %s", a, b)
			}

			if got := Equal(a, b); got != tt.equal {
				t.Errorf("Equal(%s, %s) = %t, want %t", a, b, got, tt.equal)
			}
		})
	}
}

func TestUnknownCall(t *testing.T) {
	t.Parallel()

	if got := Fold(call("f"), NewKeyNamespace()); got != Volatile {
		t.Errorf("Got %s, want volatile", got)
	}
}
