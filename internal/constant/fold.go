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

package constant

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/TrLucas/codingtools/internal/pyast"
)

// Namespace controls how names fold.
type Namespace struct {
	symbols bool
}

// Literals returns a namespace binding only True, False and None.
func Literals() *Namespace { return &Namespace{} }

// NewKeyNamespace returns a namespace for comparing the keys of one container display.
// Every name folds to a [Symbol] of that name, and the pure built-ins abs, bool,
// chr, len, max, min and ord can be called.
func NewKeyNamespace() *Namespace { return &Namespace{symbols: true} }

// Fold evaluates e in namespace ns. It returns [Volatile] when the value
// cannot be determined without running the program.
func Fold(e pyast.Expr, ns *Namespace) Value {
	f := folder{ns: ns}

	return f.fold(e)
}

type folder struct {
	ns *Namespace
}

func (f folder) fold(e pyast.Expr) Value {
	switch e := e.(type) {
	case *pyast.Num:
		return parseNumber(e.Literal)

	case *pyast.Str:
		return Str(e.Value)

	case *pyast.Bytes:
		return Bytes(e.Value)

	case *pyast.JoinedStr:
		return f.joined(e)

	case *pyast.NameConstant:
		switch e.Value {
		case pyast.True:
			return Bool(true)
		case pyast.False:
			return Bool(false)
		default:
			return NoneValue{}
		}

	case *pyast.Ellipsis:
		return EllipsisValue{}

	case *pyast.Name:
		return f.name(e.ID)

	case *pyast.Tuple:
		elts, ok := f.elements(e.Elts)
		if !ok {
			return Volatile
		}

		return Tuple(elts)

	case *pyast.List:
		elts, ok := f.elements(e.Elts)
		if !ok {
			return Volatile
		}

		return List(elts)

	case *pyast.Set:
		elts, ok := f.elements(e.Elts)
		if !ok {
			return Volatile
		}

		return makeSet(elts)

	case *pyast.Dict:
		return f.dict(e)

	case *pyast.UnaryOp:
		return unary(e.Op, f.fold(e.Operand))

	case *pyast.BinOp:
		return binary(e.Op, f.fold(e.Left), f.fold(e.Right))

	case *pyast.BoolOp:
		return f.boolOp(e)

	case *pyast.Compare:
		return f.compare(e)

	case *pyast.IfExp:
		t, ok := Truth(f.fold(e.Test))
		if !ok {
			return Volatile
		}

		if t {
			return f.fold(e.Body)
		}

		return f.fold(e.Orelse)

	case *pyast.Subscript:
		return f.subscript(e)

	case *pyast.Call:
		return f.call(e)

	case *pyast.Attribute:
		return attribute(f.fold(e.Value), e.Attr)

	default:
		return Volatile
	}
}

func (f folder) name(id string) Value {
	switch id {
	case "True":
		return Bool(true)
	case "False":
		return Bool(false)
	case "None":
		return NoneValue{}
	case "__debug__":
		return Bool(true)
	}

	if f.ns.symbols {
		return Symbol(id)
	}

	return Volatile
}

// elements folds a display, unpacking starred iterables.
func (f folder) elements(list []pyast.Expr) ([]Value, bool) {
	vs := make([]Value, 0, len(list))

	for _, e := range list {
		if s, ok := e.(*pyast.Starred); ok {
			items, ok := iterate(f.fold(s.Value))
			if !ok {
				return nil, false
			}

			vs = append(vs, items...)

			continue
		}

		v := f.fold(e)
		if v == Volatile {
			return nil, false
		}

		vs = append(vs, v)
	}

	return vs, true
}

func (f folder) joined(e *pyast.JoinedStr) Value {
	var b strings.Builder

	for _, part := range e.Values {
		s, ok := part.(*pyast.Str)
		if !ok {
			return Volatile
		}

		b.WriteString(s.Value)
	}

	return Str(b.String())
}

func (f folder) dict(e *pyast.Dict) Value {
	var d Dict

	for i, k := range e.Keys {
		if k == nil {
			return Volatile
		}

		key, value := f.fold(k), f.fold(e.Values[i])
		if key == Volatile || value == Volatile {
			return Volatile
		}

		d.set(key, value)
	}

	return d
}

func (d *Dict) set(key, value Value) {
	for i, k := range d.Keys {
		if Equal(k, key) {
			d.Values[i] = value

			return
		}
	}

	d.Keys = append(d.Keys, key)
	d.Values = append(d.Values, value)
}

func makeSet(elts []Value) Set {
	s := make(Set, 0, len(elts))
	for _, v := range elts {
		if !contains(s, v) {
			s = append(s, v)
		}
	}

	return s
}

func (f folder) boolOp(e *pyast.BoolOp) Value {
	var v Value = Volatile

	for _, operand := range e.Values {
		v = f.fold(operand)

		t, ok := Truth(v)
		if !ok {
			return Volatile
		}

		if t == (e.Op == pyast.Or) {
			return v
		}
	}

	return v
}

func (f folder) compare(e *pyast.Compare) Value {
	left := f.fold(e.Left)
	if left == Volatile {
		return Volatile
	}

	for i, op := range e.Ops {
		right := f.fold(e.Comparators[i])
		if right == Volatile {
			return Volatile
		}

		r, ok := compare(op, left, right)
		if !ok {
			return Volatile
		}

		if !r {
			return Bool(false)
		}

		left = right
	}

	return Bool(true)
}

func (f folder) subscript(e *pyast.Subscript) Value {
	container := f.fold(e.Value)
	if container == Volatile {
		return Volatile
	}

	if s, ok := e.Slice.(*pyast.Slice); ok {
		return f.slice(container, s)
	}

	return index(container, f.fold(e.Slice))
}

func (f folder) call(e *pyast.Call) Value {
	if !f.ns.symbols || len(e.Keywords) > 0 {
		return Volatile
	}

	fn, ok := e.Func.(*pyast.Name)
	if !ok {
		return Volatile
	}

	args, ok := f.elements(e.Args)
	if !ok {
		return Volatile
	}

	return callBuiltin(fn.ID, args)
}

// parseNumber parses a numeric literal as written in source.
func parseNumber(lit string) Value {
	s := strings.ReplaceAll(lit, "_", "")

	if strings.HasSuffix(s, "j") || strings.HasSuffix(s, "J") {
		f, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil && !isRange(err) {
			return Volatile
		}

		return Complex(complex(0, f))
	}

	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			i, ok := new(big.Int).SetString(s, 0)
			if !ok {
				return Volatile
			}

			return Int{i}
		}
	}

	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !isRange(err) {
			return Volatile
		}

		return Float(f)
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Volatile
	}

	return Int{i}
}

func isRange(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}
