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
	"math"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/pystr"
)

// Folding gives up on values exceeding these sizes.
const (
	maxIntBits = 1 << 16
	maxLength  = 1 << 16
)

func unary(op pyast.UnaryOperator, v Value) Value {
	if op == pyast.Not {
		t, ok := Truth(v)
		if !ok {
			return Volatile
		}

		return Bool(!t)
	}

	x, ok := number(v)
	if !ok {
		return Volatile
	}

	switch op {
	case pyast.UAdd:
		return x.toValue()

	case pyast.USub:
		switch x.kind {
		case intKind:
			return Int{new(big.Int).Neg(x.i)}
		case floatKind:
			return Float(-x.f)
		default:
			return Complex(-x.c)
		}

	case pyast.Invert:
		if x.kind != intKind {
			return Volatile
		}

		return Int{new(big.Int).Not(x.i)}

	default:
		return Volatile
	}
}

// toValue converts back to a [Value]; booleans become integers.
func (x num) toValue() Value {
	switch x.kind {
	case intKind:
		return Int{x.i}
	case floatKind:
		return Float(x.f)
	default:
		return Complex(x.c)
	}
}

func binary(op pyast.Operator, a, b Value) Value {
	if a == Volatile || b == Volatile {
		return Volatile
	}

	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return arith(op, x, y)
		}

		if op == pyast.Mult && x.kind == intKind {
			return repeat(b, x.i)
		}

		return Volatile
	}

	switch op {
	case pyast.Add:
		return concat(a, b)

	case pyast.Mult:
		if y, ok := number(b); ok && y.kind == intKind {
			return repeat(a, y.i)
		}
	}

	return Volatile
}

func concat(a, b Value) Value {
	switch a := a.(type) {
	case Str:
		if b, ok := b.(Str); ok {
			return a + b
		}

	case Bytes:
		if b, ok := b.(Bytes); ok {
			return a + b
		}

	case Tuple:
		if b, ok := b.(Tuple); ok {
			return append(append(Tuple{}, a...), b...)
		}

	case List:
		if b, ok := b.(List); ok {
			return append(append(List{}, a...), b...)
		}
	}

	return Volatile
}

func repeat(v Value, count *big.Int) Value {
	n := 0
	if count.Sign() > 0 {
		if !count.IsInt64() || count.Int64() > maxLength {
			return Volatile
		}

		n = int(count.Int64())
	}

	switch v := v.(type) {
	case Str:
		if len(v)*n > maxLength {
			return Volatile
		}

		return Str(strings.Repeat(string(v), n))

	case Bytes:
		if len(v)*n > maxLength {
			return Volatile
		}

		return Bytes(strings.Repeat(string(v), n))

	case Tuple:
		if len(v)*n > maxLength {
			return Volatile
		}

		r := make(Tuple, 0, len(v)*n)
		for range n {
			r = append(r, v...)
		}

		return r

	case List:
		if len(v)*n > maxLength {
			return Volatile
		}

		r := make(List, 0, len(v)*n)
		for range n {
			r = append(r, v...)
		}

		return r

	default:
		return Volatile
	}
}

func arith(op pyast.Operator, x, y num) Value {
	if x.kind == intKind && y.kind == intKind {
		return intArith(op, x.i, y.i)
	}

	if x.kind == complexKind || y.kind == complexKind {
		return complexArith(op, x.complex(), y.complex())
	}

	return floatArith(op, x.float(), y.float())
}

func intArith(op pyast.Operator, a, b *big.Int) Value {
	r := new(big.Int)

	switch op {
	case pyast.Add:
		r.Add(a, b)

	case pyast.Sub:
		r.Sub(a, b)

	case pyast.Mult:
		if a.BitLen()+b.BitLen() > maxIntBits {
			return Volatile
		}

		r.Mul(a, b)

	case pyast.Div:
		if b.Sign() == 0 {
			return Volatile
		}

		q, _ := new(big.Rat).SetFrac(a, b).Float64()

		return Float(q)

	case pyast.FloorDiv, pyast.Mod:
		if b.Sign() == 0 {
			return Volatile
		}

		q, m := floorDivMod(a, b)
		if op == pyast.Mod {
			return Int{m}
		}

		return Int{q}

	case pyast.Pow:
		if b.Sign() < 0 {
			fa, _ := new(big.Float).SetInt(a).Float64()
			fb, _ := new(big.Float).SetInt(b).Float64()

			return floatArith(op, fa, fb)
		}

		if !b.IsInt64() || b.Int64() > maxIntBits || int64(a.BitLen())*b.Int64() > maxIntBits {
			return Volatile
		}

		r.Exp(a, b, nil)

	case pyast.LShift:
		if b.Sign() < 0 || !b.IsInt64() || b.Int64() > maxIntBits || int64(a.BitLen())+b.Int64() > maxIntBits {
			return Volatile
		}

		r.Lsh(a, uint(b.Int64()))

	case pyast.RShift:
		if b.Sign() < 0 {
			return Volatile
		}

		if !b.IsInt64() || b.Int64() > int64(a.BitLen()) {
			if a.Sign() < 0 {
				return NewInt(-1)
			}

			return NewInt(0)
		}

		r.Rsh(a, uint(b.Int64()))

	case pyast.BitAnd:
		r.And(a, b)

	case pyast.BitOr:
		r.Or(a, b)

	case pyast.BitXor:
		r.Xor(a, b)

	default:
		return Volatile
	}

	return Int{r}
}

// floorDivMod implements Python's floor division, where the remainder takes the sign of the divisor.
func floorDivMod(a, b *big.Int) (q, m *big.Int) {
	q, m = new(big.Int).DivMod(a, b, new(big.Int))
	if m.Sign() != 0 && b.Sign() < 0 {
		m.Add(m, b)
		q.Sub(q, big.NewInt(1))
	}

	return q, m
}

func floatArith(op pyast.Operator, a, b float64) Value {
	switch op {
	case pyast.Add:
		return Float(a + b)

	case pyast.Sub:
		return Float(a - b)

	case pyast.Mult:
		return Float(a * b)

	case pyast.Div:
		if b == 0 {
			return Volatile
		}

		return Float(a / b)

	case pyast.FloorDiv, pyast.Mod:
		if b == 0 {
			return Volatile
		}

		m := math.Mod(a, b)
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}

		if op == pyast.Mod {
			return Float(m)
		}

		return Float(math.Round((a - m) / b))

	case pyast.Pow:
		if a == 0 && b < 0 {
			return Volatile
		}

		r := math.Pow(a, b)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return Volatile
		}

		return Float(r)

	default:
		return Volatile
	}
}

func complexArith(op pyast.Operator, a, b complex128) Value {
	switch op {
	case pyast.Add:
		return Complex(a + b)

	case pyast.Sub:
		return Complex(a - b)

	case pyast.Mult:
		return Complex(a * b)

	case pyast.Div:
		if b == 0 {
			return Volatile
		}

		return Complex(a / b)

	default:
		return Volatile
	}
}

func compare(op pyast.CmpOp, a, b Value) (bool, bool) {
	switch op {
	case pyast.Eq:
		return Equal(a, b), true

	case pyast.NotEq:
		return !Equal(a, b), true

	case pyast.Is, pyast.IsNot:
		same, ok := identical(a, b)
		if !ok {
			return false, false
		}

		return same == (op == pyast.Is), true

	case pyast.In, pyast.NotIn:
		in, ok := member(a, b)
		if !ok {
			return false, false
		}

		return in == (op == pyast.In), true
	}

	c, ok := order(a, b)
	if !ok {
		return false, false
	}

	switch op {
	case pyast.Lt:
		return c < 0, true
	case pyast.LtE:
		return c <= 0, true
	case pyast.Gt:
		return c > 0, true
	default:
		return c >= 0, true
	}
}

// identical decides identity for singletons and symbols only.
func identical(a, b Value) (bool, bool) {
	switch a := a.(type) {
	case NoneValue, EllipsisValue:
		return Equal(a, b), true

	case Bool:
		b, ok := b.(Bool)
		return ok && a == b, true

	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b, true
	}

	switch b.(type) {
	case NoneValue, EllipsisValue, Bool, Symbol:
		return false, true
	}

	return false, false
}

func member(x, container Value) (bool, bool) {
	switch c := container.(type) {
	case Str:
		s, ok := x.(Str)
		return ok && strings.Contains(string(c), string(s)), ok

	case Bytes:
		s, ok := x.(Bytes)
		return ok && strings.Contains(string(c), string(s)), ok

	case Dict:
		return contains(c.Keys, x), true

	default:
		items, ok := iterate(container)
		if !ok {
			return false, false
		}

		return contains(items, x), true
	}
}

// iterate returns the items iteration over v produces.
func iterate(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case Tuple:
		return v, true

	case List:
		return v, true

	case Set:
		return v, true

	case Dict:
		return v.Keys, true

	case Str:
		rs := pystr.Runes(string(v))
		items := make([]Value, len(rs))
		for i, r := range rs {
			items[i] = Str(pystr.RuneString(r))
		}

		return items, true

	case Bytes:
		items := make([]Value, len(v))
		for i := range len(v) {
			items[i] = NewInt(int64(v[i]))
		}

		return items, true

	default:
		return nil, false
	}
}

func sequence(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case Tuple:
		return v, true
	case List:
		return v, true
	case Str, Bytes:
		return iterate(v)
	default:
		return nil, false
	}
}

func index(container, key Value) Value {
	if key == Volatile {
		return Volatile
	}

	if d, ok := container.(Dict); ok {
		if v, ok := d.lookup(key); ok {
			return v
		}

		return Volatile
	}

	items, ok := sequence(container)
	if !ok {
		return Volatile
	}

	k, ok := number(key)
	if !ok || k.kind != intKind || !k.i.IsInt64() {
		return Volatile
	}

	i := k.i.Int64()
	if i < 0 {
		i += int64(len(items))
	}

	if i < 0 || i >= int64(len(items)) {
		return Volatile
	}

	return items[i]
}

func (f folder) slice(container Value, s *pyast.Slice) Value {
	items, ok := sequence(container)
	if !ok {
		return Volatile
	}

	bound := func(e pyast.Expr) (int, bool, bool) {
		if e == nil {
			return 0, false, true
		}

		v := f.fold(e)
		if _, none := v.(NoneValue); none {
			return 0, false, true
		}

		x, ok := number(v)
		if !ok || x.kind != intKind || !x.i.IsInt64() {
			return 0, false, false
		}

		return int(x.i.Int64()), true, true
	}

	start, hasStart, ok1 := bound(s.Lower)
	stop, hasStop, ok2 := bound(s.Upper)
	step, hasStep, ok3 := bound(s.Step)

	if !ok1 || !ok2 || !ok3 {
		return Volatile
	}

	if !hasStep {
		step = 1
	}

	if step == 0 {
		return Volatile
	}

	n := len(items)
	start = sliceIndex(start, hasStart, step, n, true)
	stop = sliceIndex(stop, hasStop, step, n, false)

	var result []Value

	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		result = append(result, items[i])
	}

	switch container.(type) {
	case Tuple:
		return Tuple(result)

	case List:
		return List(result)

	case Str:
		var b strings.Builder
		for _, v := range result {
			b.WriteString(string(v.(Str)))
		}

		return Str(b.String())

	default:
		b := make([]byte, 0, len(result))
		for _, v := range result {
			b = append(b, byte(v.(Int).v.Int64()))
		}

		return Bytes(b)
	}
}

// sliceIndex clamps a slice bound the way Python's slice.indices does.
func sliceIndex(i int, present bool, step, n int, isStart bool) int {
	if !present {
		switch {
		case step > 0 && isStart:
			return 0
		case step > 0:
			return n
		case isStart:
			return n - 1
		default:
			return -1
		}
	}

	if i < 0 {
		i += n
		if i < 0 {
			if step < 0 {
				return -1
			}

			return 0
		}
	}

	if i >= n {
		if step < 0 {
			return n - 1
		}

		return n
	}

	return i
}

func callBuiltin(name string, args []Value) Value {
	switch name {
	case "abs":
		if len(args) != 1 {
			return Volatile
		}

		x, ok := number(args[0])
		if !ok {
			return Volatile
		}

		switch x.kind {
		case intKind:
			return Int{new(big.Int).Abs(x.i)}
		case floatKind:
			return Float(math.Abs(x.f))
		default:
			return Float(math.Hypot(real(x.c), imag(x.c)))
		}

	case "bool":
		if len(args) == 0 {
			return Bool(false)
		}

		if len(args) != 1 {
			return Volatile
		}

		t, ok := Truth(args[0])
		if !ok {
			return Volatile
		}

		return Bool(t)

	case "chr":
		if len(args) != 1 {
			return Volatile
		}

		x, ok := args[0].(Int)
		if !ok || !x.v.IsInt64() || x.v.Sign() < 0 || x.v.Int64() > utf8.MaxRune {
			return Volatile
		}

		return Str(pystr.RuneString(rune(x.v.Int64())))

	case "len":
		if len(args) != 1 {
			return Volatile
		}

		switch args[0].(type) {
		case Tuple, List, Set, Dict, Str, Bytes:
			items, _ := iterate(args[0])

			return NewInt(int64(len(items)))

		default:
			return Volatile
		}

	case "ord":
		if len(args) != 1 {
			return Volatile
		}

		items, ok := sequence(args[0])
		if !ok || len(items) != 1 {
			return Volatile
		}

		switch v := items[0].(type) {
		case Str:
			return NewInt(int64(pystr.Runes(string(v))[0]))
		case Int:
			return v
		default:
			return Volatile
		}

	case "max", "min":
		items := args
		if len(args) == 1 {
			var ok bool
			if items, ok = iterate(args[0]); !ok {
				return Volatile
			}
		}

		if len(items) == 0 {
			return Volatile
		}

		best := items[0]
		for _, v := range items[1:] {
			c, ok := order(v, best)
			if !ok {
				return Volatile
			}

			if (name == "max" && c > 0) || (name == "min" && c < 0) {
				best = v
			}
		}

		return best

	default:
		return Volatile
	}
}
