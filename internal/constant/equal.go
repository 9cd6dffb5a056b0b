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
)

// Equal reports whether a == b holds in Python.
// Numbers compare across int, float, complex and bool.
func Equal(a, b Value) bool {
	if x, ok := number(a); ok {
		y, ok := number(b)

		return ok && x.equal(y)
	}

	switch a := a.(type) {
	case Str:
		b, ok := b.(Str)
		return ok && a == b

	case Bytes:
		b, ok := b.(Bytes)
		return ok && a == b

	case NoneValue:
		_, ok := b.(NoneValue)
		return ok

	case EllipsisValue:
		_, ok := b.(EllipsisValue)
		return ok

	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b

	case Tuple:
		b, ok := b.(Tuple)
		return ok && equalSeq(a, b)

	case List:
		b, ok := b.(List)
		return ok && equalSeq(a, b)

	case Set:
		b, ok := b.(Set)
		return ok && len(a) == len(b) && subset(a, b)

	case Dict:
		b, ok := b.(Dict)
		return ok && equalDict(a, b)

	case Method:
		b, ok := b.(Method)
		return ok && a.Name == b.Name && Equal(a.Receiver, b.Receiver)

	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func subset(a, b []Value) bool {
	for _, x := range a {
		if !contains(b, x) {
			return false
		}
	}

	return true
}

func contains(vs []Value, x Value) bool {
	for _, v := range vs {
		if Equal(x, v) {
			return true
		}
	}

	return false
}

func equalDict(a, b Dict) bool {
	if len(a.Keys) != len(b.Keys) {
		return false
	}

	for i, k := range a.Keys {
		v, ok := b.lookup(k)
		if !ok || !Equal(a.Values[i], v) {
			return false
		}
	}

	return true
}

func (d Dict) lookup(k Value) (Value, bool) {
	for i, key := range d.Keys {
		if Equal(k, key) {
			return d.Values[i], true
		}
	}

	return nil, false
}

// num is the numeric tower: exactly one of the representations is used.
type num struct {
	i    *big.Int
	f    float64
	c    complex128
	kind numKind
}

type numKind uint8

const (
	intKind numKind = iota
	floatKind
	complexKind
)

func number(v Value) (num, bool) {
	switch v := v.(type) {
	case Int:
		return num{i: v.v, kind: intKind}, true

	case Bool:
		if v {
			return num{i: big.NewInt(1), kind: intKind}, true
		}

		return num{i: new(big.Int), kind: intKind}, true

	case Float:
		return num{f: float64(v), kind: floatKind}, true

	case Complex:
		return num{c: complex128(v), kind: complexKind}, true

	default:
		return num{}, false
	}
}

func (x num) float() float64 {
	switch x.kind {
	case intKind:
		f, _ := new(big.Float).SetInt(x.i).Float64()
		return f

	case floatKind:
		return x.f

	default:
		return real(x.c)
	}
}

func (x num) equal(y num) bool {
	if x.kind == complexKind || y.kind == complexKind {
		if imag(x.complex()) != imag(y.complex()) {
			return false
		}

		x, y = x.real(), y.real()
	}

	c, ok := x.cmp(y)

	return ok && c == 0
}

func (x num) complex() complex128 {
	if x.kind == complexKind {
		return x.c
	}

	return complex(x.float(), 0)
}

func (x num) real() num {
	if x.kind == complexKind {
		return num{f: real(x.c), kind: floatKind}
	}

	return x
}

// cmp compares two real numbers exactly. ok is false when NaN is involved.
func (x num) cmp(y num) (int, bool) {
	if x.kind == intKind && y.kind == intKind {
		return x.i.Cmp(y.i), true
	}

	xf, ok := x.bigFloat()
	if !ok {
		return 0, false
	}

	yf, ok := y.bigFloat()
	if !ok {
		return 0, false
	}

	return xf.Cmp(yf), true
}

func (x num) bigFloat() (*big.Float, bool) {
	switch x.kind {
	case intKind:
		return new(big.Float).SetInt(x.i), true

	case floatKind:
		if math.IsNaN(x.f) {
			return nil, false
		}

		return big.NewFloat(x.f), true

	default:
		return nil, false
	}
}

// Truth returns the truth value of v. ok is false for symbols and volatile values.
func Truth(v Value) (truth, ok bool) {
	switch v := v.(type) {
	case Int:
		return v.v.Sign() != 0, true
	case Float:
		return v != 0, true
	case Complex:
		return v != 0, true
	case Bool:
		return bool(v), true
	case Str:
		return len(v) > 0, true
	case Bytes:
		return len(v) > 0, true
	case NoneValue:
		return false, true
	case EllipsisValue:
		return true, true
	case Tuple:
		return len(v) > 0, true
	case List:
		return len(v) > 0, true
	case Set:
		return len(v) > 0, true
	case Dict:
		return len(v.Keys) > 0, true
	case Method:
		return true, true
	default:
		return false, false
	}
}

// order compares values that support ordering in Python.
func order(a, b Value) (int, bool) {
	if x, ok := number(a); ok {
		y, ok := number(b)
		if !ok {
			return 0, false
		}

		return x.cmp(y)
	}

	switch a := a.(type) {
	case Str:
		if b, ok := b.(Str); ok {
			// generalized UTF-8 preserves code point order
			return strings.Compare(string(a), string(b)), true
		}

	case Bytes:
		if b, ok := b.(Bytes); ok {
			return strings.Compare(string(a), string(b)), true
		}

	case Tuple:
		if b, ok := b.(Tuple); ok {
			return orderSeq(a, b)
		}

	case List:
		if b, ok := b.(List); ok {
			return orderSeq(a, b)
		}
	}

	return 0, false
}

func orderSeq(a, b []Value) (int, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		if Equal(a[i], b[i]) {
			continue
		}

		return order(a[i], b[i])
	}

	switch {
	case len(a) < len(b):
		return -1, true
	case len(a) > len(b):
		return 1, true
	default:
		return 0, true
	}
}
