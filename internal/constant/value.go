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
	"math/big"
	"strconv"
	"strings"

	"github.com/TrLucas/codingtools/internal/pystr"
)

// Value is the result of folding an expression.
type Value interface {
	String() string
	value()
}

type (
	// Int is an arbitrary precision integer. The pointer is never mutated.
	Int struct{ v *big.Int }

	Float float64

	Complex complex128

	// Str holds a decoded str value in generalized UTF-8.
	Str string

	Bytes string

	Bool bool

	NoneValue struct{}

	EllipsisValue struct{}

	Tuple []Value

	List []Value

	// Set holds distinct elements in insertion order.
	Set []Value

	Dict struct {
		Keys   []Value
		Values []Value
	}

	// Symbol is an opaque object bound to a name. Symbols are equal only to
	// symbols of the same name.
	Symbol string

	volatile struct{}
)

// Volatile is the result of folding an expression whose value cannot be determined statically.
var Volatile Value = volatile{}

func (Int) value()           {}
func (Float) value()         {}
func (Complex) value()       {}
func (Str) value()           {}
func (Bytes) value()         {}
func (Bool) value()          {}
func (NoneValue) value()     {}
func (EllipsisValue) value() {}
func (Tuple) value()         {}
func (List) value()          {}
func (Set) value()           {}
func (Dict) value()          {}
func (Symbol) value()        {}
func (volatile) value()      {}

// NewInt returns an [Int] for i.
func NewInt(i int64) Int { return Int{big.NewInt(i)} }

// Big returns the integer value. The result must not be modified.
func (i Int) Big() *big.Int { return i.v }

func (i Int) String() string     { return i.v.String() }
func (f Float) String() string   { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (c Complex) String() string { return strconv.FormatComplex(complex128(c), 'g', -1, 128) }
func (s Str) String() string     { return pystr.ASCII(string(s)) }
func (b Bytes) String() string   { return pystr.BytesRepr(string(b)) }

func (b Bool) String() string {
	if b {
		return "True"
	}

	return "False"
}

func (NoneValue) String() string     { return "None" }
func (EllipsisValue) String() string { return "Ellipsis" }
func (s Symbol) String() string      { return "<" + string(s) + ">" }
func (volatile) String() string      { return "<volatile>" }

func (t Tuple) String() string {
	if len(t) == 1 {
		return "(" + t[0].String() + ",)"
	}

	return "(" + join(t) + ")"
}

func (l List) String() string { return "[" + join(l) + "]" }

func (s Set) String() string {
	if len(s) == 0 {
		return "set()"
	}

	return "{" + join(s) + "}"
}

func (d Dict) String() string {
	var b strings.Builder

	b.WriteByte('{')

	for i, k := range d.Keys {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(k.String())
		b.WriteString(": ")
		b.WriteString(d.Values[i].String())
	}

	b.WriteByte('}')

	return b.String()
}

func join(vs []Value) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = v.String()
	}

	return strings.Join(s, ", ")
}
