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

package pyparse_test

import (
	"errors"
	"testing"

	"github.com/TrLucas/codingtools/internal/pyast"
	. "github.com/TrLucas/codingtools/internal/pyparse"
)

func parse(t *testing.T, src string) *pyast.Module {
	t.Helper()

	m, err := Parse(t.Context(), []byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}

	return m
}

func TestAssign(t *testing.T) {
	t.Parallel()

	m := parse(t, "a = b = 1\nx += 2\n")

	if len(m.Body) != 2 {
		t.Fatalf("Got %d statements, want 2", len(m.Body))
	}

	assign, ok := m.Body[0].(*pyast.Assign)
	if !ok {
		t.Fatalf("Got %T, want *pyast.Assign", m.Body[0])
	}

	if len(assign.Targets) != 2 {
		t.Errorf("Got %d targets, want 2", len(assign.Targets))
	}

	for _, target := range assign.Targets {
		if name, ok := target.(*pyast.Name); !ok || name.Ctx != pyast.Store {
			t.Errorf("Got target %#v, want stored name", target)
		}
	}

	aug, ok := m.Body[1].(*pyast.AugAssign)
	if !ok {
		t.Fatalf("Got %T, want *pyast.AugAssign", m.Body[1])
	}

	if aug.Op != pyast.Add {
		t.Errorf("Got operator %v, want %v", aug.Op, pyast.Add)
	}

	if got, want := aug.Pos(), (pyast.Pos{Line: 2, Col: 0}); got != want {
		t.Errorf("Got position %v, want %v", got, want)
	}
}

func TestElif(t *testing.T) {
	t.Parallel()

	m := parse(t, "if a:\n    pass\nelif b:\n    pass\nelse:\n    x = 1\n")

	outer, ok := m.Body[0].(*pyast.If)
	if !ok {
		t.Fatalf("Got %T, want *pyast.If", m.Body[0])
	}

	if len(outer.Orelse) != 1 {
		t.Fatalf("Got %d else statements, want 1", len(outer.Orelse))
	}

	inner, ok := outer.Orelse[0].(*pyast.If)
	if !ok {
		t.Fatalf("Got %T, want nested *pyast.If", outer.Orelse[0])
	}

	if got, want := inner.Pos(), (pyast.Pos{Line: 3, Col: 0}); got != want {
		t.Errorf("Got elif position %v, want %v", got, want)
	}

	if len(inner.Orelse) != 1 {
		t.Errorf("Got %d else statements, want 1", len(inner.Orelse))
	}
}

func TestFunctionDef(t *testing.T) {
	t.Parallel()

	m := parse(t, "@dec\nasync def f(a, b=1, *args, c, **kw):\n    return a\n")

	fn, ok := m.Body[0].(*pyast.FunctionDef)
	if !ok {
		t.Fatalf("Got %T, want *pyast.FunctionDef", m.Body[0])
	}

	if !fn.Async || fn.Name != "f" || len(fn.Decorators) != 1 {
		t.Errorf("Got %+v, want decorated async function f", fn)
	}

	if got, want := fn.Pos(), (pyast.Pos{Line: 2, Col: 0}); got != want {
		t.Errorf("Got position %v, want %v", got, want)
	}

	wantKinds := []pyast.ArgKind{pyast.Positional, pyast.Positional, pyast.VarArgs, pyast.KeywordOnly, pyast.KwArgs}
	if len(fn.Args.Args) != len(wantKinds) {
		t.Fatalf("Got %d parameters, want %d", len(fn.Args.Args), len(wantKinds))
	}

	for i, arg := range fn.Args.Args {
		if arg.Kind != wantKinds[i] {
			t.Errorf("Parameter %s: got kind %d, want %d", arg.Name, arg.Kind, wantKinds[i])
		}
	}

	if len(fn.Args.Defaults) != 1 {
		t.Errorf("Got %d defaults, want 1", len(fn.Args.Defaults))
	}
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		check func(pyast.Expr) bool
	}{
		{"Concat", `"a" 'b'`, func(e pyast.Expr) bool {
			s, ok := e.(*pyast.Str)
			return ok && s.Value == "ab"
		}},
		{"Escape", `'\x41\n'`, func(e pyast.Expr) bool {
			s, ok := e.(*pyast.Str)
			return ok && s.Value == "A\n"
		}},
		{"Bytes", `b'\x00'`, func(e pyast.Expr) bool {
			b, ok := e.(*pyast.Bytes)
			return ok && b.Value == "\x00"
		}},
		{"FString", `f"a{b}c"`, func(e pyast.Expr) bool {
			j, ok := e.(*pyast.JoinedStr)
			return ok && len(j.Values) == 3
		}},
		{"Chain", `1 < x <= 3`, func(e pyast.Expr) bool {
			c, ok := e.(*pyast.Compare)
			return ok && len(c.Ops) == 2 && c.Ops[0] == pyast.Lt && c.Ops[1] == pyast.LtE
		}},
		{"NotIn", `a not in b`, func(e pyast.Expr) bool {
			c, ok := e.(*pyast.Compare)
			return ok && len(c.Ops) == 1 && c.Ops[0] == pyast.NotIn
		}},
		{"IsNot", `a is not None`, func(e pyast.Expr) bool {
			c, ok := e.(*pyast.Compare)
			return ok && len(c.Ops) == 1 && c.Ops[0] == pyast.IsNot
		}},
		{"And", `a and b and c`, func(e pyast.Expr) bool {
			b, ok := e.(*pyast.BoolOp)
			return ok && b.Op == pyast.And && len(b.Values) == 3
		}},
		{"DictSplat", `{1: 2, **d}`, func(e pyast.Expr) bool {
			d, ok := e.(*pyast.Dict)
			return ok && len(d.Keys) == 2 && d.Keys[1] == nil
		}},
		{"Slice", `x[1:]`, func(e pyast.Expr) bool {
			s, ok := e.(*pyast.Subscript)
			if !ok {
				return false
			}

			sl, ok := s.Slice.(*pyast.Slice)
			return ok && sl.Lower != nil && sl.Upper == nil
		}},
		{"Call", `f(a, *b, c=1, **d)`, func(e pyast.Expr) bool {
			c, ok := e.(*pyast.Call)
			return ok && len(c.Args) == 2 && len(c.Keywords) == 2 && c.Keywords[1].Arg == ""
		}},
		{"Generator", `list(x for x in y)`, func(e pyast.Expr) bool {
			c, ok := e.(*pyast.Call)
			if !ok || len(c.Args) != 1 {
				return false
			}

			_, ok = c.Args[0].(*pyast.GeneratorExp)
			return ok
		}},
		{"Paren", `(x)`, func(e pyast.Expr) bool {
			n, ok := e.(*pyast.Name)
			return ok && n.Pos() == pyast.Pos{Line: 1, Col: 1}
		}},
		{"Negative", `-1`, func(e pyast.Expr) bool {
			u, ok := e.(*pyast.UnaryOp)
			return ok && u.Op == pyast.USub
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := ParseExpr(t.Context(), tt.src)
			if err != nil {
				t.Fatalf("ParseExpr(%q) failed: %v", tt.src, err)
			}

			if !tt.check(e) {
				t.Errorf("ParseExpr(%q) = %#v", tt.src, e)
			}
		})
	}
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse(t.Context(), []byte("def f(:\n    pass\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("Got error %v, want %v", err, ErrSyntax)
	}

	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Got error %T, want *SyntaxError", err)
	}

	if serr.Line != 1 {
		t.Errorf("Got line %d, want 1", serr.Line)
	}
}
