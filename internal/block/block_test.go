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

package block_test

import (
	"slices"
	"testing"

	. "github.com/TrLucas/codingtools/internal/block"
	"github.com/TrLucas/codingtools/internal/pyast"
)

func pass(line int) pyast.Stmt { return &pyast.Pass{Loc: pyast.At(line, 0)} }

func expr(line int, e pyast.Expr) pyast.Stmt { return &pyast.ExprStmt{Loc: pyast.At(line, 0), Value: e} }

func name(id string) pyast.Expr { return &pyast.Name{ID: id} }

func call(fn string) pyast.Expr { return &pyast.Call{Func: name(fn)} }

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stmts  []pyast.Stmt
		policy Policy
		want   []string
	}{
		{
			name:  "DeadCode",
			stmts: []pyast.Stmt{&pyast.Raise{Loc: pyast.At(1, 0)}, expr(2, call("a")), expr(3, call("b"))},
			want:  []string{"2:0: A202 dead code after raise"},
		},
		{
			name:  "ExitLast",
			stmts: []pyast.Stmt{expr(1, call("a")), &pyast.Break{Loc: pyast.At(2, 0)}},
		},
		{
			name:   "OnlyPass",
			stmts:  []pyast.Stmt{pass(1)},
			policy: Policy{Docstring: true},
			want:   []string{"1:0: A204 redundant pass statement", "1:0: A205 empty block"},
		},
		{
			name:   "RequiredPass",
			stmts:  []pyast.Stmt{pass(1)},
			policy: Policy{BlockRequired: true, NodesRequired: true},
		},
		{
			name:   "PassWithCode",
			stmts:  []pyast.Stmt{pass(1), &pyast.Return{Loc: pyast.At(2, 0)}},
			policy: Policy{Docstring: true},
			want:   []string{"1:0: A204 redundant pass statement"},
		},
		{
			name:   "Docstring",
			stmts:  []pyast.Stmt{expr(1, &pyast.Str{Value: "doc"}), expr(2, &pyast.Str{Value: "not doc"})},
			policy: Policy{Docstring: true},
			want:   []string{"2:0: A203 unused expression"},
		},
		{
			name: "Effects",
			stmts: []pyast.Stmt{
				expr(1, call("f")),
				expr(2, &pyast.Yield{}),
				expr(3, &pyast.YieldFrom{Value: name("x")}),
				expr(4, &pyast.Await{Value: call("g")}),
				expr(5, name("x")),
			},
			want: []string{"5:0: A203 unused expression"},
		},
		{
			name:   "UnusedAllowed",
			stmts:  []pyast.Stmt{expr(1, name("x"))},
			policy: Policy{UnusedExpr: true},
		},
		{
			name:  "Empty",
			stmts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, f := range Analyze(tt.stmts, tt.policy) {
				got = append(got, f.String())
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstExit(t *testing.T) {
	t.Parallel()

	ret := &pyast.Return{Loc: pyast.At(2, 0)}
	stmts := []pyast.Stmt{expr(1, call("f")), ret, &pyast.Continue{Loc: pyast.At(3, 0)}}

	if got := FirstExit(stmts); got != ret {
		t.Errorf("Got %v, want %v", got, ret)
	}

	if got := FirstExit(stmts[:1]); got != nil {
		t.Errorf("Got %v, want nil", got)
	}
}
