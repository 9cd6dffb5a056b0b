// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package scope tracks the lexical scopes of a Python module during a single traversal.
package scope

import (
	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/report"
)

// Scope records the names bound and the global or nonlocal declarations
// of one module, function or class.
type Scope struct {
	Node  pyast.Node
	Kind  Kind
	names map[string]struct{}
	decls []pyast.Stmt
}

// Binds reports whether name is bound in this scope.
func (s *Scope) Binds(name string) bool {
	_, ok := s.names[name]

	return ok
}

// Declarations returns the global and nonlocal statements of this scope in source order.
func (s *Scope) Declarations() []pyast.Stmt { return s.decls }

// Tracker is the scope stack of one traversal.
type Tracker struct {
	stack []*Scope
	emit  func(report.Finding)
}

// NewTracker creates an empty scope stack reporting findings to emit.
func NewTracker(emit func(report.Finding)) *Tracker {
	return &Tracker{emit: emit}
}

// Depth returns the number of open scopes.
func (t *Tracker) Depth() int { return len(t.stack) }

// Current returns the innermost scope, or nil when no scope is open.
func (t *Tracker) Current() *Scope {
	if len(t.stack) == 0 {
		return nil
	}

	return t.stack[len(t.stack)-1]
}

// Push opens the scope of a module, function or class node.
func (t *Tracker) Push(node pyast.Node) *Scope {
	s := &Scope{Node: node, Kind: KindOf(node), names: make(map[string]struct{})}
	t.stack = append(t.stack, s)

	return s
}

// RecordBinding records that node binds name in the current scope.
// Rebinding an essential built-in inside a function is reported.
func (t *Tracker) RecordBinding(node pyast.Node, name string) {
	s := t.mustCurrent()
	s.names[name] = struct{}{}

	if s.Kind == Function && IsEssentialBuiltin(name) {
		t.emit(report.RedefinedBuiltin.Of(node, name))
	}
}

// RecordDeclaration records a global or nonlocal statement in the current scope.
// At module level the declaration has no effect and is reported immediately.
func (t *Tracker) RecordDeclaration(decl pyast.Stmt) {
	s := t.mustCurrent()
	s.decls = append(s.decls, decl)

	if s.Kind == Module {
		t.emit(report.TopLevelDeclaration.Of(decl, pyast.StmtKeyword(decl)))
	}
}

// Pop closes the innermost scope. For functions and classes, declarations
// of names that are never bound in the scope, or that were already
// declared, are reported.
func (t *Tracker) Pop() *Scope {
	s := t.mustCurrent()
	t.stack = t.stack[:len(t.stack)-1]

	if s.Kind == Module {
		return s
	}

	declared := make(map[string]struct{})

	for _, decl := range s.decls {
		for _, name := range declaredNames(decl) {
			if _, seen := declared[name]; seen || !s.Binds(name) {
				t.emit(report.RedundantDeclaration.Of(decl, pyast.StmtKeyword(decl), name))

				continue
			}

			declared[name] = struct{}{}
		}
	}

	return s
}

func (t *Tracker) mustCurrent() *Scope {
	s := t.Current()
	if s == nil {
		panic("internal error: no open scope")
	}

	return s
}

func declaredNames(decl pyast.Stmt) []string {
	switch d := decl.(type) {
	case *pyast.Global:
		return d.Names

	case *pyast.Nonlocal:
		return d.Names

	default:
		panic("internal error: unexpected declaration " + pyast.StmtKeyword(decl))
	}
}
