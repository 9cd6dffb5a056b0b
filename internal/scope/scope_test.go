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

package scope_test

import (
	"reflect"
	"testing"

	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/report"
	. "github.com/TrLucas/codingtools/internal/scope"
)

func collect() (*Tracker, *[]string) {
	var messages []string

	t := NewTracker(func(f report.Finding) { messages = append(messages, f.String()) })

	return t, &messages
}

func TestRedefinedBuiltin(t *testing.T) {
	t.Parallel()

	tr, got := collect()

	tr.Push(&pyast.Module{})
	tr.RecordBinding(&pyast.Name{Loc: pyast.At(1, 0), ID: "list"}, "list")

	tr.Push(&pyast.FunctionDef{Name: "f"})
	tr.RecordBinding(&pyast.Name{Loc: pyast.At(3, 4), ID: "list"}, "list")
	tr.RecordBinding(&pyast.Name{Loc: pyast.At(4, 4), ID: "apply"}, "apply")
	tr.Pop()

	tr.Push(&pyast.ClassDef{Name: "C"})
	tr.RecordBinding(&pyast.Name{Loc: pyast.At(6, 4), ID: "id"}, "id")
	tr.Pop()

	tr.Pop()

	if want := []string{"3:4: A302 redefined built-in list"}; !reflect.DeepEqual(*got, want) {
		t.Errorf("Got %q, want %q", *got, want)
	}

	if tr.Depth() != 0 {
		t.Errorf("Got depth %d, want 0", tr.Depth())
	}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	tr, got := collect()

	tr.Push(&pyast.Module{})
	tr.RecordDeclaration(&pyast.Global{Loc: pyast.At(1, 0), Names: []string{"x"}})

	tr.Push(&pyast.FunctionDef{Name: "f"})
	tr.RecordDeclaration(&pyast.Global{Loc: pyast.At(3, 4), Names: []string{"a", "b"}})
	tr.RecordDeclaration(&pyast.Nonlocal{Loc: pyast.At(4, 4), Names: []string{"a"}})
	tr.RecordBinding(&pyast.Name{Loc: pyast.At(5, 4), ID: "a"}, "a")

	s := tr.Pop()
	tr.Pop()

	want := []string{
		"1:0: A201 global declaration on top-level",
		"3:4: A201 redundant global declaration for b",
		"4:4: A201 redundant nonlocal declaration for a",
	}

	if !reflect.DeepEqual(*got, want) {
		t.Errorf("Got %q, want %q", *got, want)
	}

	if s.Kind != Function || !s.Binds("a") || s.Binds("b") {
		t.Errorf("Unexpected scope %v", s.Kind)
	}

	if len(s.Declarations()) != 2 {
		t.Errorf("Got %d declarations, want 2", len(s.Declarations()))
	}
}

func TestIsEssentialBuiltin(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"list":     true,
		"print":    true,
		"__name__": true,
		"file":     false,
		"intern":   false,
		"foo":      false,
	} {
		if got := IsEssentialBuiltin(name); got != want {
			t.Errorf("IsEssentialBuiltin(%q) = %t, want %t", name, got, want)
		}
	}
}
