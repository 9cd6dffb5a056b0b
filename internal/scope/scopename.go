// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package scope

import (
	"fmt"

	"github.com/TrLucas/codingtools/internal/pyast"
)

// Kind is the type of node that opens a scope.
type Kind uint8

const (
	Module Kind = iota
	Function
	Class
)

// KindOf returns the scope kind a node opens.
func KindOf(node pyast.Node) Kind {
	switch n := node.(type) {
	// keep-sorted start newline_separated=yes
	case *pyast.ClassDef:
		return Class

	case *pyast.FunctionDef:
		return Function

	case *pyast.Module:
		return Module

	default:
		panic(fmt.Sprintf("internal error: %T does not open a scope", n))
		// keep-sorted end
	}
}

func (k Kind) String() string {
	switch k {
	case Module:
		return "module"
	case Function:
		return "function"
	case Class:
		return "class"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}
