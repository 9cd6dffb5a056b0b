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

// Package analyze implements the syntax tree checks of the eyeo style guide.
//
// # Overview
//
// [Check] traverses a parsed Python module once, in pre-order, and reports
// style violations in traversal order. During the traversal it maintains:
//
//   - a scope stack of modules, functions and classes ([scope.Tracker]),
//     used for redefined built-ins and redundant global declarations
//   - per-block state ([block.Analyze]), run at every block boundary before the
//     children of the owning statement are visited
//   - constant folding ([constant.Fold]) for yoda conditions and duplicate
//     dictionary keys or set items
//
// # Example
//
//	def f(x):
//	    if 5 == x:        # A103 yoda condition
//	        return {1: 'a', 1: 'b'}  # A207 duplicate key in dict
//	    else:             # A206 Extraneous else statement after return in if-clause
//	        list = [x]    # A302 redefined built-in list
//	        return list
//
// # Limitations
//
//   - with and match bodies are traversed, but not checked as blocks
//   - lambdas and comprehensions do not open scopes, their bindings are
//     recorded in the enclosing function or class
package analyze
