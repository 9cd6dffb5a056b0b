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

// Package analyzer implements the eyeo static analysis pass.
//
// # Overview
//
// The pass checks the Python files found in the directories of the analyzed
// Go packages against the eyeo coding style, for repositories mixing Go code
// with Python build and tooling scripts. Diagnostics carry the finding code
// as their category.
//
// # Example
//
//	for name in ('a', 'b'):  // A101 use lists for data that have order
//	    if (name):           // A111 redundant parenthesis for if statement
//	        pass
//
// # Suppression
//
// A "# noqa" comment suppresses all diagnostics of its logical line, a
// "# noqa: A101,A2" comment those with a matching code prefix. Files with a
// generated header are skipped unless [WithGenerated] is set.
package analyzer
