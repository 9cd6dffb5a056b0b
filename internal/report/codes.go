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

package report

// The message catalog. Codes are stable, formats follow [fmt] verbs.
var (
	OrderedData          = Message{"A101", "use lists for data that have order"}
	UnorderedData        = Message{"A102", "use sets for distinct unordered data"}
	YodaCondition        = Message{"A103", "yoda condition"}
	LambdaCall           = Message{"A104", "use a comprehension instead of calling %s() with lambda function"}
	RedundantConstructor = Message{"A105", "use a %[1]s literal or comprehension instead of calling %[1]s()"}
	AugmentAssignment    = Message{"A106", "use augment assignment, e.g. x += y instead x = x + y"}
	PercentFormat        = Message{"A107", "use format() instead of % operator for string formatting"}
	PlusConcat           = Message{"A108", "use format() instead of + operator when concatenating more than two strings"}
	RawStringQuotes      = Message{"A110", "use single quotes for raw string"}
	StringNotASCII       = Message{"A110", "string literal doesn't match ascii()"}
	RedundantParenthesis = Message{"A111", "redundant parenthesis for %s statement"}
	UnicodePrefix        = Message{"A112", `use "from __future__ import unicode_literals" instead of prefixing literals with "u"`}

	RedundantDeclaration = Message{"A201", "redundant %s declaration for %s"}
	TopLevelDeclaration  = Message{"A201", "%s declaration on top-level"}
	DeadCode             = Message{"A202", "dead code after %s"}
	UnusedExpression     = Message{"A203", "unused expression"}
	RedundantPass        = Message{"A204", "redundant pass statement"}
	EmptyBlock           = Message{"A205", "empty block"}
	ExtraneousElse       = Message{"A206", "Extraneous else statement after %s in %s-clause"}
	DuplicateKey         = Message{"A207", "duplicate key in dict"}
	DuplicateItem        = Message{"A207", "duplicate item in set"}

	DiscouragedAPI     = Message{"A301", "use %s() instead of %s()"}
	RedefinedBuiltin   = Message{"A302", "redefined built-in %s"}
	NonDefaultEncoding = Message{"A303", "non-default file encoding"}

	// SyntaxError reports a file that could not be parsed.
	SyntaxError = Message{"E999", "SyntaxError: %s"}
)

// Codes returns the message catalog in code order.
func Codes() []Message {
	return []Message{
		OrderedData,
		UnorderedData,
		YodaCondition,
		LambdaCall,
		RedundantConstructor,
		AugmentAssignment,
		PercentFormat,
		PlusConcat,
		RawStringQuotes,
		StringNotASCII,
		RedundantParenthesis,
		UnicodePrefix,
		RedundantDeclaration,
		TopLevelDeclaration,
		DeadCode,
		UnusedExpression,
		RedundantPass,
		EmptyBlock,
		ExtraneousElse,
		DuplicateKey,
		DuplicateItem,
		DiscouragedAPI,
		RedefinedBuiltin,
		NonDefaultEncoding,
		SyntaxError,
	}
}
