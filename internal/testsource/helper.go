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

// Package testsource provides utilities for parsing Python source code in tests.
//
// It handles the boilerplate of parsing source fragments and of wrapping
// statement-level fragments into a function.
package testsource

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/pyparse"
)

// Parse parses a Python module. Common leading indentation of src is removed first.
func Parse(tb testing.TB, src string) *pyast.Module {
	tb.Helper()

	m, err := pyparse.Parse(context.Background(), []byte(Dedent(src)))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return m
}

// ParseFunc parses a statement-level fragment.
// The provided source is wrapped in a function body "def _():", which shifts
// every line down by one.
//
// Returns:
//   - *pyast.Module: The parsed module.
//   - *pyast.FunctionDef: The function declaration wrapping the source code.
func ParseFunc(tb testing.TB, src string) (*pyast.Module, *pyast.FunctionDef) {
	tb.Helper()

	m := Parse(tb, wrapSource(Dedent(src)))

	fn, ok := m.Body[0].(*pyast.FunctionDef)
	if !ok || len(m.Body) != 1 {
		tb.Fatal("Can't find function")
	}

	return m, fn
}

func wrapSource(src string) string {
	const header = "def _():\n"

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + 2*len(src))

	srcFile.WriteString(header) // ignore error

	for line := range strings.Lines(src) {
		if strings.TrimSpace(line) != "" {
			srcFile.WriteString("    ") // ignore error
		}

		srcFile.WriteString(line) // ignore error
	}

	return srcFile.String()
}

// Dedent removes leading blank lines and the common indentation of all non-blank lines.
func Dedent(src string) string {
	src = strings.TrimLeft(src, "\n")

	indent := -1

	for line := range strings.Lines(src) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent <= 0 {
		return src
	}

	var b strings.Builder

	for line := range strings.Lines(src) {
		if len(line) >= indent && strings.TrimSpace(line[:indent]) == "" {
			line = line[indent:]
		} else {
			line = strings.TrimLeft(line, " \t")
		}

		b.WriteString(line)
	}

	return b.String()
}
