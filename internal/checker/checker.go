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

// Package checker registers the eyeo checks and prepares source files for them.
package checker

import (
	"context"
	"fmt"
	"iter"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/TrLucas/codingtools/internal/analyze"
	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/pyparse"
	"github.com/TrLucas/codingtools/internal/pytoken"
	"github.com/TrLucas/codingtools/internal/report"
	"github.com/TrLucas/codingtools/internal/tokencheck"
)

const (
	// Name is the name every check is registered under.
	Name = "eyeo"

	modulePath = "github.com/TrLucas/codingtools"
	devel      = "(devel)"
)

// File is a Python source file, parsed and tokenized.
type File struct {
	Name    string
	Source  string
	Module  *pyast.Module
	Tokens  []pytoken.Token
	Logical []pytoken.Line
}

// Load parses and tokenizes src.
func Load(ctx context.Context, name string, src []byte) (*File, error) {
	m, err := pyparse.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	tokens, err := pytoken.Tokenize(string(src))
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", name, err)
	}

	return &File{
		Name:    name,
		Source:  string(src),
		Module:  m,
		Tokens:  tokens,
		Logical: pytoken.Logical(tokens),
	}, nil
}

// PhysicalLines yields the 1-based line numbers and lines of the file.
func (f *File) PhysicalLines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for line := range strings.Lines(f.Source) {
			n++
			if !yield(n, line) {
				return
			}
		}
	}
}

// Check is a registered check.
type Check struct {
	id  string
	run func(f *File) []report.Finding
}

// Name returns the name the check is registered under.
func (Check) Name() string { return Name }

// Version returns the version of the module providing the check.
func (Check) Version() string { return Version() }

// ID distinguishes the checks sharing a name.
func (c Check) ID() string { return c.id }

// Run applies the check to f.
func (c Check) Run(f *File) []report.Finding { return c.run(f) }

// All returns the checks in registration order.
func All() []Check {
	return []Check{
		{"ast", checkTree},
		{"encoding", checkEncoding},
		{"quotes", checkQuotes},
		{"parenthesis", checkParenthesis},
	}
}

func checkTree(f *File) []report.Finding {
	return analyze.Check(f.Module)
}

func checkEncoding(f *File) []report.Finding {
	var findings []report.Finding

	for n, line := range f.PhysicalLines() {
		if n > 2 {
			break
		}

		if finding, ok := tokencheck.CheckEncoding(line, n); ok {
			findings = append(findings, finding)
		}
	}

	return findings
}

func checkQuotes(f *File) []report.Finding {
	var (
		state    tokencheck.State
		findings []report.Finding
	)

	for _, line := range f.Logical {
		findings = append(findings, tokencheck.CheckQuotes(line.Tokens, line.Previous, &state)...)
	}

	return inRunes(findings)
}

func checkParenthesis(f *File) []report.Finding {
	var findings []report.Finding

	for _, line := range f.Logical {
		findings = append(findings, tokencheck.CheckRedundantParenthesis(line.Tokens)...)
	}

	return inRunes(findings)
}

// inRunes marks findings at token positions, whose columns count characters.
func inRunes(findings []report.Finding) []report.Finding {
	for i := range findings {
		findings[i].Runes = true
	}

	return findings
}

// Version returns the module version from the build information, "(devel)" when unknown.
func Version() string { return version() }

var version = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}

	if info.Main.Path == modulePath {
		return moduleVersion(&info.Main)
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return moduleVersion(dep)
		}
	}

	return devel
})

func moduleVersion(m *debug.Module) string {
	if m.Replace != nil {
		m = m.Replace
	}

	if m.Version == "" {
		return devel
	}

	return m.Version
}
