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

// Package astutil holds per-file information used to filter findings.
package astutil

import (
	"regexp"
	"slices"
	"strings"

	"github.com/TrLucas/codingtools/internal/pytoken"
	"github.com/TrLucas/codingtools/internal/report"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	name      string
	noqa      map[int]directive
	generated bool
}

// directive is a "# noqa" comment. A nil code list suppresses every finding.
type directive struct {
	codes []string
}

// NewCurrentFile creates a new [CurrentFile] from the logical lines of a file.
func NewCurrentFile(name string, lines []pytoken.Line) CurrentFile {
	c := CurrentFile{name: name, noqa: make(map[int]directive)}

	header := true
	for _, line := range lines {
		var (
			found bool
			d     directive
		)

		first, last := 0, 0
		for _, tok := range line.Tokens {
			if first == 0 {
				first = tok.Start.Line
			}

			last = max(last, tok.End.Line)

			if tok.Kind != pytoken.Comment {
				continue
			}

			if header && generatedPattern.MatchString(tok.Text) {
				c.generated = true
			}

			codes, ok := CommentNoQA(tok.Text)
			if !ok {
				continue
			}

			switch {
			case !found:
				d.codes = codes

			case d.codes != nil && codes != nil:
				d.codes = append(d.codes, codes...)

			default:
				d.codes = nil
			}

			found = true
		}

		if line.Text != "" {
			header = false
		}

		if !found {
			continue
		}

		for n := first; n <= last; n++ {
			c.noqa[n] = d
		}
	}

	return c
}

// Valid returns true if the [CurrentFile] was created by [NewCurrentFile].
func (c CurrentFile) Valid() bool {
	return c.noqa != nil
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.name
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoQA checks if a finding is suppressed by a "# noqa" comment in its logical line.
func (c CurrentFile) NoQA(f report.Finding) bool {
	d, ok := c.noqa[f.Line]
	if !ok {
		return false
	}

	if d.codes == nil {
		return true
	}

	code := f.Code()

	return slices.ContainsFunc(d.codes, func(prefix string) bool { return strings.HasPrefix(code, prefix) })
}

var (
	noqaPattern      = regexp.MustCompile(`(?i)#\s*noqa(?::\s?((?:[A-Z][0-9]+(?:[,\s]+)?)+))?`)
	codePattern      = regexp.MustCompile(`[A-Z][0-9]+`)
	generatedPattern = regexp.MustCompile(`(?i)^#.*(?:\bgenerated\b.*\bdo not edit\b|@generated\b)`)
)

// CommentNoQA checks if a comment contains a "# noqa" directive and returns
// the codes it is restricted to, nil when it applies to all codes.
func CommentNoQA(comment string) (codes []string, ok bool) {
	matches := noqaPattern.FindStringSubmatch(comment)
	if matches == nil {
		return nil, false
	}

	if matches[1] == "" {
		return nil, true
	}

	return codePattern.FindAllString(strings.ToUpper(matches[1]), -1), true
}
