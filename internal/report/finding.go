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

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/TrLucas/codingtools/internal/pyast"
)

// Finding is a single style violation.
// Line is 1-based, Col is 0-based. Message starts with the finding's code.
type Finding struct {
	Line    int
	Col     int
	Message string
	Extra   any
	// Runes is set when Col counts characters, as for token positions, instead of UTF-8 bytes.
	Runes bool
}

// Code returns the code prefix of the message, e.g. "A101".
func (f Finding) Code() string {
	code, _, _ := strings.Cut(f.Message, " ")

	return code
}

func (f Finding) String() string {
	return fmt.Sprintf("%d:%d: %s", f.Line, f.Col, f.Message)
}

// Compare orders findings by position.
func Compare(a, b Finding) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}

// Sort orders findings by position, keeping the relative order of findings at the same position.
func Sort(findings []Finding) {
	slices.SortStableFunc(findings, Compare)
}

// Message is a message template of the catalog.
type Message struct {
	Code   string
	Format string
}

// At creates a finding for the message at pos.
func (m Message) At(pos pyast.Pos, args ...any) Finding {
	msg := make([]byte, 0, len(m.Code)+1+len(m.Format))
	msg = append(msg, m.Code...)
	msg = append(msg, ' ')

	if len(args) > 0 {
		msg = fmt.Appendf(msg, m.Format, args...)
	} else {
		msg = append(msg, m.Format...)
	}

	return Finding{Line: pos.Line, Col: pos.Col, Message: string(msg)}
}

// Of creates a finding for the message at the start of node n.
func (m Message) Of(n pyast.Node, args ...any) Finding {
	return m.At(n.Pos(), args...)
}
