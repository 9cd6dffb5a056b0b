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

package astutil_test

import (
	"slices"
	"testing"

	. "github.com/TrLucas/codingtools/internal/astutil"
	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/pytoken"
	"github.com/TrLucas/codingtools/internal/report"
)

func currentFile(t *testing.T, src string) CurrentFile {
	t.Helper()

	tokens, err := pytoken.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	return NewCurrentFile("test.py", pytoken.Logical(tokens))
}

func TestCommentNoQA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		codes   []string
		ok      bool
	}{
		{"# noqa", nil, true},
		{"# NOQA", nil, true},
		{"# noqa: A101", []string{"A101"}, true},
		{"# noqa:A101,a203", []string{"A101", "A203"}, true},
		{"# noqa: A1 E501", []string{"A1", "E501"}, true},
		{"# comment", nil, false},
		{"# type: ignore  # noqa", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			t.Parallel()

			codes, ok := CommentNoQA(tt.comment)
			if ok != tt.ok || !slices.Equal(codes, tt.codes) {
				t.Errorf("Got %q, %t, want %q, %t", codes, ok, tt.codes, tt.ok)
			}
		})
	}
}

func TestNoQA(t *testing.T) {
	t.Parallel()

	c := currentFile(t, "x = (1,  # noqa: A101\n     2)\ny = 1  # noqa\nz = 2\n")

	if !c.Valid() {
		t.Fatal("Got invalid file")
	}

	tests := []struct {
		line int
		code string
		want bool
	}{
		{1, "A101", true},
		{2, "A101", true},
		{2, "A102", false},
		{3, "A203", true},
		{4, "A101", false},
	}

	for _, tt := range tests {
		f := report.Message{Code: tt.code, Format: "test"}.At(pyast.Pos{Line: tt.line})
		if got := c.NoQA(f); got != tt.want {
			t.Errorf("NoQA(%s) = %t, want %t", f, got, tt.want)
		}
	}
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"Header", "# Code generated by protoc. DO NOT EDIT.\nx = 1\n", true},
		{"Marker", "#!/usr/bin/env python\n# @generated\nx = 1\n", true},
		{"AfterCode", "x = 1\n# Code generated by protoc. DO NOT EDIT.\n", false},
		{"Plain", "# A module.\nx = 1\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := currentFile(t, tt.src).Generated(); got != tt.want {
				t.Errorf("Generated() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	f := InternalError(pyast.Pos{Line: 3, Col: 1}, "unexpected %s", "node")
	if got, want := f.String(), "3:1: Internal Error: unexpected node"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
