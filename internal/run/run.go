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

// Package run checks single Python source files.
package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/trace"
	"slices"
	"unicode/utf8"

	"github.com/TrLucas/codingtools/internal/astutil"
	"github.com/TrLucas/codingtools/internal/checker"
	"github.com/TrLucas/codingtools/internal/config"
	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/pyparse"
	"github.com/TrLucas/codingtools/internal/pytoken"
	"github.com/TrLucas/codingtools/internal/report"
)

// ErrNotPython is returned for files that are not Python source text.
var ErrNotPython = errors.New("not a Python source file")

// Path reads and checks the file at path.
func (o *Options) Path(ctx context.Context, path string) ([]report.Finding, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return o.File(ctx, path, src)
}

// File checks Python source src and returns the findings ordered by position.
// Source that does not parse yields a single E999 finding.
func (o *Options) File(ctx context.Context, name string, src []byte) ([]report.Finding, error) {
	ctx, task := trace.NewTask(ctx, "Eyeo")
	defer task.End()

	trace.Log(ctx, "file", name)

	if !utf8.Valid(src) || bytes.IndexByte(src, 0) >= 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNotPython)
	}

	f, err := checker.Load(ctx, name, src)
	if err != nil {
		finding, ok := syntaxError(err)
		if !ok {
			return nil, err
		}

		slog.DebugContext(ctx, "Parse failed", slog.String("file", name), slog.Any("error", err))

		return []report.Finding{finding}, nil
	}

	// Remember the file information for filtering
	currentFile := astutil.NewCurrentFile(name, f.Logical)

	// Skip generated files
	if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		slog.DebugContext(ctx, "Skipping generated file", slog.String("file", name))

		return nil, nil
	}

	var findings []report.Finding
	for _, c := range checker.All() {
		region := trace.StartRegion(ctx, c.ID())
		findings = append(findings, runCheck(c, f)...)
		region.End()
	}

	// Drop findings with noqa comment
	if !o.Behavior.Enabled(config.DisableNoQA) {
		findings = slices.DeleteFunc(findings, currentFile.NoQA)
	}

	report.Sort(findings)

	return findings, nil
}

// runCheck reports a panicking check as an internal error.
func runCheck(c checker.Check, f *checker.File) (findings []report.Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []report.Finding{astutil.InternalError(pyast.Pos{Line: 1}, "%s check: %v", c.ID(), r)}
		}
	}()

	return c.Run(f)
}

func syntaxError(err error) (report.Finding, bool) {
	var serr *pyparse.SyntaxError
	if errors.As(err, &serr) {
		return report.SyntaxError.At(serr.Pos(), serr.Msg), true
	}

	var terr *pytoken.Error
	if errors.As(err, &terr) {
		return report.SyntaxError.At(terr.Pos, terr.Msg), true
	}

	return report.Finding{}, false
}
