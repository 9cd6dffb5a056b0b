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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/tools/go/analysis"

	"github.com/TrLucas/codingtools/internal/report"
	"github.com/TrLucas/codingtools/internal/run"
)

// run checks the Python files in the directories of the package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// External test packages share the directory of the package under test
	if p.Pkg != nil && strings.HasSuffix(p.Pkg.Name(), "_test") {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "EyeoPackage")
	defer task.End()

	for _, dir := range packageDirs(p) {
		paths, err := filepath.Glob(filepath.Join(dir, "*.py"))
		if err != nil {
			return nil, fmt.Errorf("eyeo: %w", err)
		}

		for _, path := range paths {
			if err := r.checkFile(ctx, p, path); err != nil {
				return nil, fmt.Errorf("eyeo: %w", err)
			}
		}
	}

	return nil, nil
}

// packageDirs returns the sorted directories of the package files.
func packageDirs(p *analysis.Pass) []string {
	var dirs []string

	for _, f := range p.Files {
		tf := p.Fset.File(f.FileStart)
		if tf == nil {
			continue
		}

		if dir := filepath.Dir(tf.Name()); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	slices.Sort(dirs)

	return dirs
}

func (r *runOptions) checkFile(ctx context.Context, p *analysis.Pass, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	findings, err := r.File(ctx, path, src)
	if errors.Is(err, run.ErrNotPython) {
		slog.DebugContext(ctx, "Skipping file", slog.String("file", path), slog.Any("error", err))

		return nil
	}

	if err != nil || len(findings) == 0 {
		return err
	}

	tf := p.Fset.AddFile(path, -1, len(src))
	tf.SetLinesForContent(src)

	for _, f := range findings {
		p.Report(analysis.Diagnostic{
			Pos:      position(tf, src, f),
			Category: f.Code(),
			Message:  f.Message,
		})
	}

	return nil
}

// position converts the line and column of a finding into a [token.Pos], clamped to the file.
func position(tf *token.File, src []byte, f report.Finding) token.Pos {
	if f.Line < 1 || f.Line > tf.LineCount() {
		return tf.Pos(0)
	}

	start := tf.Offset(tf.LineStart(f.Line))

	col := max(f.Col, 0)
	if f.Runes {
		col = byteColumn(src[start:], col)
	}

	return tf.Pos(min(start+col, tf.Size()))
}

// byteColumn returns the byte offset of the n-th rune in line.
func byteColumn(line []byte, n int) int {
	offset := 0
	for ; n > 0 && offset < len(line); n-- {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
	}

	return offset
}
