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


package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePatterns(t *testing.T) {
	exclude, err := compilePatterns([]string{`/vendor/`, `_pb2\.py$`})
	require.NoError(t, err)
	require.Len(t, exclude, 2)

	assert.True(t, excluded("a/vendor/b.py", exclude))
	assert.True(t, excluded("msg_pb2.py", exclude))
	assert.False(t, excluded("a/b.py", exclude))

	_, err = compilePatterns([]string{"["})
	require.Error(t, err)
}

func TestCollectFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.py":         "",
		"b.txt":        "",
		"pkg/c.py":     "",
		"pkg/gen/d.py": "",
		"pkg/e_pb2.py": "",
		"script":       "",
	})

	exclude, err := compilePatterns([]string{`/gen$`, `_pb2\.py$`})
	require.NoError(t, err)

	got, err := collectFiles([]string{dir, filepath.Join(dir, "script")}, exclude)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.py"),
		filepath.Join(dir, "pkg", "c.py"),
		filepath.Join(dir, "script"),
	}
	assert.Equal(t, want, got)
}

func TestCollectFiles_Default(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.py": ""})
	t.Chdir(dir)

	got, err := collectFiles(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py"}, got)
}

func TestCollectFiles_Missing(t *testing.T) {
	_, err := collectFiles([]string{filepath.Join(t.TempDir(), "missing")}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
