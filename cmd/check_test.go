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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

const (
	orderedSource = "for x in (1, 2):\n    y(x)\n"
	orderedLine   = ":1:10: A101 use lists for data that have order\n"
)

func TestCheckCmd_Text(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.py":  orderedSource,
		"good.py": "x = [1, 2]\n",
	})

	stdout, stderr, err := execute(t, "check", dir)

	require.ErrorIs(t, err, errFindings)
	assert.Equal(t, filepath.Join(dir, "bad.py")+orderedLine, stdout)
	assert.Empty(t, stderr)
}

func TestCheckCmd_Clean(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.py": "x = [1, 2]\n"})

	stdout, _, err := execute(t, "check", dir)

	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestCheckCmd_Order(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.py":      orderedSource,
		"b.py":      orderedSource,
		"c/d.py":    orderedSource,
		"c/e.py":    orderedSource,
		"f.txt":     orderedSource,
		"skip/g.py": orderedSource,
	})

	stdout, _, err := execute(t, "check", "--parallel", "3", "--exclude", "/skip$", dir)

	require.ErrorIs(t, err, errFindings)

	var want string
	for _, name := range []string{"a.py", "b.py", "c/d.py", "c/e.py"} {
		want += filepath.Join(dir, filepath.FromSlash(name)) + orderedLine
	}

	assert.Equal(t, want, stdout)
}

func TestCheckCmd_NoQA(t *testing.T) {
	dir := writeFiles(t, map[string]string{"noqa.py": "for x in (1, 2):  # noqa: A101\n    y(x)\n"})

	stdout, _, err := execute(t, "check", dir)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	stdout, _, err = execute(t, "check", "--noqa=false", dir)
	require.ErrorIs(t, err, errFindings)
	assert.Contains(t, stdout, "A101")
}

func TestCheckCmd_SyntaxError(t *testing.T) {
	dir := writeFiles(t, map[string]string{"broken.py": "def f(:\n    pass\n"})

	stdout, _, err := execute(t, "check", dir)

	require.ErrorIs(t, err, errFindings)
	assert.Contains(t, stdout, filepath.Join(dir, "broken.py")+":")
	assert.Contains(t, stdout, "E999 SyntaxError")
}

func TestCheckCmd_NotPython(t *testing.T) {
	dir := writeFiles(t, map[string]string{"data.py": "x = 1\x00\n"})

	stdout, stderr, err := execute(t, "check", dir)

	require.ErrorIs(t, err, errFindings)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not a Python source file")
}

func TestCheckCmd_YAML(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.py": orderedSource})

	stdout, _, err := execute(t, "check", "--format", "yaml", dir)
	require.ErrorIs(t, err, errFindings)

	var got []yamlFinding
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))

	want := []yamlFinding{{
		File:    filepath.Join(dir, "bad.py"),
		Line:    1,
		Column:  10,
		Code:    "A101",
		Message: "use lists for data that have order",
	}}
	assert.Equal(t, want, got)
}

func TestCheckCmd_Table(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.py": orderedSource})

	stdout, _, err := execute(t, "check", "--format", "table", dir)

	require.ErrorIs(t, err, errFindings)
	assert.Contains(t, stdout, "A101")
	assert.Contains(t, stdout, "use lists for data that have order")
}

func TestCheckCmd_Color(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.py": orderedSource})

	stdout, _, err := execute(t, "check", "--color", "always", dir)

	require.ErrorIs(t, err, errFindings)
	assert.Contains(t, stdout, "\x1b[")
	assert.Contains(t, stdout, "use lists for data that have order")
}

func TestCheckCmd_InvalidOptions(t *testing.T) {
	dir := writeFiles(t, map[string]string{"good.py": "x = 1\n"})

	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"--format", "xml"}},
		{"color", []string{"--color", "sometimes"}},
		{"exclude", []string{"--exclude", "("}},
		{"path", []string{filepath.Join(dir, "missing")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"check"}, tt.args...)
			if tt.name != "path" {
				args = append(args, dir)
			}

			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errFindings)
		})
	}
}

func TestCheckCmd_Environment(t *testing.T) {
	t.Setenv("EYEOLINT_CHECK_FORMAT", "yaml")

	dir := writeFiles(t, map[string]string{"good.py": "x = 1\n"})

	stdout, _, err := execute(t, "check", dir)

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}
