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
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, ".eyeolint.yaml", configFileName)
	assert.Equal(t, "EYEOLINT", envPrefix)
	assert.Equal(t, "check.parallel", parallelConfigKey)
	assert.Equal(t, "check.format", formatConfigKey)
	assert.Equal(t, "check.color", colorConfigKey)
	assert.Equal(t, "check.generated", generatedConfigKey)
	assert.Equal(t, "check.noqa", noqaConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "text", defaultFormat)
	assert.Equal(t, "auto", defaultColor)
	assert.True(t, defaultNoQA)
	assert.False(t, defaultGenerated)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), "eyeolint.log")
	t.Setenv("EYEOLINT_LOG_FILENAME", logPath)
	t.Setenv("EYEOLINT_LOG_VERBOSE", "true")

	logger := configureLogger()
	logger.Debug("Checking files", slog.Int("files", 3))

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Checking files")
	assert.Contains(t, string(contents), "files=3")
	assert.Same(t, logger, slog.Default())
}

func TestConfigureLogger_Discard(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logger := configureLogger()

	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestConfigCmd(t *testing.T) {
	t.Setenv("EYEOLINT_CHECK_FORMAT", "table")

	stdout, _, err := execute(t, "config")
	require.NoError(t, err)

	var settings map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &settings))

	check, ok := settings["check"].(map[string]any)
	require.True(t, ok, "check section in %q", stdout)
	assert.Equal(t, "table", check["format"])
	assert.Equal(t, true, check["noqa"])
}

func TestConfigInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "parallel")
}

func TestConfigInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("check:\n  parallel: 2\n"), 0o644))

	_, _, err := execute(t, "config", "init")
	require.Error(t, err)
}
