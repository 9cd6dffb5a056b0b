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
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/TrLucas/codingtools/internal/config"
	"github.com/TrLucas/codingtools/internal/report"
	"github.com/TrLucas/codingtools/internal/run"
)

const checkLongDescription = `Check Python files and directories (default: current directory).

Directories are searched recursively for *.py files. Files given explicitly
are checked regardless of their extension. Paths matching an --exclude
regular expression are skipped.`

// fileResult holds the outcome of checking one file.
type fileResult struct {
	Path     string
	Findings []report.Finding
	Err      error
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Python files",
		Long:  checkLongDescription,
		RunE:  runCheck,
	}

	configureCheckFlags(cmd)

	return cmd
}

func configureCheckFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.IntP(parallelFlagName, "p", defaultParallel, "number of files checked in parallel (0: number of CPUs)")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.StringP(formatFlagName, "f", defaultFormat, "output format: text, table or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.String(colorFlagName, defaultColor, "colorize text output: auto, always or never")
	bindFlagToConfig(flags.Lookup(colorFlagName), colorConfigKey)

	flags.StringArrayP(excludeFlagName, "x", nil, "exclude paths matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.Bool(generatedFlagName, defaultGenerated, "check generated files")
	bindFlagToConfig(flags.Lookup(generatedFlagName), generatedConfigKey)

	flags.Bool(noqaFlagName, defaultNoQA, `honor "# noqa" comments`)
	bindFlagToConfig(flags.Lookup(noqaFlagName), noqaConfigKey)
}

func runCheck(cmd *cobra.Command, args []string) error {
	printResults, err := outputFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return err
	}

	color, err := useColor(viper.GetString(colorConfigKey), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	exclude, err := compilePatterns(viper.GetStringSlice(excludeConfigKey))
	if err != nil {
		return err
	}

	files, err := collectFiles(args, exclude)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	opts := checkOptions()
	slog.DebugContext(ctx, "Checking files", slog.Int("files", len(files)), slog.Any("options", opts))

	results, err := checkFiles(ctx, opts, files, viper.GetInt(parallelConfigKey))
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			cmd.PrintErrf("%s: %v\n", r.Path, r.Err)
		}
	}

	if err := printResults(cmd.OutOrStdout(), results, color); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil || len(r.Findings) > 0 {
			return errFindings
		}
	}

	return nil
}

func checkOptions() *run.Options {
	opts := run.DefaultOptions()
	opts.Behavior.Set(config.IncludeGenerated, viper.GetBool(generatedConfigKey))
	opts.Behavior.Set(config.DisableNoQA, !viper.GetBool(noqaConfigKey))

	return opts
}

// checkFiles checks files concurrently, at most parallel at a time.
// Results are in the order of files.
func checkFiles(ctx context.Context, opts *run.Options, files []string, parallel int) ([]fileResult, error) {
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	results := make([]fileResult, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			findings, err := opts.Path(groupCtx, path)
			results[i] = fileResult{Path: path, Findings: findings, Err: err}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("check files: %w", err)
	}

	return results, nil
}
