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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatYAML  = "yaml"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// resultPrinter writes the findings of results to w.
type resultPrinter func(w io.Writer, results []fileResult, color bool) error

func outputFormat(name string) (resultPrinter, error) {
	switch strings.ToLower(name) {
	case formatText:
		return printText, nil

	case formatTable:
		return printTable, nil

	case formatYAML:
		return printYAML, nil

	default:
		return nil, fmt.Errorf("unknown output format %q (want %s, %s or %s)", name, formatText, formatTable, formatYAML)
	}
}

// useColor decides whether output to w is colorized.
func useColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case colorAlways:
		return true, nil

	case colorNever:
		return false, nil

	case colorAuto:
		f, ok := w.(*os.File)

		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil

	default:
		return false, fmt.Errorf("unknown color mode %q (want %s, %s or %s)", mode, colorAuto, colorAlways, colorNever)
	}
}

// printText writes flake8 style lines "path:line:col: code message" with 1-based columns.
func printText(w io.Writer, results []fileResult, color bool) error {
	codeStyle := func(code string) string { return code }

	if color {
		renderer := lipgloss.NewRenderer(w)
		renderer.SetColorProfile(termenv.ANSI256)
		style := renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		codeStyle = func(code string) string { return style.Render(code) }
	}

	for _, r := range results {
		for _, f := range r.Findings {
			code, text, _ := strings.Cut(f.Message, " ")
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s\n", r.Path, f.Line, f.Col+1, codeStyle(code), text); err != nil {
				return err
			}
		}
	}

	return nil
}

func printTable(w io.Writer, results []fileResult, _ bool) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Line", "Col", "Code", "Message"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, r := range results {
		for _, f := range r.Findings {
			code, text, _ := strings.Cut(f.Message, " ")
			table.Append([]string{r.Path, strconv.Itoa(f.Line), strconv.Itoa(f.Col + 1), code, text})
		}
	}

	table.Render()

	return nil
}

// yamlFinding is the serialized form of a finding.
type yamlFinding struct {
	File    string `yaml:"file"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Code    string `yaml:"code"`
	Message string `yaml:"message"`
}

func printYAML(w io.Writer, results []fileResult, _ bool) error {
	findings := []yamlFinding{}

	for _, r := range results {
		for _, f := range r.Findings {
			code, text, _ := strings.Cut(f.Message, " ")
			findings = append(findings, yamlFinding{File: r.Path, Line: f.Line, Column: f.Col + 1, Code: code, Message: text})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(findings); err != nil {
		return fmt.Errorf("encode findings: %w", err)
	}

	return enc.Close()
}
