// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/ordbench/bench"
)

func millis(m bench.Measurement) string {
	return fmt.Sprintf("%.3f", m.Millis())
}

func probeHeaders(sc bench.Scenario) []string {
	headers := []string{"structure"}
	if len(sc.Search) > 0 {
		for _, p := range sc.Search[0].Probes {
			headers = append(headers, fmt.Sprintf("%s (%d)", p.Name, p.Key))
		}
	}
	return headers
}

func probeRow(row bench.SearchRow) []string {
	cells := []string{row.Structure}
	for _, p := range row.Probes {
		mark := "✓"
		if !p.Found {
			mark = "✗"
		}
		cells = append(cells, fmt.Sprintf("%s %s", millis(bench.Measurement{Mean: p.Mean}), mark))
	}
	return cells
}

func measurementRow(label string, ms []bench.Measurement) ([]string, []string) {
	headers := []string{label}
	cells := []string{"ms"}
	for _, m := range ms {
		headers = append(headers, m.Name)
		cells = append(cells, millis(m))
	}
	return headers, cells
}

func newTable(styles *Styles, headers []string, rows ...[]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			if col == 0 {
				return styles.Highlight
			}
			return styles.Cell
		}).
		Headers(headers...).
		Rows(rows...)
}

// renderTable lays the report out as lipgloss tables, one block per scenario.
func renderTable(report *bench.Report, styles *Styles) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("ordbench report (seed %d, %d repetitions)",
		report.Seed, report.Repetitions)))
	b.WriteString("\n")

	for _, sc := range report.Scenarios {
		b.WriteString(styles.Section.Render(fmt.Sprintf("n = %d, %s insertion order", sc.Size, sc.Order)))
		b.WriteString("\n")

		headers, cells := measurementRow("insert", sc.Insert)
		b.WriteString(newTable(styles, headers, cells).Render())
		b.WriteString("\n")

		headers, cells = measurementRow("sort", sc.Sort)
		b.WriteString(newTable(styles, headers, cells).Render())
		b.WriteString("\n")

		rows := make([][]string, 0, len(sc.Search))
		for _, row := range sc.Search {
			rows = append(rows, probeRow(row))
		}
		b.WriteString(newTable(styles, probeHeaders(sc), rows...).Render())
		b.WriteString("\n")

		b.WriteString(styles.Muted.Render(fmt.Sprintf("bst height %d · avl height %d · avl rotations %d",
			sc.Shape.UnbalancedHeight, sc.Shape.BalancedHeight, sc.Shape.Rotations.Total())))
		b.WriteString("\n")
	}
	return b.String()
}

func markdownTable(b *strings.Builder, headers []string, rows ...[]string) {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	b.WriteString("\n")
}

// renderMarkdown produces the report as plain GitHub-flavoured markdown.
func renderMarkdown(report *bench.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# ordbench report\n\nSeed `%d`, %d repetitions per measurement. Times in milliseconds.\n\n",
		report.Seed, report.Repetitions)

	for _, sc := range report.Scenarios {
		fmt.Fprintf(&b, "## n = %d, %s\n\n", sc.Size, sc.Order)

		headers, cells := measurementRow("insert", sc.Insert)
		markdownTable(&b, headers, cells)

		headers, cells = measurementRow("sort", sc.Sort)
		markdownTable(&b, headers, cells)

		rows := make([][]string, 0, len(sc.Search))
		for _, row := range sc.Search {
			rows = append(rows, probeRow(row))
		}
		markdownTable(&b, probeHeaders(sc), rows...)

		fmt.Fprintf(&b, "* bst height: %d\n* avl height: %d\n* avl rotations: %d (left %d, right %d, left-right %d, right-left %d)\n\n",
			sc.Shape.UnbalancedHeight, sc.Shape.BalancedHeight, sc.Shape.Rotations.Total(),
			sc.Shape.Rotations.Left, sc.Shape.Rotations.Right,
			sc.Shape.Rotations.LeftRight, sc.Shape.Rotations.RightLeft)
	}
	return b.String()
}

func renderYAML(report *bench.Report) (string, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

// RenderReport formats the report for the terminal in the requested format.
func RenderReport(report *bench.Report, format string, width int) (string, error) {
	switch format {
	case FormatTable:
		return renderTable(report, NewStyles(InitializeColors())), nil
	case FormatMarkdown:
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		return renderer.Render(renderMarkdown(report))
	case FormatYAML:
		return renderYAML(report)
	}
	return "", fmt.Errorf("unknown report format %q", format)
}
