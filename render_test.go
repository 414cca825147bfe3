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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/ordbench/bench"
	"github.com/cybrota/ordbench/collections"
	"github.com/cybrota/ordbench/workload"
)

func sampleReport() *bench.Report {
	return &bench.Report{
		Seed:        workload.DefaultSeed,
		Repetitions: 5,
		Scenarios: []bench.Scenario{
			{
				Size:  100,
				Order: workload.Ascending,
				Insert: []bench.Measurement{
					{Name: "sequence", Mean: 1500 * time.Microsecond},
					{Name: "bst", Mean: 2 * time.Millisecond},
					{Name: "avl", Mean: 250 * time.Microsecond},
				},
				Sort: []bench.Measurement{
					{Name: "exchange", Mean: 12 * time.Millisecond},
					{Name: "merge", Mean: 400 * time.Microsecond},
				},
				Search: []bench.SearchRow{
					{
						Structure: bench.SearchAVL,
						Probes: []bench.ProbeResult{
							{Probe: workload.Probe{Name: workload.ProbeFirst, Key: 1}, Found: true, Mean: time.Microsecond},
							{Probe: workload.Probe{Name: workload.ProbeMissing, Key: 101}, Found: false, Mean: 2 * time.Microsecond},
						},
					},
				},
				Shape: bench.Shape{
					UnbalancedHeight: 100,
					BalancedHeight:   7,
					Rotations:        collections.RotationStats{Left: 93},
				},
			},
		},
	}
}

func TestRenderMarkdown(t *testing.T) {
	md := renderMarkdown(sampleReport())

	assert.Contains(t, md, "## n = 100, ascending")
	assert.Contains(t, md, "| insert | sequence | bst | avl |")
	assert.Contains(t, md, "| ms | 1.500 | 2.000 | 0.250 |")
	assert.Contains(t, md, "| sort | exchange | merge |")
	assert.Contains(t, md, "| structure | first (1) | missing (101) |")
	assert.Contains(t, md, "| avl | 0.001 ✓ | 0.002 ✗ |")
	assert.Contains(t, md, "* bst height: 100")
	assert.Contains(t, md, "avl rotations: 93 (left 93")
}

func TestRenderTable(t *testing.T) {
	out := renderTable(sampleReport(), NewStyles(createDarkColorScheme()))

	for _, want := range []string{"seed 12345", "n = 100", "sequence", "1.500", "exchange", "missing (101)", "avl height 7"} {
		assert.True(t, strings.Contains(out, want), "table output missing %q", want)
	}
}

func TestRenderReportFormats(t *testing.T) {
	report := sampleReport()

	out, err := RenderReport(report, FormatYAML, 80)
	require.NoError(t, err)
	assert.Contains(t, out, "bst_height: 100")
	assert.Contains(t, out, "mean: 1.5ms")

	out, err = RenderReport(report, FormatMarkdown, 80)
	require.NoError(t, err)
	assert.Contains(t, out, "ordbench")

	out, err = RenderReport(report, FormatTable, 80)
	require.NoError(t, err)
	assert.Contains(t, out, "exchange")

	_, err = RenderReport(report, "pdf", 80)
	assert.Error(t, err)
}
