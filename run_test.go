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
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/ordbench/bench"
	"github.com/cybrota/ordbench/collections"
	"github.com/cybrota/ordbench/workload"
)

func newTestCommand(t *testing.T, args ...string) (*cobra.Command, *runOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:           "run",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, opts)
		},
	}
	opts.bindFlags(cmd)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	return cmd, opts, &stdout, &stderr
}

func TestApplyOverridesOnlyChangedFlags(t *testing.T) {
	cmd, opts, _, _ := newTestCommand(t)
	require.NoError(t, cmd.ParseFlags([]string{"--sizes", "3,4", "--orders", "desc,random", "--strategies", "bubble"}))

	config := defaultConfig()
	require.NoError(t, opts.apply(cmd, &config))

	assert.Equal(t, []int{3, 4}, config.Benchmark.Sizes)
	assert.Equal(t, []workload.Order{workload.Descending, workload.Shuffled}, config.Benchmark.Orders)
	assert.Equal(t, []collections.SortStrategy{collections.ExchangeSort}, config.Benchmark.Strategies)
	assert.Equal(t, bench.DefaultRepetitions, config.Benchmark.Repetitions)
	assert.Equal(t, FormatTable, config.Report.Format)
}

func TestApplyRejectsBadFlags(t *testing.T) {
	testCases := [][]string{
		{"--orders", "sideways"},
		{"--strategies", "quick"},
		{"--repetitions", "0"},
		{"--format", "html"},
	}
	for _, args := range testCases {
		cmd, opts, _, _ := newTestCommand(t)
		require.NoError(t, cmd.ParseFlags(args))

		config := defaultConfig()
		assert.Error(t, opts.apply(cmd, &config), "%v", args)
	}
}

func TestRunBenchmarkYAML(t *testing.T) {
	cmd, _, stdout, _ := newTestCommand(t,
		"--sizes", "8", "--repetitions", "1", "--orders", "ascending", "--format", "yaml", "--no-progress")
	require.NoError(t, cmd.Execute())

	var report bench.Report
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Scenarios, 1)

	sc := report.Scenarios[0]
	assert.Equal(t, 8, sc.Size)
	assert.Equal(t, workload.Ascending, sc.Order)
	assert.Equal(t, 8, sc.Shape.UnbalancedHeight)
	assert.Equal(t, 4, sc.Shape.BalancedHeight)
}

func TestRunBenchmarkTableWithProgress(t *testing.T) {
	cmd, _, stdout, stderr := newTestCommand(t, "--sizes", "4", "--repetitions", "1")
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "n = 4")
	assert.NotZero(t, stderr.Len(), "progress bar goes to stderr")
}

func TestRunBenchmarkExplicitConfig(t *testing.T) {
	path := writeFile(t, "benchmark:\n  sizes: [6]\n  repetitions: 1\n  orders: [shuffled]\nreport:\n  format: yaml\n")

	cmd, _, stdout, _ := newTestCommand(t, "--config", path, "--no-progress")
	require.NoError(t, cmd.Execute())

	var report bench.Report
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Scenarios, 1)
	assert.Equal(t, workload.Shuffled, report.Scenarios[0].Order)
}

func TestRunBenchmarkBrokenExplicitConfig(t *testing.T) {
	path := writeFile(t, "benchmark: [not, a, map]\n")

	cmd, _, _, _ := newTestCommand(t, "--config", path)
	assert.Error(t, cmd.Execute())
}
