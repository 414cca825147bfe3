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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cybrota/ordbench/bench"
	"github.com/cybrota/ordbench/collections"
	"github.com/cybrota/ordbench/workload"
)

// runOptions holds the flag values of the run command.
type runOptions struct {
	configPath  string
	sizes       []int
	repetitions int
	seed        int64
	orders      []string
	strategies  []string
	format      string
	width       int
	copy        bool
	verbose     bool
	noProgress  bool
}

func (o *runOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "path to a YAML config (default ~/"+configFileName+")")
	flags.IntSliceVar(&o.sizes, "sizes", nil, "dataset sizes, e.g. 100,1000,10000")
	flags.IntVar(&o.repetitions, "repetitions", bench.DefaultRepetitions, "repetitions averaged per measurement")
	flags.Int64Var(&o.seed, "seed", workload.DefaultSeed, "seed of the shuffle generator")
	flags.StringSliceVar(&o.orders, "orders", nil, "insertion orders: ascending, descending, shuffled")
	flags.StringSliceVar(&o.strategies, "strategies", nil, "sort strategies: exchange, merge")
	flags.StringVar(&o.format, "format", FormatTable, "report format: table, markdown or yaml")
	flags.IntVar(&o.width, "width", 100, "word wrap width of the markdown report")
	flags.BoolVar(&o.copy, "copy", false, "copy the markdown report to the clipboard")
	flags.BoolVar(&o.verbose, "verbose", false, "log every measurement")
	flags.BoolVar(&o.noProgress, "no-progress", false, "hide the progress bar")
}

// apply overrides config with every flag the user set explicitly.
func (o *runOptions) apply(cmd *cobra.Command, config *Config) error {
	flags := cmd.Flags()

	if flags.Changed("sizes") {
		config.Benchmark.Sizes = o.sizes
	}
	if flags.Changed("repetitions") {
		config.Benchmark.Repetitions = o.repetitions
	}
	if flags.Changed("seed") {
		config.Benchmark.Seed = o.seed
	}
	if flags.Changed("orders") {
		orders := make([]workload.Order, 0, len(o.orders))
		for _, name := range o.orders {
			order, err := workload.ParseOrder(name)
			if err != nil {
				return err
			}
			orders = append(orders, order)
		}
		config.Benchmark.Orders = orders
	}
	if flags.Changed("strategies") {
		strategies := make([]collections.SortStrategy, 0, len(o.strategies))
		for _, name := range o.strategies {
			strategy, err := collections.ParseSortStrategy(name)
			if err != nil {
				return err
			}
			strategies = append(strategies, strategy)
		}
		config.Benchmark.Strategies = strategies
	}
	if flags.Changed("format") {
		config.Report.Format = o.format
	}
	if flags.Changed("width") {
		config.Report.Width = o.width
	}
	return config.Validate()
}

func (o *runOptions) loadConfig() (*Config, error) {
	if o.configPath != "" {
		return LoadConfigFrom(o.configPath)
	}
	return LoadConfig()
}

func runBenchmark(cmd *cobra.Command, o *runOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	config, err := o.loadConfig()
	if err != nil {
		if o.configPath != "" {
			return err
		}
		logger.WithError(err).Warn("Failed to load configuration. Using default settings.")
	}
	if err := o.apply(cmd, config); err != nil {
		return err
	}

	runnerOpts := []bench.Option{
		bench.WithLogger(logger),
		bench.WithDatasetSource(CachedDatasetSource(NewDatasetCache())),
	}
	if !o.noProgress && config.Report.Format != FormatYAML {
		runnerOpts = append(runnerOpts, bench.WithProgress(cmd.ErrOrStderr()))
	}

	runner, err := bench.NewRunner(config.Benchmark, runnerOpts...)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	logger.WithFields(logrus.Fields{
		"sizes":       config.Benchmark.Sizes,
		"repetitions": config.Benchmark.Repetitions,
		"seed":        config.Benchmark.Seed,
	}).Debug("starting benchmark")

	report, err := runner.Run(ctx)
	if err != nil {
		if ctx.Err() == nil || report == nil || len(report.Scenarios) == 0 {
			return err
		}
		logger.WithError(err).Warn("Benchmark interrupted; printing partial report")
	}

	out, err := RenderReport(report, config.Report.Format, config.Report.Width)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if o.copy {
		if err := clipboard.WriteAll(renderMarkdown(report)); err != nil {
			logger.WithError(err).Warn("Failed to copy report to clipboard")
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "📋 Copied %sreport%s to clipboard.\n", Green, Reset)
		}
	}
	return nil
}
