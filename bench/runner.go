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

// Package bench times the collections against each other. For every dataset
// size and insertion order it measures insertion into each structure, both
// sort strategies on the sequence and searches for a fixed set of probes.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/cybrota/ordbench/collections"
	"github.com/cybrota/ordbench/workload"
)

// DatasetSource produces the input for one scenario.
type DatasetSource func(n int, order workload.Order, seed int64) []int64

type Option func(*Runner)

// WithLogger routes debug output to logger instead of the logrus standard
// logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// WithProgress draws a progress bar on w while scenarios run.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progress = w
	}
}

// WithDatasetSource replaces workload.Generate, e.g. with a cached variant.
func WithDatasetSource(source DatasetSource) Option {
	return func(r *Runner) {
		r.dataset = source
	}
}

// WithClock replaces time.Now for measurements.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// Runner executes the scenarios described by a Config.
type Runner struct {
	cfg      Config
	log      *logrus.Logger
	progress io.Writer
	dataset  DatasetSource
	now      func() time.Time
}

// NewRunner validates cfg and applies opts. An empty strategy list means all
// strategies.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = collections.AllStrategies()
	}

	r := &Runner{
		cfg:     cfg,
		log:     logrus.StandardLogger(),
		dataset: workload.Generate,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run measures every size/order scenario in order. On cancellation the
// scenarios completed so far are returned along with the context error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Seed:        r.cfg.Seed,
		Repetitions: r.cfg.Repetitions,
		Scenarios:   make([]Scenario, 0, r.cfg.scenarios()),
	}

	var bar *progressbar.ProgressBar
	if r.progress != nil {
		bar = progressbar.NewOptions(r.cfg.scenarios(),
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription("Benchmarking..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	for _, n := range r.cfg.Sizes {
		for _, order := range r.cfg.Orders {
			if err := ctx.Err(); err != nil {
				return report, fmt.Errorf("benchmark stopped before n=%d order=%s: %w", n, order, err)
			}

			entry := r.log.WithFields(logrus.Fields{"size": n, "order": order.String()})
			if bar != nil {
				bar.Describe(fmt.Sprintf("n=%d %s", n, order))
			}

			start := r.now()
			sc, err := r.runScenario(n, order)
			if err != nil {
				return report, fmt.Errorf("scenario n=%d order=%s: %w", n, order, err)
			}
			report.Scenarios = append(report.Scenarios, sc)

			entry.WithField("elapsed", r.now().Sub(start)).Debug("scenario completed")
			if bar != nil {
				bar.Add(1)
			}
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return report, nil
}

func (r *Runner) runScenario(n int, order workload.Order) (Scenario, error) {
	data := r.dataset(n, order, r.cfg.Seed)
	sc := Scenario{Size: n, Order: order}

	for _, kind := range collections.AllKinds() {
		mean, err := r.timeInsert(kind, data)
		if err != nil {
			return sc, err
		}
		sc.Insert = append(sc.Insert, Measurement{Name: kind.String(), Mean: mean})
		r.log.WithFields(logrus.Fields{"size": n, "structure": kind.String(), "mean": mean}).Debug("insert measured")
	}

	var seq collections.Sortable = collections.NewBoundedSequence(len(data))
	var bst collections.Tree = collections.NewUnbalancedTree()
	avl := collections.NewBalancedTree()
	for _, v := range data {
		seq.Insert(v)
		bst.Insert(v)
		avl.Insert(v)
	}

	for _, strategy := range r.cfg.Strategies {
		mean := r.timeSort(strategy, seq.Snapshot())
		sc.Sort = append(sc.Sort, Measurement{Name: strategy.String(), Mean: mean})
	}

	var sorted collections.Sortable = collections.NewBoundedSequence(len(data))
	for _, v := range data {
		sorted.Insert(v)
	}
	sorted.Sort(collections.MergeSort)

	searchers := []struct {
		name   string
		search func(int64) bool
	}{
		{SearchLinear, seq.Search},
		{SearchBinary, sorted.BinarySearch},
		{SearchBST, bst.Search},
		{SearchAVL, avl.Search},
	}

	probes := workload.Probes(data)
	for _, s := range searchers {
		row := SearchRow{Structure: s.name}
		for _, p := range probes {
			found, mean := r.timeSearch(s.search, p.Key)
			row.Probes = append(row.Probes, ProbeResult{Probe: p, Found: found, Mean: mean})
		}
		sc.Search = append(sc.Search, row)
	}

	sc.Shape = Shape{
		UnbalancedHeight: bst.Height(),
		BalancedHeight:   avl.Height(),
		Rotations:        avl.Rotations(),
	}
	return sc, nil
}

// timeInsert builds a fresh structure per repetition and times only the
// inserts.
func (r *Runner) timeInsert(kind collections.Kind, data []int64) (time.Duration, error) {
	var total time.Duration
	for rep := 0; rep < r.cfg.Repetitions; rep++ {
		s, err := collections.New(kind, len(data))
		if err != nil {
			return 0, err
		}

		start := r.now()
		for _, v := range data {
			s.Insert(v)
		}
		total += r.now().Sub(start)
	}
	return total / time.Duration(r.cfg.Repetitions), nil
}

// timeSort sorts a fresh copy of data on every repetition so each run starts
// from the same unsorted state.
func (r *Runner) timeSort(strategy collections.SortStrategy, data []int64) time.Duration {
	var total time.Duration
	for rep := 0; rep < r.cfg.Repetitions; rep++ {
		var seq collections.Sortable = collections.NewBoundedSequence(len(data))
		for _, v := range data {
			seq.Insert(v)
		}

		start := r.now()
		seq.Sort(strategy)
		total += r.now().Sub(start)
	}
	return total / time.Duration(r.cfg.Repetitions)
}

func (r *Runner) timeSearch(search func(int64) bool, key int64) (bool, time.Duration) {
	var (
		total time.Duration
		found bool
	)
	for rep := 0; rep < r.cfg.Repetitions; rep++ {
		start := r.now()
		found = search(key)
		total += r.now().Sub(start)
	}
	return found, total / time.Duration(r.cfg.Repetitions)
}
