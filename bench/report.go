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

package bench

import (
	"time"

	"github.com/cybrota/ordbench/collections"
	"github.com/cybrota/ordbench/workload"
)

// Searcher names used in SearchRow.
const (
	SearchLinear = "sequence/linear"
	SearchBinary = "sequence/binary"
	SearchBST    = "bst"
	SearchAVL    = "avl"
)

type Report struct {
	Seed        int64      `yaml:"seed"`
	Repetitions int        `yaml:"repetitions"`
	Scenarios   []Scenario `yaml:"scenarios"`
}

// Scenario holds every measurement for one dataset size and order.
type Scenario struct {
	Size   int            `yaml:"size"`
	Order  workload.Order `yaml:"order"`
	Insert []Measurement  `yaml:"insert"`
	Sort   []Measurement  `yaml:"sort"`
	Search []SearchRow    `yaml:"search"`
	Shape  Shape          `yaml:"shape"`
}

// Measurement is the mean duration of an operation over all repetitions.
type Measurement struct {
	Name string        `yaml:"name"`
	Mean time.Duration `yaml:"mean"`
}

// Millis returns the mean in fractional milliseconds.
func (m Measurement) Millis() float64 {
	return float64(m.Mean) / float64(time.Millisecond)
}

type SearchRow struct {
	Structure string        `yaml:"structure"`
	Probes    []ProbeResult `yaml:"probes"`
}

type ProbeResult struct {
	workload.Probe `yaml:",inline"`
	Found          bool          `yaml:"found"`
	Mean           time.Duration `yaml:"mean"`
}

// Shape records the final form of the trees built from the dataset.
type Shape struct {
	UnbalancedHeight int                       `yaml:"bst_height"`
	BalancedHeight   int                       `yaml:"avl_height"`
	Rotations        collections.RotationStats `yaml:"avl_rotations"`
}
