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
	"errors"
	"fmt"

	"github.com/cybrota/ordbench/collections"
	"github.com/cybrota/ordbench/workload"
)

const (
	DefaultRepetitions = 5
)

var ErrInvalidConfig = errors.New("invalid benchmark configuration")

// Config describes which scenarios a Runner measures.
type Config struct {
	Sizes       []int                      `yaml:"sizes"`
	Repetitions int                        `yaml:"repetitions"`
	Seed        int64                      `yaml:"seed"`
	Orders      []workload.Order           `yaml:"orders"`
	Strategies  []collections.SortStrategy `yaml:"strategies"`
}

// DefaultConfig mirrors the classic experiment: three sizes, three orders,
// five repetitions and a fixed seed.
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{100, 1000, 10000},
		Repetitions: DefaultRepetitions,
		Seed:        workload.DefaultSeed,
		Orders:      workload.AllOrders(),
		Strategies:  collections.AllStrategies(),
	}
}

// Validate reports the first problem found in the configuration.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes given", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, n)
		}
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions %d must be at least 1", ErrInvalidConfig, c.Repetitions)
	}
	if len(c.Orders) == 0 {
		return fmt.Errorf("%w: no insertion orders given", ErrInvalidConfig)
	}
	return nil
}

// scenarios is the number of size/order combinations the config expands to.
func (c Config) scenarios() int {
	return len(c.Sizes) * len(c.Orders)
}
