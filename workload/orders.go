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

// Package workload builds the reproducible inputs fed to the collections:
// ascending, descending and shuffled permutations of 1..n, plus the keys
// used to probe searches.
package workload

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOrder = errors.New("unknown insertion order")

// Order is the arrangement of a generated dataset.
type Order int

const (
	Ascending Order = iota
	Descending
	Shuffled
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case Shuffled:
		return "shuffled"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// MarshalText lets orders appear by name in YAML.
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Order) UnmarshalText(text []byte) error {
	parsed, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// AllOrders lists every order in declaration order.
func AllOrders() []Order {
	return []Order{Ascending, Descending, Shuffled}
}

// ParseOrder accepts the names produced by String plus a few aliases.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascending", "sorted", "asc":
		return Ascending, nil
	case "descending", "reversed", "reverse", "desc":
		return Descending, nil
	case "shuffled", "random":
		return Shuffled, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Generate returns the values 1..n arranged by order. Shuffled swaps each
// position i with a generator-chosen position, starting from seed.
func Generate(n int, order Order, seed int64) []int64 {
	if n < 0 {
		n = 0
	}
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i + 1)
	}

	switch order {
	case Descending:
		for i := 0; i < n/2; i++ {
			data[i], data[n-1-i] = data[n-1-i], data[i]
		}
	case Shuffled:
		g := NewGenerator(seed)
		for i := 0; i < n; i++ {
			j := g.Intn(n)
			data[i], data[j] = data[j], data[i]
		}
	}
	return data
}
