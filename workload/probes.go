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

package workload

import (
	"strconv"

	"github.com/willf/bloom"
)

const (
	ProbeFirst   = "first"
	ProbeLast    = "last"
	ProbeMiddle  = "middle"
	ProbeMissing = "missing"

	probeFalsePositiveRate = 0.01
)

// Probe is a named search key.
type Probe struct {
	Name string `yaml:"name"`
	Key  int64  `yaml:"key"`
}

// Probes picks the keys searched for in a dataset: its first, last and
// middle elements, up to three "random" ones taken from positions 1..3 and
// one key that is absent from the data.
func Probes(data []int64) []Probe {
	n := len(data)
	if n == 0 {
		return []Probe{{Name: ProbeMissing, Key: 1}}
	}

	probes := []Probe{
		{Name: ProbeFirst, Key: data[0]},
		{Name: ProbeLast, Key: data[n-1]},
		{Name: ProbeMiddle, Key: data[n/2]},
	}
	for i := 1; i <= 3 && i < n; i++ {
		probes = append(probes, Probe{Name: "random-" + strconv.Itoa(i), Key: data[i]})
	}

	return append(probes, Probe{Name: ProbeMissing, Key: MissingKey(data)})
}

// MissingKey returns a key that does not occur in data, starting the search
// at len(data)+1. Candidates are screened with a bloom filter; a maybe-present
// answer is confirmed against the data before the candidate is skipped.
func MissingKey(data []int64) int64 {
	filter := bloom.NewWithEstimates(uint(len(data)+1), probeFalsePositiveRate)
	present := make(map[int64]struct{}, len(data))
	for _, v := range data {
		filter.AddString(strconv.FormatInt(v, 10))
		present[v] = struct{}{}
	}

	candidate := int64(len(data) + 1)
	for filter.TestString(strconv.FormatInt(candidate, 10)) {
		if _, ok := present[candidate]; !ok {
			break
		}
		candidate++
	}
	return candidate
}
