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

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = int64(1) << 32

	// DefaultSeed keeps generated inputs reproducible across runs.
	DefaultSeed int64 = 12345
)

// Next advances a linear congruential generator. The seed wraps on int64
// overflow; the returned value lies in [0, limit). A non-positive limit
// yields 0.
func Next(seed int64, limit int) (int64, int) {
	next := lcgMultiplier*seed + lcgIncrement

	if limit <= 0 {
		return next, 0
	}

	r := next % lcgModulus
	if r < 0 {
		r = -r
	}
	return next, int(r % int64(limit))
}

// Generator is a stateful wrapper around Next.
type Generator struct {
	seed int64
}

func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Intn returns the next value in [0, limit).
func (g *Generator) Intn(limit int) int {
	var v int
	g.seed, v = Next(g.seed, limit)
	return v
}

// Seed returns the current generator state.
func (g *Generator) Seed() int64 {
	return g.seed
}
