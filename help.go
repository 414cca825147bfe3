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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const version = "0.1.0"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **ordbench %s**

Compare a fixed-capacity array, an unbalanced binary search tree and an AVL tree
under insertion, search and sorting workloads.

Built with Go %s

# 1. What gets measured
* Insertion into each structure, averaged over fresh instances
* Bubble (exchange) sort and merge sort on the array
* Linear search, binary search after sorting, BST search and AVL search for the
  first, last, middle, three early and one missing key

# 2. Input orderings
* ascending: 1..n
* descending: n..1
* shuffled: 1..n permuted by a fixed-seed linear congruential generator

# 3. Examples
* ordbench run --sizes 100,1000 --repetitions 3
* ordbench run --orders shuffled --format markdown
* ordbench run --format yaml > report.yaml
* ordbench settings

# Configuration
Defaults are read from ~/.ordbench.yaml; flags override them.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
