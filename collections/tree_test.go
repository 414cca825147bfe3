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

package collections

import (
	"math/rand"
	"slices"
	"testing"
)

type TreeTestCase struct {
	Name          string
	Keys          []int64
	ExpectedOrder []int64 // In-order traversal expectation after inserts
	Absent        []int64
}

var treeTestCases = []TreeTestCase{
	{
		Name:          "Empty",
		Keys:          nil,
		ExpectedOrder: []int64{},
		Absent:        []int64{0, 1, -1},
	},
	{
		Name:          "Ascending",
		Keys:          []int64{1, 2, 3, 4, 5, 6, 7},
		ExpectedOrder: []int64{1, 2, 3, 4, 5, 6, 7},
		Absent:        []int64{0, 8},
	},
	{
		Name:          "Descending",
		Keys:          []int64{7, 6, 5, 4, 3, 2, 1},
		ExpectedOrder: []int64{1, 2, 3, 4, 5, 6, 7},
		Absent:        []int64{0, 8},
	},
	{
		Name:          "Duplicates ignored",
		Keys:          []int64{5, 3, 5, 8, 3, 3, 8},
		ExpectedOrder: []int64{3, 5, 8},
		Absent:        []int64{4, 9},
	},
	{
		Name:          "Negative keys",
		Keys:          []int64{0, -10, 10, -5, 5},
		ExpectedOrder: []int64{-10, -5, 0, 5, 10},
		Absent:        []int64{-11, 1, 11},
	},
}

func newTrees() map[string]Tree {
	return map[string]Tree{
		"unbalanced": NewUnbalancedTree(),
		"balanced":   NewBalancedTree(),
	}
}

func TestTreeOperations(t *testing.T) {
	for _, tc := range treeTestCases {
		for name, tree := range newTrees() {
			t.Run(name+"/"+tc.Name, func(t *testing.T) {
				for _, key := range tc.Keys {
					tree.Insert(key)
				}

				if got := tree.Keys(); !slices.Equal(got, tc.ExpectedOrder) {
					t.Errorf("in-order keys = %v; want %v", got, tc.ExpectedOrder)
				}
				if tree.Len() != len(tc.ExpectedOrder) {
					t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.ExpectedOrder))
				}
				for _, key := range tc.Keys {
					if !tree.Search(key) {
						t.Errorf("Search(%d) = false; want true", key)
					}
				}
				for _, key := range tc.Absent {
					if tree.Search(key) {
						t.Errorf("Search(%d) = true; want false", key)
					}
				}
			})
		}
	}
}

func TestTreeHeightOnAscendingInput(t *testing.T) {
	keys := []int64{1, 2, 3, 4, 5, 6, 7}

	unbalanced := NewUnbalancedTree()
	balanced := NewBalancedTree()
	for _, key := range keys {
		unbalanced.Insert(key)
		balanced.Insert(key)
	}

	if got := unbalanced.Height(); got != 7 {
		t.Errorf("unbalanced Height() = %d; want 7", got)
	}
	if got := balanced.Height(); got != 3 {
		t.Errorf("balanced Height() = %d; want 3", got)
	}
	if got := balanced.root.key; got != 4 {
		t.Errorf("balanced root = %d; want 4", got)
	}
}

func TestEmptyTreeHeight(t *testing.T) {
	if NewUnbalancedTree().Height() != 0 {
		t.Error("empty unbalanced tree should have height 0")
	}
	if NewBalancedTree().Height() != 0 {
		t.Error("empty balanced tree should have height 0")
	}
}

func TestBalancedTreeRotationCases(t *testing.T) {
	testCases := []struct {
		Name     string
		Keys     []int64
		Root     int64
		Left     int64
		Right    int64
		Expected RotationStats
	}{
		{
			Name:     "Left-Left",
			Keys:     []int64{30, 20, 10},
			Root:     20,
			Left:     10,
			Right:    30,
			Expected: RotationStats{Right: 1},
		},
		{
			Name:     "Right-Right",
			Keys:     []int64{10, 20, 30},
			Root:     20,
			Left:     10,
			Right:    30,
			Expected: RotationStats{Left: 1},
		},
		{
			Name:     "Left-Right",
			Keys:     []int64{30, 10, 20},
			Root:     20,
			Left:     10,
			Right:    30,
			Expected: RotationStats{LeftRight: 1},
		},
		{
			Name:     "Right-Left",
			Keys:     []int64{10, 30, 20},
			Root:     20,
			Left:     10,
			Right:    30,
			Expected: RotationStats{RightLeft: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewBalancedTree()
			for _, key := range tc.Keys {
				tree.Insert(key)
			}

			root := tree.root
			if root.key != tc.Root {
				t.Fatalf("root = %d; want %d", root.key, tc.Root)
			}
			if root.left == nil || root.left.key != tc.Left {
				t.Errorf("left child wrong; want %d", tc.Left)
			}
			if root.right == nil || root.right.key != tc.Right {
				t.Errorf("right child wrong; want %d", tc.Right)
			}
			if root.height != 2 || root.left.height != 1 || root.right.height != 1 {
				t.Errorf("heights = %d/%d/%d; want 2/1/1", root.height, root.left.height, root.right.height)
			}
			if got := tree.Rotations(); got != tc.Expected {
				t.Errorf("Rotations() = %+v; want %+v", got, tc.Expected)
			}
		})
	}
}

func TestBalancedTreeDuplicateDoesNotRotate(t *testing.T) {
	tree := NewBalancedTree()
	for _, key := range []int64{2, 1, 3} {
		tree.Insert(key)
	}
	before := tree.Rotations()
	tree.Insert(2)
	tree.Insert(3)

	if tree.Rotations() != before {
		t.Errorf("duplicate insert changed rotation stats: %+v", tree.Rotations())
	}
	if tree.Len() != 3 {
		t.Errorf("Len() = %d; want 3", tree.Len())
	}
}

// checkAVL walks the subtree and verifies ordering, stored heights and the
// balance bound. It returns the computed height.
func checkAVL(t *testing.T, n *node, lo, hi *int64) int {
	t.Helper()
	if n == nil {
		return 0
	}
	if lo != nil && n.key <= *lo {
		t.Fatalf("key %d violates lower bound %d", n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		t.Fatalf("key %d violates upper bound %d", n.key, *hi)
	}

	lh := checkAVL(t, n.left, lo, &n.key)
	rh := checkAVL(t, n.right, &n.key, hi)

	if d := lh - rh; d > 1 || d < -1 {
		t.Fatalf("node %d unbalanced: left %d right %d", n.key, lh, rh)
	}
	h := max(lh, rh) + 1
	if n.height != h {
		t.Fatalf("node %d stores height %d; computed %d", n.key, n.height, h)
	}
	return h
}

func TestBalancedTreeInvariantAfterEveryInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for round := 0; round < 20; round++ {
		tree := NewBalancedTree()
		inserted := map[int64]bool{}

		for i := 0; i < 300; i++ {
			key := int64(rng.Intn(500))
			tree.Insert(key)
			inserted[key] = true
			checkAVL(t, tree.root, nil, nil)
		}

		for key := int64(-1); key <= 500; key++ {
			if tree.Search(key) != inserted[key] {
				t.Fatalf("Search(%d) = %v; want %v", key, tree.Search(key), inserted[key])
			}
		}
		if tree.Len() != len(inserted) {
			t.Fatalf("Len() = %d; want %d", tree.Len(), len(inserted))
		}
	}
}

func TestUnbalancedTreeSearchMatchesInserted(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tree := NewUnbalancedTree()
	inserted := map[int64]bool{}

	for i := 0; i < 500; i++ {
		key := int64(rng.Intn(300) - 150)
		tree.Insert(key)
		inserted[key] = true
	}

	for key := int64(-160); key <= 160; key++ {
		if tree.Search(key) != inserted[key] {
			t.Fatalf("Search(%d) = %v; want %v", key, tree.Search(key), inserted[key])
		}
	}
	if !slices.IsSorted(tree.Keys()) {
		t.Error("in-order traversal is not ascending")
	}
}

func TestBalancedTreeHeightIsLogarithmic(t *testing.T) {
	tree := NewBalancedTree()
	for i := int64(1); i <= 1<<12; i++ {
		tree.Insert(i)
	}
	// AVL height is bounded by ~1.44 log2(n+2).
	if h := tree.Height(); h > 18 {
		t.Errorf("Height() = %d for 4096 ascending keys; want <= 18", h)
	}
}
