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

// RotationStats counts the rebalancing cases applied by a BalancedTree.
type RotationStats struct {
	Left      int `yaml:"left"`       // right-right case
	Right     int `yaml:"right"`      // left-left case
	LeftRight int `yaml:"left_right"` // left rotation on left child, then right
	RightLeft int `yaml:"right_left"` // right rotation on right child, then left
}

// Total number of rebalancing cases applied.
func (s RotationStats) Total() int {
	return s.Left + s.Right + s.LeftRight + s.RightLeft
}

// BalancedTree is an AVL tree: after every insert, the heights of the two
// subtrees of any node differ by at most one.
type BalancedTree struct {
	root  *node
	size  int
	stats RotationStats
}

// NewBalancedTree returns an empty AVL tree.
func NewBalancedTree() *BalancedTree {
	return &BalancedTree{root: nil}
}

// Insert adds value and rebalances on the way back up. Duplicate keys are
// ignored.
func (tree *BalancedTree) Insert(value int64) {
	tree.root = tree.insertRecursive(tree.root, value)
}

func (tree *BalancedTree) insertRecursive(n *node, value int64) *node {
	if n == nil {
		tree.size++
		return newLeaf(value)
	}

	if value < n.key {
		n.left = tree.insertRecursive(n.left, value)
	} else if value > n.key {
		n.right = tree.insertRecursive(n.right, value)
	} else {
		return n
	}

	updateHeight(n)
	return tree.rebalance(n)
}

func (tree *BalancedTree) rebalance(n *node) *node {
	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) >= 0 {
			tree.stats.Right++
			return rotateRight(n)
		}
		tree.stats.LeftRight++
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) <= 0 {
			tree.stats.Left++
			return rotateLeft(n)
		}
		tree.stats.RightLeft++
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Search reports whether value is stored in the tree. O(log n).
func (tree *BalancedTree) Search(value int64) bool {
	return searchNode(tree.root, value)
}

// Height of the tree; 0 when empty.
func (tree *BalancedTree) Height() int {
	return height(tree.root)
}

// Len returns the number of distinct keys.
func (tree *BalancedTree) Len() int {
	return tree.size
}

// Keys returns the keys in ascending order.
func (tree *BalancedTree) Keys() []int64 {
	return collectKeys(tree.root, tree.size)
}

// Rotations returns the rebalancing counters accumulated since construction.
func (tree *BalancedTree) Rotations() RotationStats {
	return tree.stats
}
