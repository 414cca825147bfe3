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

// UnbalancedTree is a plain binary search tree. It never restructures, so an
// ascending insertion order degrades it into a chain.
type UnbalancedTree struct {
	root *node
	size int
}

// NewUnbalancedTree returns an empty tree.
func NewUnbalancedTree() *UnbalancedTree {
	return &UnbalancedTree{root: nil}
}

// Insert attaches value as a new leaf. Inserting a key that is already
// present leaves the tree unchanged.
func (t *UnbalancedTree) Insert(value int64) {
	t.root = t.insertNode(t.root, value)
}

func (t *UnbalancedTree) insertNode(current *node, value int64) *node {
	if current == nil {
		t.size++
		return newLeaf(value)
	}

	if value < current.key {
		current.left = t.insertNode(current.left, value)
	} else if value > current.key {
		current.right = t.insertNode(current.right, value)
	} else {
		return current
	}

	// Height is tracked for reporting only.
	updateHeight(current)
	return current
}

// Search reports whether value is stored in the tree. O(h).
func (t *UnbalancedTree) Search(value int64) bool {
	return searchNode(t.root, value)
}

// Height of the tree; 0 when empty.
func (t *UnbalancedTree) Height() int {
	return height(t.root)
}

// Len returns the number of distinct keys.
func (t *UnbalancedTree) Len() int {
	return t.size
}

// Keys returns the keys in ascending order.
func (t *UnbalancedTree) Keys() []int64 {
	return collectKeys(t.root, t.size)
}
