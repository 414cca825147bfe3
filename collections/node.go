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

// node is a binary search tree node shared by both tree variants.
// A node is owned by exactly one parent or by the tree's root slot.
type node struct {
	key    int64
	height int // 1 for a leaf
	left   *node
	right  *node
}

func newLeaf(key int64) *node {
	return &node{key: key, height: 1}
}

// height of an absent node is 0.
func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight(n *node) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateRight makes the left child the new subtree root. The pivot's former
// right child becomes the old root's left child. Heights are recomputed
// bottom-up: the old root first, then the pivot.
func rotateRight(n *node) *node {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rotateLeft mirrors rotateRight.
func rotateLeft(n *node) *node {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// searchNode descends from n comparing keys until it hits a match or a
// missing child.
func searchNode(n *node, key int64) bool {
	if n == nil {
		return false
	}

	if key < n.key {
		return searchNode(n.left, key)
	} else if key > n.key {
		return searchNode(n.right, key)
	}
	return true
}

func inOrder(n *node, visit func(*node)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n)
	inOrder(n.right, visit)
}

func collectKeys(root *node, size int) []int64 {
	keys := make([]int64, 0, size)
	inOrder(root, func(n *node) {
		keys = append(keys, n.key)
	})
	return keys
}
