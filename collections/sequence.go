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

// BoundedSequence is a fixed-capacity, append-only array of integers.
// Elements at [0, Len()) are the logical contents.
type BoundedSequence struct {
	data  []int64
	count int
}

// NewBoundedSequence allocates a sequence that holds at most capacity values.
// A negative capacity yields a sequence that accepts nothing.
func NewBoundedSequence(capacity int) *BoundedSequence {
	if capacity < 0 {
		capacity = 0
	}
	return &BoundedSequence{data: make([]int64, capacity)}
}

// Append stores value after the last element. Once the sequence is full the
// call is a silent no-op; overflow is never reported.
func (s *BoundedSequence) Append(value int64) {
	if s.count < len(s.data) {
		s.data[s.count] = value
		s.count++
	}
}

// Insert is Append under the Structure interface.
func (s *BoundedSequence) Insert(value int64) {
	s.Append(value)
}

func (s *BoundedSequence) Len() int {
	return s.count
}

func (s *BoundedSequence) Cap() int {
	return len(s.data)
}

// Snapshot returns a copy of the logical contents. Mutating the copy never
// affects the sequence.
func (s *BoundedSequence) Snapshot() []int64 {
	out := make([]int64, s.count)
	copy(out, s.data[:s.count])
	return out
}

// Search is LinearSearch: the sequence makes no claim about being sorted.
func (s *BoundedSequence) Search(value int64) bool {
	return s.LinearSearch(value)
}

// LinearSearch scans the contents in order. O(n).
func (s *BoundedSequence) LinearSearch(value int64) bool {
	for i := 0; i < s.count; i++ {
		if s.data[i] == value {
			return true
		}
	}
	return false
}

// BinarySearch looks for value in O(log n). The contents must already be
// sorted ascending; this is not checked and unsorted input gives undefined
// results.
func (s *BoundedSequence) BinarySearch(value int64) bool {
	lo, hi := 0, s.count-1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		if s.data[mid] == value {
			return true
		}
		if s.data[mid] < value {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return false
}

// IsSorted reports whether the contents are in ascending order.
func (s *BoundedSequence) IsSorted() bool {
	for i := 1; i < s.count; i++ {
		if s.data[i-1] > s.data[i] {
			return false
		}
	}
	return true
}

// Sort orders the contents ascending using the given strategy. Unknown
// strategies leave the sequence untouched.
func (s *BoundedSequence) Sort(strategy SortStrategy) {
	switch strategy {
	case ExchangeSort:
		s.ExchangeSort()
	case MergeSort:
		s.MergeSort()
	}
}

// ExchangeSort is a bubble sort over the contents. O(n^2).
func (s *BoundedSequence) ExchangeSort() {
	n := s.count
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if s.data[j] > s.data[j+1] {
				s.data[j], s.data[j+1] = s.data[j+1], s.data[j]
			}
		}
	}
}

// MergeSort sorts the contents in O(n log n). The merge is stable.
func (s *BoundedSequence) MergeSort() {
	mergeSort(s.data[:s.count])
}

// mergeSort splits arr into halves copied into buffers owned by this call,
// sorts them recursively and merges them back into arr.
func mergeSort(arr []int64) {
	n := len(arr)
	if n < 2 {
		return
	}

	mid := n / 2
	left := make([]int64, mid)
	right := make([]int64, n-mid)
	copy(left, arr[:mid])
	copy(right, arr[mid:])

	mergeSort(left)
	mergeSort(right)

	merge(arr, left, right)
}

// merge combines two sorted runs into dst. On ties the left run wins.
func merge(dst, left, right []int64) {
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}

	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
