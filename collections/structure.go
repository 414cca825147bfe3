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

// Package collections implements three ordered collections of int64 keys:
// a fixed-capacity sequence, an unbalanced binary search tree and an AVL
// tree. None of them is safe for concurrent use.
package collections

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStrategy = errors.New("unknown sort strategy")
	ErrUnknownKind     = errors.New("unknown structure kind")
)

// Structure is the capability every collection exposes to a caller that
// only inserts and searches.
type Structure interface {
	Insert(value int64)
	Search(value int64) bool
	Len() int
}

// Sortable is a Structure whose contents can be reordered in place.
type Sortable interface {
	Structure
	Sort(strategy SortStrategy)
	Snapshot() []int64
	// BinarySearch requires the contents to be sorted ascending.
	BinarySearch(value int64) bool
}

// Tree is a Structure with a measurable shape.
type Tree interface {
	Structure
	Height() int
	Keys() []int64
}

// SortStrategy selects the algorithm used by Sortable.Sort.
type SortStrategy int

const (
	ExchangeSort SortStrategy = iota
	MergeSort
)

var strategyNames = map[SortStrategy]string{
	ExchangeSort: "exchange",
	MergeSort:    "merge",
}

func (s SortStrategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SortStrategy(%d)", int(s))
}

func (s SortStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SortStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseSortStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// AllStrategies lists every strategy in declaration order.
func AllStrategies() []SortStrategy {
	return []SortStrategy{ExchangeSort, MergeSort}
}

// ParseSortStrategy accepts "exchange" (or "bubble") and "merge",
// case-insensitively.
func ParseSortStrategy(name string) (SortStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exchange", "bubble":
		return ExchangeSort, nil
	case "merge", "mergesort":
		return MergeSort, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Kind names one of the three collections.
type Kind int

const (
	KindSequence Kind = iota
	KindUnbalanced
	KindBalanced
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindUnbalanced:
		return "bst"
	case KindBalanced:
		return "avl"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// AllKinds lists every kind in declaration order.
func AllKinds() []Kind {
	return []Kind{KindSequence, KindUnbalanced, KindBalanced}
}

// New constructs an empty collection of the given kind. capacity only
// applies to KindSequence.
func New(kind Kind, capacity int) (Structure, error) {
	switch kind {
	case KindSequence:
		return NewBoundedSequence(capacity), nil
	case KindUnbalanced:
		return NewUnbalancedTree(), nil
	case KindBalanced:
		return NewBalancedTree(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

var (
	_ Sortable = (*BoundedSequence)(nil)
	_ Tree     = (*UnbalancedTree)(nil)
	_ Tree     = (*BalancedTree)(nil)
)
