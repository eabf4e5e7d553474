/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package selection implements partition-based order-statistics selection.
//
// Each selector rearranges a slice in place so that the element at rank k
// is the one a full sort would put there, all elements before it compare
// less than or equal to it, and all elements after it compare greater than
// or equal to it. Nothing beyond that boundary condition is guaranteed:
// the prefix and suffix are not sorted, and the relative order of equal
// elements is unspecified.
//
// Three algorithms share this contract:
//
//   - Quickselect: Hoare partitioning with a random pivot. Expected linear
//     time, quadratic worst case.
//   - Heapselect: a bounded heap over the cheaper end of the slice,
//     O(n log min(k+1, n-k)). Favorable when k is near either end.
//   - NthElement: introselect. Runs as quickselect with median-of-three
//     pivots and falls back to deterministic median-of-medians pivoting
//     when partitioning degenerates, giving worst-case linear time even
//     on adversarial input.
//
// Every algorithm comes in three forms: a natural-order form for ordered
// element types, a Func form taking a three-way comparator (the same shape
// slices.SortFunc uses), and a Key form taking an extraction function whose
// results are computed once per element and compared in place of the
// elements themselves.
//
// All selectors validate their arguments before touching the slice, so no
// partial mutation is observable on an error return. Calls hold no state
// between invocations; distinct slices may be selected on concurrently,
// while concurrent calls on the same slice are a data race.
package selection

import (
	"cmp"
	"fmt"
)

// Version is the release version of the library.
const Version = "1.0.0"

// Quickselect rearranges s in place so that s[k] is the k-th smallest
// element, every element of s[:k] is <= s[k], and every element of s[k+1:]
// is >= s[k]. It returns ErrIndexOutOfRange if k is not a valid index.
func Quickselect[T cmp.Ordered](s []T, k int) error {
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	quickselectFunc(s, 0, len(s)-1, k, cmp.Compare[T])
	return nil
}

// QuickselectFunc is Quickselect with a custom comparator. The comparator
// must return a negative number when a orders before b, zero when they are
// equivalent, and a positive number when a orders after b.
func QuickselectFunc[T any](s []T, k int, compare func(a, b T) int) error {
	if compare == nil {
		return fmt.Errorf("%w: nil compare function", ErrInvalidArgument)
	}
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	quickselectFunc(s, 0, len(s)-1, k, compare)
	return nil
}

// QuickselectKey is Quickselect ordered by key(element) instead of the
// element itself. The key function must be pure; it is invoked exactly once
// per element.
func QuickselectKey[T any, K cmp.Ordered](s []T, k int, key func(T) K) error {
	if key == nil {
		return fmt.Errorf("%w: nil key function", ErrInvalidArgument)
	}
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	selectKeyed(s, k, key, quickselectFunc[keyedItem[T, K]])
	return nil
}

// Heapselect achieves the same postcondition as Quickselect via a bounded
// heap: O(n log(k+1)) when k is in the lower half of s, with a symmetric
// O(n log(n-k)) variant over the suffix when k is in the upper half. It is
// the better choice when k is small relative to len(s).
func Heapselect[T cmp.Ordered](s []T, k int) error {
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	heapselectFunc(s, 0, len(s)-1, k, cmp.Compare[T])
	return nil
}

// HeapselectFunc is Heapselect with a custom comparator.
func HeapselectFunc[T any](s []T, k int, compare func(a, b T) int) error {
	if compare == nil {
		return fmt.Errorf("%w: nil compare function", ErrInvalidArgument)
	}
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	heapselectFunc(s, 0, len(s)-1, k, compare)
	return nil
}

// HeapselectKey is Heapselect ordered by key(element). The key function is
// invoked exactly once per element.
func HeapselectKey[T any, K cmp.Ordered](s []T, k int, key func(T) K) error {
	if key == nil {
		return fmt.Errorf("%w: nil key function", ErrInvalidArgument)
	}
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	selectKeyed(s, k, key, heapselectFunc[keyedItem[T, K]])
	return nil
}

// NthElement achieves the same postcondition as Quickselect with a
// worst-case linear bound. It partitions with median-of-three pivots under
// an explicit depth budget of twice the bit length of the range; if
// pathological pivots exhaust the budget, the remaining sub-range switches
// to deterministic median-of-medians pivoting. Correct and loop-free on
// sorted, reverse-sorted, all-duplicate, and single-element input.
func NthElement[T cmp.Ordered](s []T, k int) error {
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	nthElementFunc(s, 0, len(s)-1, k, cmp.Compare[T])
	return nil
}

// NthElementFunc is NthElement with a custom comparator.
func NthElementFunc[T any](s []T, k int, compare func(a, b T) int) error {
	if compare == nil {
		return fmt.Errorf("%w: nil compare function", ErrInvalidArgument)
	}
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	nthElementFunc(s, 0, len(s)-1, k, compare)
	return nil
}

// NthElementKey is NthElement ordered by key(element). The key function is
// invoked exactly once per element.
func NthElementKey[T any, K cmp.Ordered](s []T, k int, key func(T) K) error {
	if key == nil {
		return fmt.Errorf("%w: nil key function", ErrInvalidArgument)
	}
	if err := checkRank(len(s), k); err != nil {
		return err
	}
	selectKeyed(s, k, key, nthElementFunc[keyedItem[T, K]])
	return nil
}

// Median partitions s around its middle rank len(s)/2 using NthElement and
// returns the element there (the upper median for even lengths). It returns
// ErrIndexOutOfRange for an empty slice.
func Median[T cmp.Ordered](s []T) (T, error) {
	var zero T
	k := len(s) / 2
	if err := NthElement(s, k); err != nil {
		return zero, err
	}
	return s[k], nil
}

// MedianFunc is Median with a custom comparator.
func MedianFunc[T any](s []T, compare func(a, b T) int) (T, error) {
	var zero T
	k := len(s) / 2
	if err := NthElementFunc(s, k, compare); err != nil {
		return zero, err
	}
	return s[k], nil
}

// MedianKey is Median ordered by key(element).
func MedianKey[T any, K cmp.Ordered](s []T, key func(T) K) (T, error) {
	var zero T
	k := len(s) / 2
	if err := NthElementKey(s, k, key); err != nil {
		return zero, err
	}
	return s[k], nil
}

// checkRank rejects ranks outside [0, n-1] before any element is moved.
func checkRank(n, k int) error {
	if k < 0 || k >= n {
		return fmt.Errorf("%w: k=%d with length %d", ErrIndexOutOfRange, k, n)
	}
	return nil
}
