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

package selection

import "math/bits"

// nthElementFunc selects rank k within s[lo:hi+1] with a worst-case linear
// bound: quickselect with median-of-three pivots under an explicit depth
// budget of 2*bits.Len(n). A run of partition steps that keeps failing to
// shrink the range (adversarial or heavily duplicated input) exhausts the
// budget, and the surviving sub-range switches to deterministic
// median-of-medians pivots, which discard a constant fraction per step.
func nthElementFunc[T any](s []T, lo, hi, k int, compare func(a, b T) int) {
	introselectBudget(s, lo, hi, k, compare, 2*bits.Len(uint(hi-lo+1)))
}

// introselectBudget is the introselect loop with an explicit partition-step
// budget, separated out so the fallback path is testable on its own.
func introselectBudget[T any](s []T, lo, hi, k int, compare func(a, b T) int, budget int) {
	for hi > lo {
		if budget == 0 {
			selectLoop(s, lo, hi, k, compare, medianOfMedians[T])
			return
		}
		budget--
		j := partitionFunc(s, lo, hi, medianOfThree(s, lo, hi, compare), compare)
		if j == k {
			return
		}
		if j > k {
			hi = j - 1
		} else {
			lo = j + 1
		}
	}
}

// medianOfMedians returns the index of a pivot guaranteed to sit between
// the 30th and 70th percentiles of s[lo:hi+1]: the medians of groups of
// five are gathered at the front of the range and their true median is
// selected with this same heuristic. Partitioning on the result discards
// at least three tenths of the range, so a selection loop driven by it is
// linear in the range length.
func medianOfMedians[T any](s []T, lo, hi int, compare func(a, b T) int) int {
	if hi-lo+1 <= 5 {
		return medianOfGroup(s, lo, hi, compare)
	}
	num := 0
	for g := lo; g <= hi; g += 5 {
		ghi := g + 4
		if ghi > hi {
			ghi = hi
		}
		m := medianOfGroup(s, g, ghi, compare)
		s[lo+num], s[m] = s[m], s[lo+num]
		num++
	}
	mid := lo + (num-1)/2
	selectLoop(s, lo, lo+num-1, mid, compare, medianOfMedians[T])
	return mid
}

// medianOfGroup insertion-sorts the short range s[lo:hi+1] and returns the
// index of its median.
func medianOfGroup[T any](s []T, lo, hi int, compare func(a, b T) int) int {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && compare(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return int(uint(lo+hi) >> 1)
}
