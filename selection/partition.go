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

import "math/rand"

// pivotFn picks a pivot index in [lo, hi] for the next partition step.
type pivotFn[T any] func(s []T, lo, hi int, compare func(a, b T) int) int

// randomPivot draws a uniform index from [lo, hi]. Used by quickselect,
// mirroring the original random-pivot heuristic.
func randomPivot[T any](s []T, lo, hi int, _ func(a, b T) int) int {
	return lo + rand.Intn(hi-lo+1)
}

// medianOfThree returns whichever of lo, the midpoint, and hi holds the
// median of the three values. Used by introselect to keep expected
// recursion depth logarithmic on sorted and reverse-sorted input.
func medianOfThree[T any](s []T, lo, hi int, compare func(a, b T) int) int {
	a, b, c := lo, int(uint(lo+hi)>>1), hi
	if compare(s[b], s[a]) < 0 {
		a, b = b, a
	}
	if compare(s[c], s[b]) < 0 {
		b = c
		if compare(s[b], s[a]) < 0 {
			b = a
		}
	}
	return b
}

// partitionFunc moves the pivot at pivotIdx to the low end of [lo, hi] and
// runs a Hoare two-pointer scan, returning the pivot's final index j with
// every element of s[lo:j] <= s[j] and every element of s[j+1:hi+1] >= s[j].
// Both scans stop on elements equal to the pivot, so duplicate-heavy input
// advances every pass and cannot stall. Requires lo < hi.
func partitionFunc[T any](s []T, lo, hi, pivotIdx int, compare func(a, b T) int) int {
	s[lo], s[pivotIdx] = s[pivotIdx], s[lo]
	i := lo
	j := hi + 1
	v := s[lo]
	for {
		for compare(s[i+1], v) < 0 {
			i++
			if i == hi {
				break
			}
		}
		i++
		for compare(v, s[j-1]) < 0 {
			j--
			if j == lo {
				break
			}
		}
		j--
		if i >= j {
			break
		}
		s[i], s[j] = s[j], s[i]
	}
	s[lo], s[j] = s[j], s[lo]
	return j
}

// selectLoop narrows [lo, hi] around rank k, partitioning with the given
// pivot heuristic and recursing (iteratively) only into the side containing
// k. Terminates when the pivot lands on k or the range collapses to it.
func selectLoop[T any](s []T, lo, hi, k int, compare func(a, b T) int, pivot pivotFn[T]) {
	for hi > lo {
		j := partitionFunc(s, lo, hi, pivot(s, lo, hi, compare), compare)
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
