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

// heapselectFunc selects rank k within s[lo:hi+1] by bounded-heap scanning.
// It works from whichever end of the range is closer to k, so the cost is
// O(n log min(k-lo+1, hi-k+1)).
func heapselectFunc[T any](s []T, lo, hi, k int, compare func(a, b T) int) {
	if k-lo <= hi-k {
		heapselectLow(s, lo, hi, k, compare)
	} else {
		heapselectHigh(s, lo, hi, k, compare)
	}
}

// heapselectLow keeps a max-heap of the k-lo+1 smallest candidates in
// s[lo:k+1]. Each remaining element that compares below the heap root
// displaces it. The surviving root is the k-th order statistic and is
// swapped into position k.
func heapselectLow[T any](s []T, lo, hi, k int, compare func(a, b T) int) {
	size := k - lo + 1
	for i := size/2 - 1; i >= 0; i-- {
		siftDown(s, lo, i, size, compare)
	}
	for i := k + 1; i <= hi; i++ {
		if compare(s[i], s[lo]) < 0 {
			s[lo], s[i] = s[i], s[lo]
			siftDown(s, lo, 0, size, compare)
		}
	}
	s[lo], s[k] = s[k], s[lo]
}

// heapselectHigh is the symmetric variant for ranks in the upper half: a
// min-heap of the hi-k+1 largest candidates in s[k:hi+1], rooted at s[k].
// Once every prefix element above the root has displaced it, the root is
// the k-th order statistic and already sits at position k.
func heapselectHigh[T any](s []T, lo, hi, k int, compare func(a, b T) int) {
	flipped := func(a, b T) int { return compare(b, a) }
	size := hi - k + 1
	for i := size/2 - 1; i >= 0; i-- {
		siftDown(s, k, i, size, flipped)
	}
	for i := lo; i < k; i++ {
		if compare(s[i], s[k]) > 0 {
			s[k], s[i] = s[i], s[k]
			siftDown(s, k, 0, size, flipped)
		}
	}
}

// siftDown restores the max-heap property (under the comparator) for the
// heap of the given size stored at s[base:base+size], starting from heap
// position i.
func siftDown[T any](s []T, base, i, size int, compare func(a, b T) int) {
	for {
		child := 2*i + 1
		if child >= size {
			return
		}
		if child+1 < size && compare(s[base+child+1], s[base+child]) > 0 {
			child++
		}
		if compare(s[base+child], s[base+i]) <= 0 {
			return
		}
		s[base+i], s[base+child] = s[base+child], s[base+i]
		i = child
	}
}
