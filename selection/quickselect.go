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

// quickselectFunc selects rank k within s[lo:hi+1] under the comparator.
// Random pivots give expected linear time; the worst case is quadratic and
// accepted here, with nthElementFunc covering callers that need a bound.
func quickselectFunc[T any](s []T, lo, hi, k int, compare func(a, b T) int) {
	selectLoop(s, lo, hi, k, compare, randomPivot[T])
}
