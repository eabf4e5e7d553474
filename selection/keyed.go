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

import "cmp"

// keyedItem pairs an element with its extracted key so the key travels
// with the element through every swap.
type keyedItem[T any, K cmp.Ordered] struct {
	item T
	key  K
}

// selectKeyed runs the given selection core over key-ordered pairs and
// writes the rearranged elements back into s. The key function is invoked
// exactly once per element; comparisons during selection touch only the
// cached keys.
func selectKeyed[T any, K cmp.Ordered](s []T, k int, key func(T) K,
	sel func(ks []keyedItem[T, K], lo, hi, k int, compare func(a, b keyedItem[T, K]) int)) {
	ks := make([]keyedItem[T, K], len(s))
	for i, item := range s {
		ks[i] = keyedItem[T, K]{item: item, key: key(item)}
	}
	sel(ks, 0, len(ks)-1, k, func(a, b keyedItem[T, K]) int {
		return cmp.Compare(a.key, b.key)
	})
	for i := range ks {
		s[i] = ks[i].item
	}
}
