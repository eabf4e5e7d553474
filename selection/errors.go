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

import "errors"

// Sentinel errors for precondition violations. Both are detected before any
// mutation, so a slice passed to a failing call is returned untouched.
var (
	// ErrInvalidArgument indicates a nil comparator or nil key function.
	ErrInvalidArgument = errors.New("selection: invalid argument")

	// ErrIndexOutOfRange indicates a rank outside [0, len(s)-1], including
	// any rank against an empty slice.
	ErrIndexOutOfRange = errors.New("selection: index out of range")
)
