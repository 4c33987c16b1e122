// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same elements in the same order.
// A live-count mismatch short-circuits before any element is compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(a, b T) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: elements are compared up to the
// shorter length, a strict prefix orders before the longer sequence, and
// ties on every compared element fall back to comparing live counts.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *Vector[T], cmp func(a, b T) int) int {
	m := min(a.length, b.length)
	for i := 0; i < m; i++ {
		if c := cmp(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.length < b.length:
		return -1
	case a.length > b.length:
		return +1
	}
	return 0
}
