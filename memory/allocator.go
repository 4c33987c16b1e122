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

package memory

import "errors"

// ErrAllocation is the sentinel wrapped by every allocation failure, whether
// the provider itself refuses the request or a container rejects a capacity
// that cannot be represented.
var ErrAllocation = errors.New("memory: allocation failed")

// Traits describes how an allocator instance travels with the container that
// holds it during copy, move and swap. The container branches on these
// capabilities instead of carrying ad hoc booleans of its own.
type Traits struct {
	// PropagateOnCopyConstruct selects the source's allocator for a fresh
	// copy of a container. When false the copy falls back to
	// DefaultAllocator.
	PropagateOnCopyConstruct bool

	// PropagateOnCopyAssign lets copy assignment adopt the source's
	// allocator, releasing the destination's storage first.
	PropagateOnCopyAssign bool

	// PropagateOnMoveAssign lets move assignment swap allocators so the
	// storage steal stays O(1) even when the two instances differ.
	PropagateOnMoveAssign bool

	// AlwaysEqual marks allocators whose instances all manage
	// interchangeable memory, e.g. the runtime heap.
	AlwaysEqual bool
}

// Allocator hands out blocks of slots for a single element type T.
//
// A returned block has len(block) == n. Its slots are allocated but logically
// unconstructed: they hold the zero value and the owner must treat them as
// uninitialized until it writes them. Blocks must be returned to the same
// allocator (or one that compares Equal to it) via Free.
//
// Allocation failure is reported as an error wrapping ErrAllocation, never a
// panic: containers translate it into their own failure channel without
// losing state.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Free(block []T)
	Traits() Traits
	Equal(other Allocator[T]) bool
}

// DefaultAllocator returns the allocator used anywhere one is required but
// none was supplied, and the instance copy construction falls back to when
// the source's allocator does not propagate.
//
// The returned allocator is safe to use from multiple goroutines.
func DefaultAllocator[T any]() Allocator[T] { return GoAllocator[T]{} }

// ZeroRange resets block[i:j] to the zero value of T, dropping any references
// the slots held so the garbage collector can reclaim them. It is the destroy
// step matching the construct-by-write step of Allocator.
func ZeroRange[T any](block []T, i, j int) {
	var zero T
	for ; i < j; i++ {
		block[i] = zero
	}
}
