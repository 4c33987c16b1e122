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

import "fmt"

// GoAllocator allocates blocks straight from the Go runtime heap. All
// instances are interchangeable, so every propagation trait is set and Equal
// holds between any two of them.
type GoAllocator[T any] struct{}

func NewGoAllocator[T any]() GoAllocator[T] { return GoAllocator[T]{} }

func (GoAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative block size %d", ErrAllocation, n)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

func (GoAllocator[T]) Free(block []T) {}

func (GoAllocator[T]) Traits() Traits {
	return Traits{
		PropagateOnCopyConstruct: true,
		PropagateOnCopyAssign:    true,
		PropagateOnMoveAssign:    true,
		AlwaysEqual:              true,
	}
}

func (GoAllocator[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(GoAllocator[T])
	return ok
}

var _ Allocator[int] = GoAllocator[int]{}
