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

// LimitAllocator wraps another allocator and fails any request that would
// push the number of outstanding slots past a fixed budget. It exists to
// exercise allocation-failure paths deterministically: containers built on a
// LimitAllocator must surface the error and keep their state intact.
type LimitAllocator[T any] struct {
	mem   Allocator[T]
	limit int
	cur   int
}

// NewLimitAllocator wraps mem with a budget of limit slots.
func NewLimitAllocator[T any](mem Allocator[T], limit int) *LimitAllocator[T] {
	return &LimitAllocator[T]{mem: mem, limit: limit}
}

func (a *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n > a.limit-a.cur {
		return nil, fmt.Errorf("%w: block of %d slots exceeds budget (%d of %d in use)",
			ErrAllocation, n, a.cur, a.limit)
	}
	blk, err := a.mem.Allocate(n)
	if err != nil {
		return nil, err
	}
	a.cur += n
	return blk, nil
}

func (a *LimitAllocator[T]) Free(block []T) {
	a.cur -= len(block)
	a.mem.Free(block)
}

// Traits keeps the wrapped propagation capabilities but drops AlwaysEqual:
// two limiters do not share a budget, so their memory is not interchangeable.
func (a *LimitAllocator[T]) Traits() Traits {
	tr := a.mem.Traits()
	tr.AlwaysEqual = false
	return tr
}

func (a *LimitAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*LimitAllocator[T])
	return ok && o == a
}

var _ Allocator[int] = (*LimitAllocator[int])(nil)
