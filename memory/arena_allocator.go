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

// ArenaAllocator recycles freed blocks through per-size free lists instead of
// returning them to the runtime. Blocks are grouped into power-of-two size
// classes; a request is served from the matching class when one is available
// and by a fresh allocation otherwise.
//
// Two arenas never manage interchangeable memory, so Equal is instance
// identity and no propagation trait is set. Containers holding unequal
// arenas must fall back to element-wise copies and moves.
//
// ArenaAllocator is not safe for concurrent use.
type ArenaAllocator[T any] struct {
	free   map[int][][]T
	reused int
	live   int
}

func NewArenaAllocator[T any]() *ArenaAllocator[T] {
	return &ArenaAllocator[T]{free: make(map[int][][]T)}
}

func (a *ArenaAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative block size %d", ErrAllocation, n)
	}
	if n == 0 {
		return nil, nil
	}
	class := nextPowerOf2(n)
	if class < n {
		return nil, fmt.Errorf("%w: block size %d has no size class", ErrAllocation, n)
	}
	if blocks := a.free[class]; len(blocks) > 0 {
		blk := blocks[len(blocks)-1]
		a.free[class] = blocks[:len(blocks)-1]
		a.reused++
		a.live++
		return blk[:n], nil
	}
	a.live++
	return make([]T, n, class), nil
}

// Free returns a block to its size-class free list. The block must have come
// from this arena; its full capacity is recovered and zeroed so recycled
// slots never leak references from a previous owner.
func (a *ArenaAllocator[T]) Free(block []T) {
	if cap(block) == 0 {
		return
	}
	blk := block[:cap(block)]
	ZeroRange(blk, 0, len(blk))
	a.free[cap(blk)] = append(a.free[cap(blk)], blk)
	a.live--
}

func (a *ArenaAllocator[T]) Traits() Traits { return Traits{} }

func (a *ArenaAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*ArenaAllocator[T])
	return ok && o == a
}

// Reset discards every free list, handing the retained slabs back to the
// garbage collector. Blocks still in use are unaffected.
func (a *ArenaAllocator[T]) Reset() {
	a.free = make(map[int][][]T)
}

// Reused reports how many allocations were served from a free list.
func (a *ArenaAllocator[T]) Reused() int { return a.reused }

// Live reports how many blocks are currently handed out.
func (a *ArenaAllocator[T]) Live() int { return a.live }

var _ Allocator[int] = (*ArenaAllocator[int])(nil)
