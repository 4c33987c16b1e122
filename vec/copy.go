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

import (
	"fmt"

	"github.com/arenalab/vec/memory"
)

// Clone deep-copies the vector. The copy's allocator is the source's when
// its PropagateOnCopyConstruct trait is set and memory.DefaultAllocator
// otherwise. Capacity of the copy is exactly Len.
//
// On any failure the partially built copy is unwound and the source is
// untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	mem := v.alloc()
	if !mem.Traits().PropagateOnCopyConstruct {
		mem = memory.DefaultAllocator[T]()
	}
	out := &Vector[T]{mem: mem, clone: v.clone, drop: v.drop}
	blk, err := cloneBlock(mem, v.data[:v.length], v.clone, v.drop)
	if err != nil {
		return nil, err
	}
	out.data = blk
	out.length = v.length
	return out, nil
}

// CopyFrom replaces this vector's contents with a deep copy of src.
//
// When src's allocator has PropagateOnCopyAssign set and the two allocators
// are unequal, this vector's storage is released entirely and rebuilt with
// src's allocator. Otherwise existing capacity is reused: the overlapping
// prefix is overwritten element by element, then the remaining tail is
// either copy-constructed (src longer) or destroyed (src shorter).
//
// This vector's clone hook performs the copies, since it will own them.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	smem := src.alloc()
	if smem.Traits().PropagateOnCopyAssign && !v.alloc().Equal(smem) {
		blk, err := cloneBlock(smem, src.data[:src.length], v.clone, v.drop)
		if err != nil {
			return err
		}
		v.Release()
		v.mem = smem
		v.data = blk
		v.length = src.length
		v.version++
		return nil
	}

	n := src.length
	if len(v.data) < n {
		// not enough room: build the copy aside, then swap it in, so a
		// failed clone leaves this vector unchanged
		blk, err := cloneBlock(v.alloc(), src.data[:n], v.clone, v.drop)
		if err != nil {
			return err
		}
		v.destroy(0, v.length)
		if v.data != nil {
			v.mem.Free(v.data)
		}
		v.data = blk
		v.length = n
		v.version++
		return nil
	}

	m := min(v.length, n)
	for i := 0; i < m; i++ {
		c, err := v.cloneElem(src.data[i])
		if err != nil {
			return fmt.Errorf("vec: copy element %d: %w", i, err)
		}
		if v.drop != nil {
			v.drop(v.data[i])
		}
		v.data[i] = c
	}
	if n > v.length {
		for i := v.length; i < n; i++ {
			c, err := v.cloneElem(src.data[i])
			if err != nil {
				v.destroy(v.length, i)
				return fmt.Errorf("vec: copy element %d: %w", i, err)
			}
			v.data[i] = c
		}
	} else {
		v.destroy(n, v.length)
	}
	v.length = n
	return nil
}

// MoveFrom transfers src's contents into this vector.
//
// When the two allocators compare equal, or this vector's allocator has the
// AlwaysEqual trait, the transfer is a pure member swap; this vector's
// previous contents end up in src. With PropagateOnMoveAssign the allocators
// swap along with the members, keeping the steal O(1). Otherwise the
// allocators differ and cannot travel: elements are moved one by one into
// this vector's own storage and src is left empty.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	vmem, smem := v.alloc(), src.alloc()
	tr := vmem.Traits()
	if tr.AlwaysEqual || vmem.Equal(smem) || tr.PropagateOnMoveAssign {
		v.Swap(src)
		return nil
	}

	n := src.length
	if len(v.data) < n {
		if err := v.Reserve(n); err != nil {
			return err
		}
	}
	m := min(v.length, n)
	if v.drop != nil {
		for i := 0; i < m; i++ {
			v.drop(v.data[i])
		}
	}
	copy(v.data[:n], src.data[:n])
	if n < v.length {
		v.destroy(n, v.length)
	}
	v.length = n

	// src gave its elements away; zero without dropping
	memory.ZeroRange(src.data, 0, src.length)
	src.length = 0
	src.version++
	return nil
}

// Swap exchanges the two vectors' blocks, live counts, allocators and hooks.
// No element is touched. Both vectors' cursors are invalidated.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data, other.data = other.data, v.data
	v.length, other.length = other.length, v.length
	v.mem, other.mem = other.mem, v.mem
	v.clone, other.clone = other.clone, v.clone
	v.drop, other.drop = other.drop, v.drop
	v.version++
	other.version++
}
