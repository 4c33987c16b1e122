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
	"math"

	"github.com/JohnCGriffin/overflow"

	"github.com/arenalab/vec/internal/debug"
	"github.com/arenalab/vec/memory"
)

// MaxLen is the largest capacity a Vector may hold. Any operation that would
// grow past it fails with ErrAllocation instead of wrapping.
const MaxLen = math.MaxInt

// A Vector is a growable sequence of T held in one contiguous block obtained
// from a memory.Allocator. The block is exclusively owned: slots [0, Len())
// hold live elements, slots [Len(), Cap()) are allocated but logically
// unconstructed and are never read or handed out.
//
// The zero value is an empty vector using memory.DefaultAllocator.
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data   []T // len(data) == capacity; nil iff capacity == 0
	length int
	mem    memory.Allocator[T]

	clone func(T) (T, error)
	drop  func(T)

	// bumped by every operation that reallocates, clears or reassigns the
	// block; cursors check it before dereferencing.
	version uint32
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithClone installs a deep-copy hook used whenever the vector duplicates
// elements it does not own yet (Clone, CopyFrom, FromSlice, repeat fills).
// The hook may fail; every path that runs it unwinds partially built storage
// before returning the error.
func WithClone[T any](fn func(T) (T, error)) Option[T] {
	return func(v *Vector[T]) { v.clone = fn }
}

// WithDrop installs a destructor hook run on elements the vector destroys
// (Clear, Release, RemoveRange, shrinking resizes, overwritten slots).
// Elements returned to the caller by Remove/Pop are not dropped.
func WithDrop[T any](fn func(T)) Option[T] {
	return func(v *Vector[T]) { v.drop = fn }
}

// New returns an empty vector. No allocation is performed until elements or
// capacity are requested. A nil allocator selects memory.DefaultAllocator.
func New[T any](mem memory.Allocator[T], opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{mem: mem}
	for _, opt := range opts {
		opt(v)
	}
	if v.mem == nil {
		v.mem = memory.DefaultAllocator[T]()
	}
	return v
}

// NewWithCapacity returns an empty vector with room for n elements.
func NewWithCapacity[T any](mem memory.Allocator[T], n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(mem, opts...)
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewRepeat returns a vector of n copies of fill.
func NewRepeat[T any](mem memory.Allocator[T], n int, fill T, opts ...Option[T]) (*Vector[T], error) {
	v := New(mem, opts...)
	if err := v.ResizeTo(n, fill); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// FromSlice returns a vector holding a copy of s, cloned element by element
// when a clone hook is configured.
func FromSlice[T any](mem memory.Allocator[T], s []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(mem, opts...)
	blk, err := cloneBlock(v.mem, s, v.clone, v.drop)
	if err != nil {
		return nil, err
	}
	v.data = blk
	v.length = len(s)
	return v, nil
}

// Of returns a vector of the given values using the default allocator.
func Of[T any](vals ...T) *Vector[T] {
	v, err := FromSlice[T](nil, vals)
	if err != nil {
		// the default allocator does not refuse and no clone hook is set
		panic(err)
	}
	return v
}

// Collect drains a push-style sequence into a fresh vector.
func Collect[T any](mem memory.Allocator[T], seq func(yield func(T) bool), opts ...Option[T]) (*Vector[T], error) {
	v := New(mem, opts...)
	var err error
	seq(func(e T) bool {
		err = v.PushBack(e)
		return err == nil
	})
	if err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.data) }

func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// Allocator returns the provider owning this vector's storage.
func (v *Vector[T]) Allocator() memory.Allocator[T] { return v.alloc() }

// Values returns a view of the live elements. The view aliases the vector's
// storage and is invalidated by the same operations that invalidate cursors.
func (v *Vector[T]) Values() []T { return v.data[:v.length:v.length] }

// Get returns the element at i without bounds checking beyond the block
// itself. Use At for a checked access.
func (v *Vector[T]) Get(i int) T {
	debug.Assert(i >= 0 && i < v.length, "Get: position out of range")
	return v.data[i]
}

// Set overwrites the element at i without bounds checking. The previous
// value is not dropped; use SetAt for checked, destroying assignment.
func (v *Vector[T]) Set(i int, e T) {
	debug.Assert(i >= 0 && i < v.length, "Set: position out of range")
	v.data[i] = e
}

// At returns the element at i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	return v.data[i], nil
}

// SetAt destroys the element at i and stores e in its place.
func (v *Vector[T]) SetAt(i int, e T) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	if v.drop != nil {
		v.drop(v.data[i])
	}
	v.data[i] = e
	return nil
}

// Front returns the first live element.
func (v *Vector[T]) Front() (T, error) { return v.At(0) }

// Back returns the last live element.
func (v *Vector[T]) Back() (T, error) { return v.At(v.length - 1) }

// Reserve guarantees capacity for at least n elements without changing the
// live elements or their order. Reserving below Len is rejected, preventing
// silent data loss; reserving the current capacity is a no-op and performs no
// allocator call. Any other request migrates the live elements into a block
// of exactly n slots.
//
// On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: reserve %d", ErrOutOfRange, n)
	case n < v.length:
		return fmt.Errorf("%w: reserve %d below live count %d", ErrOutOfRange, n, v.length)
	case n == len(v.data):
		return nil
	}
	return v.migrate(n)
}

// Resize grows or shrinks the live range to n elements, filling new slots
// with the zero value.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeTo(n, zero)
}

// ResizeTo grows or shrinks the live range to n elements, filling new slots
// with copies of fill. Shrinking destroys the surplus tail but keeps
// capacity; use Trim to release it.
func (v *Vector[T]) ResizeTo(n int, fill T) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrOutOfRange, n)
	}
	if n > len(v.data) {
		if err := v.Reserve(n); err != nil {
			return err
		}
	}
	if n >= v.length {
		for i := v.length; i < n; i++ {
			e, err := v.cloneElem(fill)
			if err != nil {
				v.destroy(v.length, i)
				return fmt.Errorf("vec: fill element %d: %w", i, err)
			}
			v.data[i] = e
		}
	} else {
		v.destroy(n, v.length)
	}
	v.length = n
	return nil
}

// Trim releases unused capacity, migrating the live elements into a block of
// exactly Len slots.
func (v *Vector[T]) Trim() error {
	if v.length == len(v.data) {
		return nil
	}
	return v.migrate(v.length)
}

// Clear destroys every live element but keeps the block. All cursors are
// invalidated.
func (v *Vector[T]) Clear() {
	v.destroy(0, v.length)
	v.length = 0
	v.version++
}

// Release destroys every live element and returns the block to the
// allocator, leaving the vector empty and unallocated.
func (v *Vector[T]) Release() {
	v.destroy(0, v.length)
	if v.data != nil {
		v.alloc().Free(v.data)
		v.data = nil
	}
	v.length = 0
	v.version++
}

func (v *Vector[T]) alloc() memory.Allocator[T] {
	if v.mem == nil {
		v.mem = memory.DefaultAllocator[T]()
	}
	return v.mem
}

func (v *Vector[T]) cloneElem(e T) (T, error) {
	if v.clone == nil {
		return e, nil
	}
	return v.clone(e)
}

// destroy runs the drop hook over [i, j) and zeroes the slots so they hold
// no references while logically unconstructed.
func (v *Vector[T]) destroy(i, j int) {
	if v.drop != nil {
		for k := i; k < j; k++ {
			v.drop(v.data[k])
		}
	}
	memory.ZeroRange(v.data, i, j)
}

// grownCapacity applies the growth policy: max(1, 2*Len), clamped to MaxLen,
// failing once the live count has reached the limit.
func (v *Vector[T]) grownCapacity() (int, error) {
	if v.length >= MaxLen {
		return 0, fmt.Errorf("%w: live count %d at capacity limit", ErrAllocation, v.length)
	}
	n, ok := overflow.Mul(v.length, 2)
	if !ok || n > MaxLen {
		n = MaxLen
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}

// ensureFree guarantees one unconstructed trailing slot, growing when the
// block is full.
func (v *Vector[T]) ensureFree() error {
	if v.length < len(v.data) {
		return nil
	}
	n, err := v.grownCapacity()
	if err != nil {
		return err
	}
	return v.migrate(n)
}

// migrate relocates the live elements into a fresh block of n slots and
// releases the old one. Relocation is a plain slot-for-slot transfer and
// cannot fail, so the only failure point is the allocation itself, before
// the vector is touched: the strong guarantee holds. All cursors are
// invalidated.
func (v *Vector[T]) migrate(n int) error {
	debug.Assert(n >= v.length, "migrate: below live count")
	mem := v.alloc()
	var blk []T
	if n > 0 {
		var err error
		blk, err = mem.Allocate(n)
		if err != nil {
			return fmt.Errorf("vec: reserve %d slots: %w", n, err)
		}
	}
	copy(blk, v.data[:v.length])
	if v.data != nil {
		// vacated slots are stale copies now owned by the new block
		memory.ZeroRange(v.data, 0, v.length)
		mem.Free(v.data)
	}
	v.data = blk
	v.version++
	return nil
}

// cloneBlock allocates a block of exactly len(src) slots and deep-copies src
// into it. On any clone failure the already-copied prefix is destroyed and
// the block freed before the error is returned, so the caller's state is
// untouched.
func cloneBlock[T any](mem memory.Allocator[T], src []T, clone func(T) (T, error), drop func(T)) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	blk, err := mem.Allocate(len(src))
	if err != nil {
		return nil, fmt.Errorf("vec: copy %d elements: %w", len(src), err)
	}
	for i, e := range src {
		c := e
		if clone != nil {
			if c, err = clone(e); err != nil {
				if drop != nil {
					for k := 0; k < i; k++ {
						drop(blk[k])
					}
				}
				memory.ZeroRange(blk, 0, i)
				mem.Free(blk)
				return nil, fmt.Errorf("vec: copy element %d: %w", i, err)
			}
		}
		blk[i] = c
	}
	return blk, nil
}
