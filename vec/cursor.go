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

import "fmt"

// A Cursor is a position inside a Vector held as an index plus the vector's
// invalidation version, never as a pointer into the block. Reallocation,
// Clear, Release, Swap and storage-replacing assignment bump the version,
// after which every outstanding cursor reports invalid instead of reading
// relocated memory. In-place shifts keep cursors positional: a cursor before
// the mutation point still addresses the same element, one at or after it
// addresses whatever slid into that slot.
type Cursor[T any] struct {
	vec *Vector[T]
	idx int
	ver uint32
}

// Begin returns a cursor at position 0. On an empty vector the cursor is
// already invalid.
func (v *Vector[T]) Begin() *Cursor[T] {
	return &Cursor[T]{vec: v, ver: v.version}
}

// CursorAt returns a cursor at position i.
func (v *Vector[T]) CursorAt(i int) (*Cursor[T], error) {
	if i < 0 || i >= v.length {
		return nil, fmt.Errorf("%w: cursor at %d, length %d", ErrOutOfRange, i, v.length)
	}
	return &Cursor[T]{vec: v, idx: i, ver: v.version}, nil
}

// Valid reports whether the cursor still addresses a live element.
func (c *Cursor[T]) Valid() bool {
	return c.vec != nil && c.ver == c.vec.version && c.idx >= 0 && c.idx < c.vec.length
}

// Index returns the cursor's position.
func (c *Cursor[T]) Index() int { return c.idx }

// Next advances the cursor and reports whether it remains valid.
func (c *Cursor[T]) Next() bool {
	c.idx++
	return c.Valid()
}

// Prev retreats the cursor and reports whether it remains valid.
func (c *Cursor[T]) Prev() bool {
	c.idx--
	return c.Valid()
}

// Value returns the element under the cursor.
func (c *Cursor[T]) Value() (T, error) {
	if !c.Valid() {
		var zero T
		return zero, fmt.Errorf("%w: position %d", ErrCursorInvalid, c.idx)
	}
	return c.vec.data[c.idx], nil
}

// Set destroys the element under the cursor and stores e in its place.
func (c *Cursor[T]) Set(e T) error {
	if !c.Valid() {
		return fmt.Errorf("%w: position %d", ErrCursorInvalid, c.idx)
	}
	return c.vec.SetAt(c.idx, e)
}

// All returns a push-style sequence over (index, element) pairs, usable with
// a range-over-func loop. Mutating the vector mid-iteration follows the same
// rules as cursors.
func (v *Vector[T]) All() func(yield func(int, T) bool) {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
