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

// Insert places e at position i, sliding [i, Len) one slot right. Positions
// are indices, so they survive the reallocation a full block triggers.
// Valid positions are [0, Len]; i == Len appends.
func (v *Vector[T]) Insert(i int, e T) error {
	if i < 0 || i > v.length {
		return fmt.Errorf("%w: insert at %d, length %d", ErrOutOfRange, i, v.length)
	}
	if err := v.ensureFree(); err != nil {
		return err
	}
	shiftRight(v.data, i, v.length, 1)
	v.data[i] = e
	v.length++
	return nil
}

// Remove takes the element at position i out of the vector and returns it,
// sliding [i+1, Len) one slot left. The removed element is not dropped; the
// caller owns it again.
func (v *Vector[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, fmt.Errorf("%w: remove at %d, length %d", ErrOutOfRange, i, v.length)
	}
	out := v.data[i]
	if i < v.length-1 {
		shiftLeft(v.data, i+1, v.length, 1)
	}
	memory.ZeroRange(v.data, v.length-1, v.length)
	v.length--
	return out, nil
}

// RemoveRange destroys the elements in [i, j), sliding the tail left to
// close the gap. The bounds must satisfy 0 <= i <= j <= Len; anything else
// is ErrInvalidRange and nothing is shifted or destroyed.
func (v *Vector[T]) RemoveRange(i, j int) error {
	if i < 0 || j < i || j > v.length {
		return fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, i, j, v.length)
	}
	k := j - i
	if k == 0 {
		return nil
	}
	v.destroy(i, j)
	if j < v.length {
		shiftLeft(v.data, j, v.length, k)
	}
	memory.ZeroRange(v.data, v.length-k, v.length)
	v.length -= k
	return nil
}

// InsertUnstable places e at position i in O(1) data movement: e is
// constructed at the end and swapped with the element at i, which is
// relocated to the end. Relative order is not preserved.
func (v *Vector[T]) InsertUnstable(i int, e T) error {
	if i < 0 || i > v.length {
		return fmt.Errorf("%w: insert at %d, length %d", ErrOutOfRange, i, v.length)
	}
	if err := v.ensureFree(); err != nil {
		return err
	}
	v.data[v.length] = e
	v.length++
	if last := v.length - 1; i != last {
		v.data[i], v.data[last] = v.data[last], v.data[i]
	}
	return nil
}

// RemoveUnstable takes the element at position i out in O(1) data movement
// by swapping it with the last element first. Relative order is not
// preserved.
func (v *Vector[T]) RemoveUnstable(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, fmt.Errorf("%w: remove at %d, length %d", ErrOutOfRange, i, v.length)
	}
	last := v.length - 1
	v.data[i], v.data[last] = v.data[last], v.data[i]
	out := v.data[last]
	memory.ZeroRange(v.data, last, last+1)
	v.length--
	return out, nil
}

// PushBack appends e, growing the block when it is full.
func (v *Vector[T]) PushBack(e T) error {
	if err := v.ensureFree(); err != nil {
		return err
	}
	v.data[v.length] = e
	v.length++
	return nil
}

// PushFront inserts e at position 0.
func (v *Vector[T]) PushFront(e T) error { return v.Insert(0, e) }

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop from empty vector", ErrOutOfRange)
	}
	return v.Remove(v.length - 1)
}

// PopFront removes and returns the first element.
func (v *Vector[T]) PopFront() (T, error) {
	if v.length == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop from empty vector", ErrOutOfRange)
	}
	return v.Remove(0)
}
