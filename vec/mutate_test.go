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

package vec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenalab/vec/vec"
)

func TestInsertStable(t *testing.T) {
	tests := []struct {
		name string
		init []int
		pos  int
		val  int
		exp  []int
	}{
		{"front", []int{2, 3, 4}, 0, 1, []int{1, 2, 3, 4}},
		{"middle", []int{1, 2, 4}, 2, 3, []int{1, 2, 3, 4}},
		{"end", []int{1, 2, 3}, 3, 4, []int{1, 2, 3, 4}},
		{"empty", nil, 0, 1, []int{1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := checked(t)
			v, err := vec.FromSlice(mem, test.init)
			require.NoError(t, err)
			defer v.Release()

			require.NoError(t, v.Insert(test.pos, test.val))
			assert.Equal(t, test.exp, v.Values())
		})
	}
}

func TestInsertBounds(t *testing.T) {
	v := vec.Of(1, 2, 3)
	defer v.Release()

	assert.ErrorIs(t, v.Insert(-1, 0), vec.ErrOutOfRange)
	assert.ErrorIs(t, v.Insert(4, 0), vec.ErrOutOfRange)
	assert.Equal(t, []int{1, 2, 3}, v.Values(), "no partial mutation")
}

func TestInsertTriggersGrowth(t *testing.T) {
	mem := checked(t)
	v, err := vec.FromSlice(mem, []int{1, 3})
	require.NoError(t, err)
	defer v.Release()
	require.Equal(t, 2, v.Cap())

	// the full block forces a reallocation; the position is an index and
	// survives it
	require.NoError(t, v.Insert(1, 2))
	assert.Equal(t, []int{1, 2, 3}, v.Values())
	assert.Equal(t, 4, v.Cap())
}

func TestRemoveStable(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		out  int
		exp  []int
	}{
		{"front", 0, 1, []int{2, 3, 4}},
		{"middle", 2, 3, []int{1, 2, 4}},
		{"last", 3, 4, []int{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := checked(t)
			v, err := vec.FromSlice(mem, []int{1, 2, 3, 4})
			require.NoError(t, err)
			defer v.Release()

			out, err := v.Remove(test.pos)
			require.NoError(t, err)
			assert.Equal(t, test.out, out)
			assert.Equal(t, test.exp, v.Values())
		})
	}
}

func TestStableRoundTripPreservesOrder(t *testing.T) {
	mem := checked(t)
	orig := []int{5, 3, 8, 1, 4}
	for pos := 0; pos <= len(orig); pos++ {
		t.Run(fmt.Sprintf("pos%d", pos), func(t *testing.T) {
			v, err := vec.FromSlice(mem, orig)
			require.NoError(t, err)
			defer v.Release()

			require.NoError(t, v.Insert(pos, 99))
			out, err := v.Remove(pos)
			require.NoError(t, err)
			assert.Equal(t, 99, out)
			assert.Equal(t, orig, v.Values())
		})
	}
}

func TestRemoveRange(t *testing.T) {
	tests := []struct {
		name string
		i, j int
		exp  []int
	}{
		{"prefix", 0, 2, []int{3}},
		{"suffix", 1, 3, []int{1}},
		{"all", 0, 3, []int{}},
		{"none", 2, 2, []int{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem := checked(t)
			v, err := vec.FromSlice(mem, []int{1, 2, 3})
			require.NoError(t, err)
			defer v.Release()

			require.NoError(t, v.RemoveRange(test.i, test.j))
			assert.Equal(t, test.exp, v.Values())
		})
	}
}

func TestRemoveRangeInvalid(t *testing.T) {
	tests := []struct {
		name string
		i, j int
	}{
		{"inverted", 2, 1},
		{"begin past end", 4, 4},
		{"end past length", 0, 5},
		{"negative", -1, 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := vec.Of(1, 2, 3)
			defer v.Release()

			err := v.RemoveRange(test.i, test.j)
			assert.ErrorIs(t, err, vec.ErrInvalidRange)
			assert.Equal(t, []int{1, 2, 3}, v.Values(), "no partial mutation")
		})
	}
}

func TestRemoveUnstable(t *testing.T) {
	v := vec.Of(1, 2, 3)
	defer v.Release()

	out, err := v.RemoveUnstable(0)
	require.NoError(t, err)
	assert.Equal(t, 1, out)
	assert.Equal(t, []int{3, 2}, v.Values(), "last element swapped into the hole")

	// removing the last element needs no swap
	out, err = v.RemoveUnstable(1)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	assert.Equal(t, []int{3}, v.Values())
}

func TestInsertUnstable(t *testing.T) {
	v := vec.Of(1, 2, 3)
	defer v.Release()

	require.NoError(t, v.InsertUnstable(0, 9))
	assert.Equal(t, []int{9, 2, 3, 1}, v.Values(), "displaced element relocated to the end")

	require.NoError(t, v.InsertUnstable(4, 5))
	assert.Equal(t, []int{9, 2, 3, 1, 5}, v.Values(), "inserting at the end degenerates to append")
}

func TestUnstableDoesNotPreserveOrder(t *testing.T) {
	v := vec.Of(1, 2, 3, 4)
	defer v.Release()

	out, err := v.RemoveUnstable(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3}, v.Values())

	// a stable re-insert at the same index cannot undo the swap
	require.NoError(t, v.Insert(1, out))
	assert.Equal(t, []int{1, 2, 4, 3}, v.Values())
	assert.NotEqual(t, []int{1, 2, 3, 4}, v.Values())
}

func TestFrontBackConveniences(t *testing.T) {
	mem := checked(t)
	v := vec.New[int](mem)
	defer v.Release()

	require.NoError(t, v.PushFront(2))
	require.NoError(t, v.PushFront(1))
	require.NoError(t, v.PushBack(3))
	assert.Equal(t, []int{1, 2, 3}, v.Values())

	first, err := v.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	last, err := v.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, last)
	assert.Equal(t, []int{2}, v.Values())

	_, err = v.PopBack()
	require.NoError(t, err)
	_, err = v.PopBack()
	assert.ErrorIs(t, err, vec.ErrOutOfRange)
	_, err = v.PopFront()
	assert.ErrorIs(t, err, vec.ErrOutOfRange)
}

func TestDropHookRunsOnDestroy(t *testing.T) {
	dropped := []int{}
	v := vec.New[int](nil, vec.WithDrop[int](func(e int) { dropped = append(dropped, e) }))

	for i := 1; i <= 5; i++ {
		require.NoError(t, v.PushBack(i))
	}

	require.NoError(t, v.RemoveRange(1, 3))
	assert.Equal(t, []int{2, 3}, dropped)

	out, err := v.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 1, out)
	assert.Equal(t, []int{2, 3}, dropped, "removed elements returned to the caller are not dropped")

	v.Release()
	assert.Equal(t, []int{2, 3, 4, 5}, dropped)
}
