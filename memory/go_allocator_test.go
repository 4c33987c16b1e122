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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAllocator_Allocate(t *testing.T) {
	tests := []struct {
		name string
		sz   int
	}{
		{"empty", 0},
		{"small", 33},
		{"large", 4097},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := NewGoAllocator[int64]()
			blk, err := a.Allocate(test.sz)
			require.NoError(t, err)
			assert.Equal(t, test.sz, len(blk), "invalid len")
			for i, v := range blk {
				assert.Zero(t, v, "slot %d not zero", i)
			}
		})
	}
}

func TestGoAllocator_AllocateNegative(t *testing.T) {
	a := NewGoAllocator[int]()
	_, err := a.Allocate(-1)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestGoAllocator_Equal(t *testing.T) {
	a := NewGoAllocator[int]()
	b := NewGoAllocator[int]()
	assert.True(t, a.Equal(b))
	assert.True(t, a.Traits().AlwaysEqual)
	assert.False(t, a.Equal(NewArenaAllocator[int]()))
}

func TestZeroRange(t *testing.T) {
	tests := []struct {
		sz     int
		lo, hi int
	}{
		{7, 0, 7},
		{7, 3, 4},
		{25, 24, 25},
		{25, 0, 0},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("sz%d_%d_%d", test.sz, test.lo, test.hi), func(t *testing.T) {
			blk := make([]int, test.sz)
			for i := range blk {
				blk[i] = i + 1
			}
			ZeroRange(blk, test.lo, test.hi)
			for i, v := range blk {
				if i >= test.lo && i < test.hi {
					assert.Zero(t, v)
				} else {
					assert.Equal(t, i+1, v)
				}
			}
		})
	}
}
