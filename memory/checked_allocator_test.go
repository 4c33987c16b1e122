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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeT struct {
	errs int
}

func (f *fakeT) Errorf(format string, args ...interface{}) { f.errs++ }
func (f *fakeT) Helper()                                   {}

func TestCheckedAllocator_Balanced(t *testing.T) {
	mem := NewCheckedAllocator[int](NewGoAllocator[int]())

	blk, err := mem.Allocate(16)
	require.NoError(t, err)
	assert.Equal(t, 16, mem.CurrentAlloc())
	assert.Equal(t, 1, mem.AllocCount())

	mem.Free(blk)
	assert.Zero(t, mem.CurrentAlloc())

	var ft fakeT
	mem.AssertSize(&ft, 0)
	assert.Zero(t, ft.errs)
}

func TestCheckedAllocator_ReportsLeak(t *testing.T) {
	mem := NewCheckedAllocator[int](NewGoAllocator[int]())

	_, err := mem.Allocate(8)
	require.NoError(t, err)

	var ft fakeT
	mem.AssertSize(&ft, 0)
	assert.NotZero(t, ft.errs, "leak must be reported")
}

func TestLimitAllocator_Budget(t *testing.T) {
	mem := NewLimitAllocator[int](NewGoAllocator[int](), 10)

	blk, err := mem.Allocate(8)
	require.NoError(t, err)

	_, err = mem.Allocate(3)
	assert.ErrorIs(t, err, ErrAllocation)

	mem.Free(blk)
	blk, err = mem.Allocate(10)
	require.NoError(t, err)
	mem.Free(blk)
}

func TestWrapperEquality(t *testing.T) {
	base := NewGoAllocator[int]()
	c1 := NewCheckedAllocator[int](base)
	c2 := NewCheckedAllocator[int](base)

	assert.True(t, c1.Equal(c1))
	assert.False(t, c1.Equal(c2), "trackers are not interchangeable")
	assert.False(t, c1.Traits().AlwaysEqual)
	assert.True(t, c1.Traits().PropagateOnCopyAssign, "wrapped traits carry through")
}
