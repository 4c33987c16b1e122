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
	"os"
	"runtime"
	"strconv"
	"unsafe"
)

// CheckedAllocator wraps another allocator and records every outstanding
// block together with the caller that allocated it, so tests can assert that
// containers release exactly what they acquired.
type CheckedAllocator[T any] struct {
	mem Allocator[T]
	sz  int

	nallocs int
	allocs  map[uintptr]*dalloc
}

func NewCheckedAllocator[T any](mem Allocator[T]) *CheckedAllocator[T] {
	return &CheckedAllocator[T]{mem: mem, allocs: make(map[uintptr]*dalloc)}
}

// CurrentAlloc reports the number of slots currently outstanding.
func (a *CheckedAllocator[T]) CurrentAlloc() int { return a.sz }

// AllocCount reports how many Allocate calls reached the wrapped allocator
// and succeeded.
func (a *CheckedAllocator[T]) AllocCount() int { return a.nallocs }

func (a *CheckedAllocator[T]) Allocate(n int) ([]T, error) {
	out, err := a.mem.Allocate(n)
	if err != nil {
		return nil, err
	}
	a.nallocs++
	a.sz += n
	if n == 0 {
		return out, nil
	}

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(out)))
	if pc, _, l, ok := runtime.Caller(allocFrames); ok {
		a.allocs[ptr] = &dalloc{pc: pc, line: l, sz: n}
	}
	return out, nil
}

func (a *CheckedAllocator[T]) Free(block []T) {
	a.sz -= len(block)
	defer a.mem.Free(block)

	if len(block) == 0 {
		return
	}

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	delete(a.allocs, ptr)
}

// Traits keeps the wrapped propagation capabilities but drops AlwaysEqual so
// a container never steals storage tracked by a different checker.
func (a *CheckedAllocator[T]) Traits() Traits {
	tr := a.mem.Traits()
	tr.AlwaysEqual = false
	return tr
}

func (a *CheckedAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*CheckedAllocator[T])
	return ok && o == a
}

// typically allocations happen inside vec.Vector, not by consumers calling
// Allocate directly. We skip the caller frames of the container's inner
// workings to find the caller that actually triggered the allocation via
// Reserve/Insert/etc.
const defAllocFrames = 4

// Use the environment variable VEC_CHECKED_ALLOC_FRAMES to control how many
// frames up it checks when storing the caller for allocations when using this
// to find leaks.
var allocFrames = defAllocFrames

func init() {
	if val, ok := os.LookupEnv("VEC_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}
}

type dalloc struct {
	pc   uintptr
	line int
	sz   int
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize reports an error on t for every outstanding block and whenever
// the outstanding slot count differs from sz.
func (a *CheckedAllocator[T]) AssertSize(t TestingT, sz int) {
	for _, info := range a.allocs {
		f := runtime.FuncForPC(info.pc)
		t.Errorf("LEAK of %d slots FROM %s line %d\n", info.sz, f.Name(), info.line)
	}

	if a.sz != sz {
		t.Helper()
		t.Errorf("invalid outstanding slots exp=%d, got=%d", sz, a.sz)
	}
}

var _ Allocator[int] = (*CheckedAllocator[int])(nil)
