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
	"errors"

	"github.com/arenalab/vec/memory"
)

var (
	// ErrAllocation wraps every failure to obtain or grow storage: the
	// provider refused the request, or the requested capacity is not
	// representable.
	ErrAllocation = memory.ErrAllocation

	// ErrOutOfRange reports an index or position outside the live range.
	ErrOutOfRange = errors.New("vec: position out of range")

	// ErrInvalidRange reports a begin/end pair with begin > end or either
	// bound out of range. One kind for all three cases.
	ErrInvalidRange = errors.New("vec: invalid range")

	// ErrCursorInvalid reports a read or write through a cursor whose
	// vector has reallocated, cleared or been reassigned since the cursor
	// was taken.
	ErrCursorInvalid = errors.New("vec: cursor invalidated")
)
