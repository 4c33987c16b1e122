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

import "github.com/arenalab/vec/internal/debug"

// shiftRight moves block[i:j] up by `by` slots within the same block, no
// allocation. The run is walked back to front: source and destination
// overlap, and walking forward would overwrite slots before they are read.
func shiftRight[T any](block []T, i, j, by int) {
	debug.Assert(by > 0, "shiftRight: offset must be positive")
	debug.Assert(0 <= i && i <= j && j+by <= len(block), "shiftRight: range out of block")
	for k := j - 1; k >= i; k-- {
		block[k+by] = block[k]
	}
}

// shiftLeft moves block[i:j] down by `by` slots. Walked front to back, the
// mirror of shiftRight's ordering requirement.
func shiftLeft[T any](block []T, i, j, by int) {
	debug.Assert(by > 0, "shiftLeft: offset must be positive")
	debug.Assert(0 <= i-by && i <= j && j <= len(block), "shiftLeft: range out of block")
	for k := i; k < j; k++ {
		block[k-by] = block[k]
	}
}
