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
	"github.com/goccy/go-json"
	"golang.org/x/xerrors"
)

// MarshalJSON renders the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.length == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Values())
}

// UnmarshalJSON replaces the vector's contents with the elements of a JSON
// array, reusing the block when it is large enough.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return xerrors.Errorf("vec: unmarshal: %w", err)
	}
	v.Clear()
	if len(vals) > len(v.data) {
		if err := v.Reserve(len(vals)); err != nil {
			return err
		}
	}
	copy(v.data, vals)
	v.length = len(vals)
	return nil
}
