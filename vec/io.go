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
	"io"

	"github.com/zeebo/xxh3"
	"golang.org/x/xerrors"
)

// WriteTo implements io.WriterTo, emitting the vector's wire format:
//
//	<count> <e0> <e1> ... <e(n-1)>\n
//
// with single-space separators, where each element is rendered by the fmt
// package. Round-trips through ReadFrom for any element type with a lossless
// text representation (notably not strings containing whitespace).
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%d", v.length)
	total += int64(n)
	if err != nil {
		return total, xerrors.Errorf("vec: write count: %w", err)
	}
	for i := 0; i < v.length; i++ {
		n, err = fmt.Fprintf(w, " %v", v.data[i])
		total += int64(n)
		if err != nil {
			return total, xerrors.Errorf("vec: write element %d: %w", i, err)
		}
	}
	n, err = io.WriteString(w, "\n")
	total += int64(n)
	if err != nil {
		return total, xerrors.Errorf("vec: write terminator: %w", err)
	}
	return total, nil
}

// ReadFrom implements io.ReaderFrom for the format emitted by WriteTo: the
// count is read first, the vector is cleared and resized to hold it with
// zero-value elements, then each slot is overwritten by scanning one element
// in order.
func (v *Vector[T]) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	var count int
	if _, err := fmt.Fscan(cr, &count); err != nil {
		return cr.n, xerrors.Errorf("vec: read count: %w", err)
	}
	if count < 0 {
		return cr.n, xerrors.Errorf("vec: negative element count %d", count)
	}
	v.Clear()
	if err := v.Resize(count); err != nil {
		return cr.n, err
	}
	for i := 0; i < count; i++ {
		if _, err := fmt.Fscan(cr, &v.data[i]); err != nil {
			return cr.n, xerrors.Errorf("vec: read element %d of %d: %w", i, count, err)
		}
	}
	return cr.n, nil
}

// Digest returns a 64-bit xxh3 fingerprint of the vector's wire format,
// cheap to compare across processes that share an element rendering.
func Digest[T any](v *Vector[T]) (uint64, error) {
	h := xxh3.New()
	if _, err := v.WriteTo(h); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
