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

// Package vec provides a growable contiguous-storage container over a
// pluggable memory provider.
//
// A Vector owns exactly one block of slots obtained from a
// memory.Allocator. Appends are amortized O(1) with doubling growth;
// positional insert and remove come in a stable, order-preserving family
// and an unstable swap-with-last family with O(1) data movement. Copy,
// move and swap follow the allocator's propagation traits, and every
// growth or copy path either completes or leaves the container observably
// unchanged.
//
// Stack, queue and heap adapters need only the push/pop/front/back subset;
// random-access consumers additionally use At and bulk construction from a
// range.
package vec
