// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package array

import (
	"fmt"
	"slices"
)

// Immutable is an array whose contents never change after construction.  Since
// no holder can modify the underlying storage, copies of an Immutable share
// that storage freely and copying one never copies its elements.  Observe
// that an uninitialised Immutable corresponds with the empty array.
type Immutable[T any] struct {
	items []T
}

// NewImmutable constructs an immutable array which takes ownership of the
// given slice.  The caller must not modify the slice afterwards.
func NewImmutable[T any](items []T) Immutable[T] {
	// Clip capacity so appending to a slice obtained from this array can never
	// write into the shared storage.
	return Immutable[T]{slices.Clip(items)}
}

// CloneImmutable constructs an immutable array from a copy of the given slice.
func CloneImmutable[T any](items []T) Immutable[T] {
	return Immutable[T]{slices.Clone(items)}
}

// Len returns the number of elements in this array.
func (p Immutable[T]) Len() uint {
	return uint(len(p.items))
}

// Get returns the element at the given index in this array.
func (p Immutable[T]) Get(index uint) T {
	if index >= uint(len(p.items)) {
		panic(fmt.Sprintf("index %d out of bounds (%d)", index, len(p.items)))
	}
	//
	return p.items[index]
}

// Shares determines whether both arrays are views onto the same underlying
// storage.
func (p Immutable[T]) Shares(other Immutable[T]) bool {
	return len(p.items) > 0 && len(other.items) > 0 && &p.items[0] == &other.items[0]
}

// ToSlice returns a fresh copy of the elements in this array, which the caller
// is free to modify.
func (p Immutable[T]) ToSlice() []T {
	return slices.Clone(p.items)
}
