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
package integer

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Int is a ring element backed by a signed machine integer.  Arithmetic wraps
// on overflow exactly as the underlying type does, hence this is only a model
// of the integers whilst values remain in range.
type Int[I constraints.Signed] struct {
	val I
}

// Int64 is the canonical integer coefficient type.
type Int64 = Int[int64]

// New constructs an integer element with a given value.
func New[I constraints.Signed](val I) Int[I] {
	return Int[I]{val}
}

// Slice constructs an array of integer elements from an array of values.  This
// is mostly useful for writing down polynomials with integer coefficients.
func Slice[I constraints.Signed](vals ...I) []Int[I] {
	elems := make([]Int[I], len(vals))
	//
	for i, v := range vals {
		elems[i] = Int[I]{v}
	}
	//
	return elems
}

// Value returns the machine integer held by this element.
func (x Int[I]) Value() I {
	return x.val
}

// Add x + y
func (x Int[I]) Add(y Int[I]) Int[I] {
	return Int[I]{x.val + y.val}
}

// Sub x - y
func (x Int[I]) Sub(y Int[I]) Int[I] {
	return Int[I]{x.val - y.val}
}

// Neg -x
func (x Int[I]) Neg() Int[I] {
	return Int[I]{-x.val}
}

// Mul x * y
func (x Int[I]) Mul(y Int[I]) Int[I] {
	return Int[I]{x.val * y.val}
}

// Equals implementation for the ring.Element interface.
func (x Int[I]) Equals(y Int[I]) bool {
	return x.val == y.val
}

// IsZero implementation for the ring.Element interface.
func (x Int[I]) IsZero() bool {
	return x.val == 0
}

// One implementation for the ring.Element interface.
func (x Int[I]) One() Int[I] {
	return Int[I]{1}
}

// Inverse returns x⁻¹ when x is a unit (i.e. either 1 or -1).
func (x Int[I]) Inverse() (Int[I], bool) {
	if x.val == 1 || x.val == -1 {
		return x, true
	}
	//
	return x, false
}

func (x Int[I]) String() string {
	return strconv.FormatInt(int64(x.val), 10)
}
