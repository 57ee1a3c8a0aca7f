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
package modular

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Modulus determines the ring Z/nZ in which an Element lives.  Implementations
// are expected to be empty structs, such that the modulus is fixed by the type
// (rather than the value) of an element.
type Modulus interface {
	Modulus() uint64
}

// Element represents an integer modulo n, where n is given by the type
// parameter M.  Values are always held in reduced form, i.e. in the range
// [0,n).  Observe that an uninitialised element corresponds to zero.
type Element[M Modulus] struct {
	val uint64
}

// New constructs the element of Z/nZ congruent to a given integer.  Negative
// values are mapped to their non-negative representative.
func New[M Modulus](val int64) Element[M] {
	var (
		n = modulus[M]()
		r = uint64(val) % n
	)
	//
	if val < 0 {
		// Reduce the magnitude, then take its additive inverse.
		r = (-uint64(val)) % n
		if r != 0 {
			r = n - r
		}
	}
	//
	return Element[M]{r}
}

// Uint64 constructs the element of Z/nZ congruent to a given natural number.
func Uint64[M Modulus](val uint64) Element[M] {
	return Element[M]{val % modulus[M]()}
}

// Slice constructs an array of elements from an array of integer values.  This
// is mostly useful for writing down polynomials with modular coefficients.
func Slice[M Modulus](vals ...int64) []Element[M] {
	elems := make([]Element[M], len(vals))
	//
	for i, v := range vals {
		elems[i] = New[M](v)
	}
	//
	return elems
}

// Determine the modulus n for a given modulus type, whilst checking it is
// sensible.
func modulus[M Modulus]() uint64 {
	var m M
	//
	n := m.Modulus()
	if n < 2 {
		panic(fmt.Sprintf("invalid modulus %d", n))
	}
	//
	return n
}

// Modulus returns the modulus n of the ring Z/nZ containing this element.
func (x Element[M]) Modulus() uint64 {
	return modulus[M]()
}

// Value returns the reduced representative of this element, which lies in the
// range [0,n).
func (x Element[M]) Value() uint64 {
	return x.val
}

// Add x + y
func (x Element[M]) Add(y Element[M]) Element[M] {
	var (
		n           = modulus[M]()
		sum, carry  = bits.Add64(x.val, y.val, 0)
		diff, borrw = bits.Sub64(sum, n, 0)
	)
	// Subtract n whenever the sum overflowed, or is at least n.
	if carry != 0 || borrw == 0 {
		return Element[M]{diff}
	}
	//
	return Element[M]{sum}
}

// Sub x - y
func (x Element[M]) Sub(y Element[M]) Element[M] {
	diff, borrow := bits.Sub64(x.val, y.val, 0)
	//
	if borrow != 0 {
		diff += modulus[M]()
	}
	//
	return Element[M]{diff}
}

// Neg -x
func (x Element[M]) Neg() Element[M] {
	if x.val == 0 {
		return x
	}
	//
	return Element[M]{modulus[M]() - x.val}
}

// Mul x * y
func (x Element[M]) Mul(y Element[M]) Element[M] {
	hi, lo := bits.Mul64(x.val, y.val)
	// Since both operands are reduced, hi < n and so Rem64 cannot panic.
	return Element[M]{bits.Rem64(hi, lo, modulus[M]())}
}

// Equals implementation for the ring.Element interface.
func (x Element[M]) Equals(y Element[M]) bool {
	return x.val == y.val
}

// IsZero implementation for the ring.Element interface.
func (x Element[M]) IsZero() bool {
	return x.val == 0
}

// IsOne checks whether this value is one (or not).
func (x Element[M]) IsOne() bool {
	return x.val == 1
}

// One implementation for the ring.Element interface.
func (x Element[M]) One() Element[M] {
	// Force validation of the modulus.
	_ = modulus[M]()
	//
	return Element[M]{1}
}

// Inverse computes x⁻¹ using the extended Euclidean algorithm.  This exists
// precisely when gcd(x,n) = 1, which always holds for nonzero x when n is
// prime.
func (x Element[M]) Inverse() (Element[M], bool) {
	var (
		n = modulus[M]()
		// Invariant: r0 = s0*x (mod n) and r1 = s1*x (mod n), with the
		// coefficients held in Z/nZ to avoid signed overflow.
		r0, r1 = n, x.val
		s0, s1 = Element[M]{0}, Element[M]{1}
	)
	//
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0.Sub(Uint64[M](q).Mul(s1))
	}
	// r0 now holds gcd(x,n)
	if r0 != 1 {
		return x, false
	}
	//
	return s0, true
}

func (x Element[M]) String() string {
	return strconv.FormatUint(x.val, 10)
}
