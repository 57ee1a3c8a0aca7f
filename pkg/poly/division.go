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
package poly

import (
	"fmt"

	"github.com/consensys/go-polyring/pkg/ring"
)

// DivMod performs Euclidean division of a by b, producing a quotient q and
// remainder r such that a = q*b + r, where either r is zero or deg(r) < deg(b).
// This requires the leading coefficient of b to be invertible, and an error
// wrapping ring.ErrNotInvertible is returned when it is not.  Dividing by the
// zero polynomial is a precondition violation, and panics with
// ring.ErrDivisionByZero.
func DivMod[T ring.Invertible[T]](a, b Polynomial[T]) (Polynomial[T], Polynomial[T], error) {
	if b.IsZero() {
		panic(ring.ErrDivisionByZero)
	} else if a.IsZero() || a.degree < b.degree {
		// Nothing to divide
		return Zero[T](), a, nil
	}
	//
	inv, ok := b.Lead().Inverse()
	if !ok {
		return Zero[T](), Zero[T](), fmt.Errorf("%w: leading coefficient %s of %s", ring.ErrNotInvertible,
			b.Lead().String(), b.String())
	}
	//
	var (
		n     = a.degree
		m     = b.degree
		quot  = make([]T, n-m+1)
		rem   = make([]T, n+1)
		coeff T
	)
	//
	for i := range rem {
		rem[i] = a.Coeff(uint(i))
	}
	// Eliminate the leading term of the remainder on each iteration.
	for k := n + 1; k > m; k-- {
		// Determine scaling for monomial x^(k-1-m)
		if coeff = rem[k-1].Mul(inv); coeff.IsZero() {
			continue
		}
		//
		quot[k-1-m] = coeff
		// Subtract coeff * x^(k-1-m) * b
		for j := uint(0); j <= m; j++ {
			rem[k-1-m+j] = rem[k-1-m+j].Sub(coeff.Mul(b.Coeff(j)))
		}
	}
	// What remains lives strictly below degree m
	return From(quot), From(rem[:m]), nil
}

// Div returns the quotient from the Euclidean division of a by b.
func Div[T ring.Invertible[T]](a, b Polynomial[T]) (Polynomial[T], error) {
	q, _, err := DivMod(a, b)
	//
	return q, err
}

// Rem returns the remainder from the Euclidean division of a by b.
func Rem[T ring.Invertible[T]](a, b Polynomial[T]) (Polynomial[T], error) {
	_, r, err := DivMod(a, b)
	//
	return r, err
}

// Monic scales a polynomial so that its leading coefficient is one.  An error
// wrapping ring.ErrNotInvertible is returned if the leading coefficient has no
// inverse.  The zero polynomial is returned unchanged.
func Monic[T ring.Invertible[T]](p Polynomial[T]) (Polynomial[T], error) {
	if p.IsZero() {
		return p, nil
	}
	//
	inv, err := ring.Inverse(p.Lead())
	if err != nil {
		return p, err
	}
	//
	return p.MulScalar(inv), nil
}

// Gcd computes the monic greatest common divisor of two polynomials using the
// Euclidean algorithm.  The gcd of zero and zero is zero.  Over rings which are
// not fields this may fail (with an error wrapping ring.ErrNotInvertible) when
// some intermediate remainder has a leading coefficient without an inverse.
func Gcd[T ring.Invertible[T]](a, b Polynomial[T]) (Polynomial[T], error) {
	for !b.IsZero() {
		r, err := Rem(a, b)
		if err != nil {
			return r, err
		}
		//
		a, b = b, r
	}
	//
	return Monic(a)
}
