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
	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/util/collection/array"
)

// Polynomial is a dense univariate polynomial with coefficients drawn from the
// ring T.  The coefficient at index i is that of x^i.  Polynomials are values:
// they are never modified after construction, and all operations produce fresh
// polynomials.  Observe that an uninitialised Polynomial corresponds with zero.
// Polynomials built with From adopt the given slice, which must not be modified
// afterwards.  Callers retaining the slice should use New instead.
//
// Since a Polynomial is itself a ring element, polynomials can be nested.  For
// example, Polynomial[Polynomial[T]] represents T[x][y].
type Polynomial[T ring.Element[T]] struct {
	// Coefficients ordered by ascending degree.  Entries beyond the degree may
	// exist, but they are always zero and carry no meaning.
	coeffs array.Immutable[T]
	// Index of the highest nonzero coefficient, or zero if there is none.
	degree uint
}

// From constructs a polynomial from a given sequence of coefficients, ordered
// by ascending degree.  The polynomial takes ownership of the sequence, which
// is retained as backing storage without copying or truncation.  Hence, the
// caller must not modify the sequence afterwards (see New).
func From[T ring.Element[T]](coeffs []T) Polynomial[T] {
	return normalise(array.NewImmutable(coeffs))
}

// New constructs a polynomial from zero or more coefficients, ordered by
// ascending degree.  For example, New(1,-2,3) represents 3x^2 - 2x + 1.
// Unlike From, the coefficients are copied.
func New[T ring.Element[T]](coeffs ...T) Polynomial[T] {
	return normalise(array.CloneImmutable(coeffs))
}

// Determine the degree of a given coefficient array, by scanning down for the
// highest nonzero coefficient.
func normalise[T ring.Element[T]](coeffs array.Immutable[T]) Polynomial[T] {
	var degree uint
	//
	for i := coeffs.Len(); i > 1; i-- {
		if !coeffs.Get(i - 1).IsZero() {
			degree = i - 1
			break
		}
	}
	//
	return Polynomial[T]{coeffs, degree}
}

// Zero returns the zero polynomial.
func Zero[T ring.Element[T]]() Polynomial[T] {
	return From([]T{ring.Zero[T]()})
}

// One returns the constant polynomial 1.
func One[T ring.Element[T]]() Polynomial[T] {
	return From([]T{ring.One[T]()})
}

// Constant returns the constant polynomial c.
func Constant[T ring.Element[T]](c T) Polynomial[T] {
	return From([]T{c})
}

// Monomial constructs the polynomial c*x^n.
func Monomial[T ring.Element[T]](c T, n uint) Polynomial[T] {
	coeffs := make([]T, n+1)
	coeffs[n] = c
	//
	return From(coeffs)
}

// Deg returns the degree of this polynomial, that is the highest exponent with
// a nonzero coefficient.  By convention, the degree of zero is 0.
func (p Polynomial[T]) Deg() uint {
	return p.degree
}

// Coeffs returns the coefficients of this polynomial, ordered by ascending
// degree.  The returned array shares storage with this polynomial, and may be
// longer than Deg()+1 (in which case the surplus coefficients are all zero).
func (p Polynomial[T]) Coeffs() array.Immutable[T] {
	return p.coeffs
}

// Coeff returns the coefficient of x^i, which is zero for any i beyond the
// degree.
func (p Polynomial[T]) Coeff(i uint) T {
	if i > p.degree || i >= p.coeffs.Len() {
		return ring.Zero[T]()
	}
	//
	return p.coeffs.Get(i)
}

// Lead returns the leading coefficient of this polynomial, that is the
// coefficient of x^d where d is its degree.
func (p Polynomial[T]) Lead() T {
	return p.Coeff(p.degree)
}

// CompareDeg returns true if this polynomial has degree greater than or equal
// to the other.
func (p Polynomial[T]) CompareDeg(other Polynomial[T]) bool {
	return p.degree >= other.degree
}

// Equals determines whether two polynomials have the same degree, and agree on
// every coefficient up to that degree.  Backing storage beyond the degree is
// never examined.
func (p Polynomial[T]) Equals(other Polynomial[T]) bool {
	if p.degree != other.degree {
		return false
	}
	//
	for i := uint(0); i <= p.degree; i++ {
		if !p.Coeff(i).Equals(other.Coeff(i)) {
			return false
		}
	}
	//
	return true
}

// IsZero checks whether this is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return p.degree == 0 && p.Coeff(0).IsZero()
}

// IsOne checks whether this is the constant polynomial 1.
func (p Polynomial[T]) IsOne() bool {
	return p.degree == 0 && ring.IsOne(p.Coeff(0))
}

// IsConstant checks whether this polynomial has degree zero.
func (p Polynomial[T]) IsConstant() bool {
	return p.degree == 0
}

// One implementation for the ring.Element interface.
func (p Polynomial[T]) One() Polynomial[T] {
	return One[T]()
}

// Add another polynomial onto this polynomial.  Missing coefficients of the
// lower degree operand are treated as zero.
func (p Polynomial[T]) Add(other Polynomial[T]) Polynomial[T] {
	var n = other.degree
	//
	if p.CompareDeg(other) {
		n = p.degree
	}
	//
	coeffs := make([]T, n+1)
	//
	for i := range coeffs {
		coeffs[i] = p.Coeff(uint(i)).Add(other.Coeff(uint(i)))
	}
	// Leading terms may have cancelled
	return From(coeffs)
}

// Neg returns the additive inverse of this polynomial.
func (p Polynomial[T]) Neg() Polynomial[T] {
	coeffs := make([]T, p.degree+1)
	//
	for i := range coeffs {
		coeffs[i] = p.Coeff(uint(i)).Neg()
	}
	//
	return From(coeffs)
}

// Sub another polynomial from this polynomial, which is defined as p + (-q).
func (p Polynomial[T]) Sub(other Polynomial[T]) Polynomial[T] {
	return p.Add(other.Neg())
}

// Mul this polynomial by another polynomial.  The coefficient of x^k in the
// result is the sum of p_i * q_j for every i + j = k, where each product keeps
// the coefficient of this polynomial on the left.
func (p Polynomial[T]) Mul(other Polynomial[T]) Polynomial[T] {
	var (
		n      = p.degree
		m      = other.degree
		coeffs = make([]T, n+m+1)
	)
	//
	for i := uint(0); i <= n; i++ {
		ith := p.Coeff(i)
		// Zero terms contribute nothing
		if ith.IsZero() {
			continue
		}
		//
		for j := uint(0); j <= m; j++ {
			coeffs[i+j] = coeffs[i+j].Add(ith.Mul(other.Coeff(j)))
		}
	}
	// Leading terms may multiply to zero when T has zero divisors.
	return From(coeffs)
}

// MulScalar multiplies every coefficient of this polynomial (on the left) by a
// given scalar.
func (p Polynomial[T]) MulScalar(c T) Polynomial[T] {
	coeffs := make([]T, p.degree+1)
	//
	for i := range coeffs {
		coeffs[i] = c.Mul(p.Coeff(uint(i)))
	}
	//
	return From(coeffs)
}

// Shift multiplies this polynomial by x^n.
func (p Polynomial[T]) Shift(n uint) Polynomial[T] {
	if p.IsZero() {
		return p
	}
	//
	coeffs := make([]T, p.degree+n+1)
	//
	for i := uint(0); i <= p.degree; i++ {
		coeffs[i+n] = p.Coeff(i)
	}
	//
	return From(coeffs)
}

// Pow raises this polynomial to the nth power.
func (p Polynomial[T]) Pow(n uint64) Polynomial[T] {
	return ring.Pow(p, n)
}

// Eval evaluates this polynomial at a given point, using Horner's rule.
func (p Polynomial[T]) Eval(x T) T {
	var acc = p.Lead()
	//
	for i := p.degree; i > 0; i-- {
		acc = acc.Mul(x).Add(p.Coeff(i - 1))
	}
	//
	return acc
}

// Derivative returns the formal derivative of this polynomial.
func (p Polynomial[T]) Derivative() Polynomial[T] {
	if p.degree == 0 {
		return Zero[T]()
	}
	//
	coeffs := make([]T, p.degree)
	//
	for i := range coeffs {
		coeffs[i] = ring.FromInt64[T](int64(i + 1)).Mul(p.Coeff(uint(i + 1)))
	}
	//
	return From(coeffs)
}
