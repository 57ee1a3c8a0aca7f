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
	"testing"

	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/ring/bls12_377"
	"github.com/consensys/go-polyring/pkg/ring/integer"
	"github.com/consensys/go-polyring/pkg/ring/modular"
	"github.com/consensys/go-polyring/pkg/util/assert"
	"github.com/consensys/go-polyring/pkg/util/collection/array"
)

// ZX is the ring Z[x], whilst ZXY is the ring Z[x][y].
type (
	ZX  = Polynomial[integer.Int64]
	ZXY = Polynomial[ZX]
)

func init() {
	// make sure the interface is adhered to.
	_ = ring.Element[ZX](ZX{})
	_ = ring.Element[ZXY](ZXY{})
}

func Test_Poly_01(t *testing.T) {
	// Trailing zeros are ignored
	p := ints(1, 2, 3, 4, 0, 0, 0, 0, 0, 0)
	//
	assert.Equivalent(t, ints(1, 2, 3, 4), p)
	assert.Equal(t, uint(3), p.Deg())
	assert.Equal(t, uint(10), p.Coeffs().Len())
	assert.Equal(t, int64(0), p.Coeff(7).Value())
	assert.Equal(t, int64(0), p.Coeff(100).Value())
	assert.Equal(t, int64(4), p.Lead().Value())
}

func Test_Poly_02(t *testing.T) {
	// Normalisation is idempotent
	for _, p := range []ZX{ints(), ints(0, 0), ints(5), ints(1, 0, 2, 0)} {
		q := From(p.Coeffs().ToSlice())
		//
		assert.Equivalent(t, p, q)
		assert.Equal(t, p.Deg(), q.Deg())
	}
	//
	assert.True(t, ints().IsZero())
	assert.True(t, ints(0, 0, 0).IsZero())
	assert.True(t, ZX{}.IsZero())
	assert.True(t, Zero[integer.Int64]().IsZero())
	assert.True(t, One[integer.Int64]().IsOne())
	assert.True(t, ints(1, 0).IsOne())
	assert.False(t, ints(1, 1).IsOne())
	assert.True(t, ints(7).IsConstant())
}

func Test_Poly_03(t *testing.T) {
	assert.True(t, ints(0, 1, 1).CompareDeg(ints(1, 1, 0, 0, 0, 0)))
	assert.False(t, ints(1, 1, 0, 0, 0, 0).CompareDeg(ints(0, 1, 1)))
	assert.True(t, ints(1, 2).CompareDeg(ints(3, 4)))
}

func Test_Poly_04(t *testing.T) {
	var (
		p = ints(1, 1)
		q = ints(-1, 0, 2)
	)
	//
	assert.Equivalent(t, ints(0, 1, 2), p.Add(q))
	assert.Equivalent(t, ints(2, 1, -2), p.Sub(q))
	assert.Equivalent(t, ints(-1, -1, 2, 2), p.Mul(q))
	assert.Equivalent(t, ints(1, 0, -2), q.Neg())
}

func Test_Poly_05(t *testing.T) {
	var (
		p = z4(1, 3, 0, 2)
		q = z4(3, 1)
	)
	//
	assert.Equivalent(t, z4(0, 0, 0, 2), p.Add(q))
	assert.Equivalent(t, z4(2, 2, 0, 2), p.Sub(q))
	assert.Equivalent(t, z4(3, 2, 3, 2, 2), p.Mul(q))
	// Leading terms cancel
	assert.Equal(t, uint(0), z4(1, 2).Add(z4(0, 2)).Deg())
	// Zero divisors collapse the degree of a product
	assert.Equivalent(t, z4(0, 0), z4(0, 2).Mul(z4(2, 2)))
}

func Test_Poly_06(t *testing.T) {
	polys := []ZX{ints(), ints(3), ints(1, -1), ints(2, 0, 5), ints(-4, 1, 0, 7)}
	//
	for _, p := range polys {
		assert.Equivalent(t, p, p.Add(Zero[integer.Int64]()))
		assert.Equivalent(t, p, Zero[integer.Int64]().Add(p))
		assert.True(t, p.Add(p.Neg()).IsZero())
		assert.Equivalent(t, p, p.Mul(One[integer.Int64]()))
		assert.Equivalent(t, p, One[integer.Int64]().Mul(p))
		assert.True(t, p.Mul(ZX{}).IsZero())
		//
		for _, q := range polys {
			assert.Equivalent(t, p.Add(q), q.Add(p))
			assert.Equivalent(t, p.Mul(q), q.Mul(p))
			//
			for _, r := range polys {
				// Distributivity
				assert.Equivalent(t, p.Mul(q.Add(r)), p.Mul(q).Add(p.Mul(r)))
				// Associativity
				assert.Equivalent(t, p.Mul(q).Mul(r), p.Mul(q.Mul(r)))
			}
		}
	}
}

func Test_Poly_07(t *testing.T) {
	var (
		x  = ints(0, 1)
		p  = From([]ZX{ints(-1), x})
		q  = From([]ZX{ints(1), x.Neg()})
		pq = From([]ZX{ints(-1), ints(0, 2), ints(0, 0, -1)})
	)
	// (-1 + x*y) + (1 - x*y) == 0
	assert.True(t, p.Add(q).IsZero())
	assert.Equivalent(t, pq, p.Mul(q))
	assert.Equal(t, uint(2), p.Mul(q).Deg())
	assert.True(t, ring.IsOne(p.One()))
}

func Test_Poly_08(t *testing.T) {
	assert.Equivalent(t, ints(0, 0, 5), Monomial(integer.New[int64](5), 2))
	assert.Equivalent(t, ints(0, 0, 1, 2), ints(1, 2).Shift(2))
	assert.Equivalent(t, ints(3, 6), ints(1, 2).MulScalar(integer.New[int64](3)))
	assert.Equivalent(t, ints(1, 3, 3, 1), ints(1, 1).Pow(3))
	assert.True(t, ints(1, 1).Pow(0).IsOne())
	assert.True(t, ints().Shift(3).IsZero())
}

func Test_Poly_09(t *testing.T) {
	p := ints(1, 2, 3)
	//
	assert.Equal(t, int64(17), p.Eval(integer.New[int64](2)).Value())
	assert.Equal(t, int64(1), p.Eval(integer.New[int64](0)).Value())
	assert.Equal(t, int64(2), p.Eval(integer.New[int64](-1)).Value())
	assert.Equal(t, int64(0), ints().Eval(integer.New[int64](9)).Value())
	// 3x^2 + 1 at x = 2 in Z7
	assert.Equal(t, uint64(6), z7(1, 0, 3).Eval(modular.New[modular.Mod7](2)).Value())
}

func Test_Poly_10(t *testing.T) {
	assert.Equivalent(t, ints(2, 6), ints(1, 2, 3).Derivative())
	assert.True(t, ints(5).Derivative().IsZero())
	// d/dx x^3 = 3x^2 = 0 in characteristic 3
	p := From(modular.Slice[modular.Mod3](0, 0, 0, 1))
	assert.True(t, p.Derivative().IsZero())
}

func Test_Poly_11(t *testing.T) {
	var (
		coeffs = integer.Slice[int64](1, 2, 3, 0, 0)
		p      = From(coeffs)
		q      = p
	)
	// Backing storage is adopted, and shared between copies
	assert.True(t, p.Coeffs().Shares(array.NewImmutable(coeffs)))
	assert.True(t, p.Coeffs().Shares(q.Coeffs()))
	// New copies its arguments
	assert.False(t, New(coeffs...).Coeffs().Shares(p.Coeffs()))
}

func Test_Poly_12(t *testing.T) {
	var (
		coeffs = integer.Slice[int64](1, 2, 3)
		p      = New(coeffs...)
	)
	// Changes to the source do not affect a copied polynomial
	coeffs[2] = integer.New[int64](0)
	coeffs[0] = integer.New[int64](9)
	//
	assert.Equal(t, uint(2), p.Deg())
	assert.Equivalent(t, ints(1, 2, 3), p)
	// Nor do changes to extracted coefficients
	extracted := p.Coeffs().ToSlice()
	extracted[2] = integer.New[int64](0)
	//
	assert.Equal(t, int64(3), p.Lead().Value())
}

func Test_Poly_13(t *testing.T) {
	p := From(bls12_377.Slice(1, 2, 3))
	q := From(bls12_377.Slice(-1, -2, -3))
	//
	assert.True(t, p.Add(q).IsZero())
	assert.Equal(t, "3*x^2 + 2*x + 1", p.String())
}

// =========================================================================================

func ints(vals ...int64) ZX {
	return From(integer.Slice(vals...))
}

func z4(vals ...int64) Polynomial[modular.Z4] {
	return From(modular.Slice[modular.Mod4](vals...))
}

func z7(vals ...int64) Polynomial[modular.Z7] {
	return From(modular.Slice[modular.Mod7](vals...))
}
