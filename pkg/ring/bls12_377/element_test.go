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
package bls12_377

import (
	"math/big"
	"testing"

	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/util/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = ring.Invertible[Element](Element{})
}

func Test_Bls12_377_01(t *testing.T) {
	assert.True(t, ring.Zero[Element]().IsZero())
	assert.True(t, ring.IsOne(ring.One[Element]()))
	assert.True(t, New(5).Add(New(-5)).IsZero())
	assert.True(t, New(6).Equals(New(2).Mul(New(3))))
	assert.True(t, New(-7).Equals(New(7).Neg()))
	assert.True(t, New(1).Sub(New(3)).Equals(New(-2)))
}

func Test_Bls12_377_02(t *testing.T) {
	for _, v := range []int64{1, 2, -3, 1 << 40} {
		x := New(v)
		inv, ok := x.Inverse()
		//
		assert.True(t, ok)
		assert.True(t, ring.IsOne(x.Mul(inv)))
	}
	//
	_, ok := ring.Zero[Element]().Inverse()
	assert.False(t, ok)
}

func Test_Bls12_377_03(t *testing.T) {
	var (
		expected, actual big.Int
		minusOne         = New(-1)
	)
	// -1 is represented as q-1, though printed in short form
	expected.Sub(Modulus(), big.NewInt(1))
	minusOne.BigInt(&actual)
	assert.Equal(t, expected.String(), actual.String())
	assert.Equal(t, "-1", New(-1).String())
	assert.True(t, ring.FromInt64[Element](-12345).Equals(New(-12345)))
}
