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
package ring_test

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/consensys/go-polyring/pkg/ring"
	"github.com/consensys/go-polyring/pkg/ring/integer"
	"github.com/consensys/go-polyring/pkg/ring/modular"
	"github.com/consensys/go-polyring/pkg/util/assert"
)

func Test_Ring_01(t *testing.T) {
	assert.True(t, ring.Zero[modular.Z5]().IsZero())
	assert.True(t, ring.IsOne(ring.One[modular.Z5]()))
	assert.False(t, ring.IsOne(ring.Zero[integer.Int64]()))
}

func Test_Ring_02(t *testing.T) {
	// 2^10 = 1024 = 4 (mod 5)
	assert.Equal(t, uint64(4), ring.Pow(modular.New[modular.Mod5](2), 10).Value())
	assert.Equal(t, uint64(1), ring.Pow(modular.New[modular.Mod5](0), 0).Value())
	assert.Equal(t, int64(-125), ring.Pow(integer.New[int64](-5), 3).Value())
}

func Test_Ring_03(t *testing.T) {
	assert.Equal(t, uint64(2), ring.FromInt64[modular.Z5](-3).Value())
	assert.Equal(t, uint64(1), ring.FromInt64[modular.Z2](12345).Value())
	assert.Equal(t, int64(0), ring.FromInt64[integer.Int64](0).Value())
}

func Test_Ring_04(t *testing.T) {
	inv, err := ring.Inverse(modular.New[modular.Mod5](3))
	//
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), inv.Value())
	//
	_, err = ring.Inverse(ring.Zero[modular.Z5]())
	assert.ErrorIs(t, err, ring.ErrNotInvertible)
	//
	_, err = ring.Inverse(modular.New[modular.Mod8](6))
	assert.ErrorIs(t, err, ring.ErrNotInvertible)
}

func Test_Ring_05(t *testing.T) {
	for _, v := range []int64{0, 7, -123, 1 << 62, math.MaxInt64, math.MinInt64} {
		x, ok := ring.FromDecimal[integer.Int64](strconv.FormatInt(v, 10))
		//
		assert.True(t, ok)
		assert.Equal(t, v, x.Value())
	}
	// 10^21 = 3^21 = 6 (mod 7)
	x, ok := ring.FromDecimal[modular.Z7]("1000000000000000000000")
	assert.True(t, ok)
	assert.Equal(t, uint64(6), x.Value())
	// Longer than a single chunk, and negated
	y, ok := ring.FromDecimal[modular.Z251]("-123456789012345678901234567890")
	assert.True(t, ok)
	assert.Equal(t, uint64(251)-decimalMod("123456789012345678901234567890", 251), y.Value())
	//
	for _, s := range []string{"", "-", "+5", "--1", "12a", " 1", "0x10"} {
		_, ok := ring.FromDecimal[integer.Int64](s)
		assert.False(t, ok, "%q should not parse", s)
	}
}

// Reduce a decimal string modulo n.
func decimalMod(s string, n int64) uint64 {
	v, _ := new(big.Int).SetString(s, 10)
	//
	return v.Mod(v, big.NewInt(n)).Uint64()
}
