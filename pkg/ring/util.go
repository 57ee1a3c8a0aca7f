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
package ring

import (
	"fmt"
	"strconv"
	"strings"
)

// Number of decimal digits consumed at a time by FromDecimal, such that each
// chunk (and its scale) fits in an int64.
const decimalChunk = 18

// Pow takes a given value to the power n.
func Pow[R Element[R]](val R, n uint64) R {
	if n == 0 {
		return val.One()
	} else if n == 1 {
		return val
	}
	//
	m := Pow(val, n/2)
	m = m.Mul(m)
	// Check for odd case
	if n%2 == 1 {
		m = m.Mul(val)
	}
	//
	return m
}

// FromInt64 embeds a given integer into the ring R, by repeatedly doubling the
// multiplicative identity.  In a ring of characteristic c, this yields n mod c.
func FromInt64[R Element[R]](n int64) R {
	var (
		acc  = Zero[R]()
		unit = One[R]()
		// Work with magnitude so that math.MinInt64 is handled.
		mag = uint64(n)
	)
	//
	if n < 0 {
		mag = -mag
	}
	//
	for ; mag != 0; mag >>= 1 {
		if mag&1 == 1 {
			acc = acc.Add(unit)
		}
		//
		unit = unit.Add(unit)
	}
	//
	if n < 0 {
		return acc.Neg()
	}
	//
	return acc
}

// FromDecimal embeds an integer written in decimal, with an optional leading
// minus sign, into the ring R.  Literals of any length are accepted, since
// digits are folded in chunks using Horner's rule.  This returns false if the
// string is not a decimal integer.
func FromDecimal[R Element[R]](s string) (R, bool) {
	var (
		acc    = Zero[R]()
		digits = strings.TrimPrefix(s, "-")
	)
	//
	if digits == "" {
		return acc, false
	}
	//
	for len(digits) > 0 {
		var (
			n     = min(len(digits), decimalChunk)
			scale = int64(1)
		)
		// ParseUint rejects signs, so "--1" and "-+1" fail here.
		chunk, err := strconv.ParseUint(digits[:n], 10, 64)
		if err != nil {
			return acc, false
		}
		//
		for range n {
			scale *= 10
		}
		//
		acc = acc.Mul(FromInt64[R](scale)).Add(FromInt64[R](int64(chunk)))
		digits = digits[n:]
	}
	//
	if strings.HasPrefix(s, "-") {
		return acc.Neg(), true
	}
	//
	return acc, true
}

// Inverse returns the multiplicative inverse of a given element, or an error
// wrapping ErrNotInvertible if no such inverse exists.
func Inverse[R Invertible[R]](x R) (R, error) {
	if inv, ok := x.Inverse(); ok {
		return inv, nil
	}
	//
	return x, fmt.Errorf("%w: %s", ErrNotInvertible, x.String())
}
