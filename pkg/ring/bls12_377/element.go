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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform
// to the ring.Element interface.
type Element struct {
	fr.Element
}

// New constructs a field element from a signed integer.
func New(val int64) Element {
	var elem fr.Element
	//
	elem.SetInt64(val)
	//
	return Element{elem}
}

// Slice constructs an array of field elements from an array of integers.
func Slice(vals ...int64) []Element {
	elems := make([]Element, len(vals))
	//
	for i, v := range vals {
		elems[i] = New(v)
	}
	//
	return elems
}

// Modulus returns the order of the scalar field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Equals implementation for the ring.Element interface
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsZero implementation for the ring.Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// One implementation for the ring.Element interface
func (x Element) One() Element {
	return Element{fr.One()}
}

// Inverse x⁻¹, which exists for every nonzero element.
func (x Element) Inverse() (Element, bool) {
	var elem fr.Element
	//
	if x.Element.IsZero() {
		return x, false
	}
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}, true
}

func (x Element) String() string {
	return x.Element.String()
}
