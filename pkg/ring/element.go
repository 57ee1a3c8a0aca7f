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
	"errors"
	"fmt"
)

// ErrNotInvertible is returned when an operation requires the multiplicative
// inverse of an element which is not a unit of its ring.
var ErrNotInvertible = errors.New("element is not invertible")

// ErrDivisionByZero is the panic value raised when dividing by zero.  This is a
// precondition violation, rather than a recoverable failure.
var ErrDivisionByZero = errors.New("division by zero")

// An Element of a commutative ring with identity.  The zero value of any type
// implementing this interface must be the additive identity of its ring.
// Implementations are values, and no operation may modify its receiver.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// Neg -x
	Neg() Operand
	// Mul x*y
	Mul(y Operand) Operand
	// Equals x=y
	Equals(y Operand) bool
	// IsZero checks whether this value is the additive identity.
	IsZero() bool
	// One returns the multiplicative identity.  This never depends upon the
	// receiver, and is routinely called on the zero value.
	One() Operand
}

// Invertible is an element which may (or may not) have a multiplicative
// inverse.  Every nonzero element of a field is invertible, whilst for a
// general ring only the units are.
type Invertible[Operand any] interface {
	Element[Operand]
	// Inverse returns x⁻¹, or false if x is not a unit.
	Inverse() (Operand, bool)
}

// Zero constructs the additive identity of the ring R.
func Zero[R Element[R]]() R {
	var element R
	//
	return element
}

// One constructs the multiplicative identity of the ring R.
func One[R Element[R]]() R {
	var element R
	//
	return element.One()
}

// IsOne checks whether a given element is the multiplicative identity.
func IsOne[R Element[R]](x R) bool {
	return x.Equals(x.One())
}
